package config

import "errors"

// ValidateAll 验证整个配置的有效性
//
// 这是 Config.Validate() 的别名，额外处理 nil。
func ValidateAll(c *Config) error {
	if c == nil {
		return errors.New("config is nil")
	}
	return c.Validate()
}

// ValidateAndFix 验证配置并尝试自动修复常见问题
//
// 可修复的问题：
//   - 预填充数量为负 -> 0
//   - 启用指标但命名空间为空 -> 默认命名空间
//   - 日志格式为空 -> text
//   - 启用自省服务但地址为空 -> 默认地址
func ValidateAndFix(c *Config) (*Config, error) {
	if c == nil {
		return NewConfig(), nil
	}

	if c.Pool.DefaultInitialSize < 0 {
		c.Pool.DefaultInitialSize = 0
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsConfig().Namespace
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Introspect.Enable && c.Introspect.Addr == "" {
		c.Introspect.Addr = DefaultIntrospectAddr
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
