// Package config 提供统一的配置管理
//
// 本包采用混合配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义
//   - 支持从 JSON 加载和保存配置
//   - 支持预设配置（default/minimal/debug）
//
// 使用示例：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Pool.DefaultInitialSize = 32
//
//	// 从 JSON 加载
//	cfg, err := config.FromJSON(data)
package config

// Config 是 go-eventbus 的完整配置结构
//
// 配置按照功能模块组织：
//   - EventBus: 事件注册表
//   - Pool: 对象池
//   - Metrics: 指标采集
//   - Log: 日志
//   - Introspect: 本地自省服务
type Config struct {
	// EventBus 事件注册表配置
	EventBus EventBusConfig `json:"eventbus"`

	// Pool 对象池配置
	Pool PoolConfig `json:"pool"`

	// Metrics 指标配置
	Metrics MetricsConfig `json:"metrics"`

	// Log 日志配置
	Log LogConfig `json:"log"`

	// Introspect 本地自省服务配置
	Introspect IntrospectConfig `json:"introspect"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		EventBus:   DefaultEventBusConfig(),
		Pool:       DefaultPoolConfig(),
		Metrics:    DefaultMetricsConfig(),
		Log:        DefaultLogConfig(),
		Introspect: DefaultIntrospectConfig(),
	}
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	if err := c.EventBus.Validate(); err != nil {
		return err
	}
	if err := c.Pool.Validate(); err != nil {
		return err
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Introspect.Validate(); err != nil {
		return err
	}
	return nil
}
