package config

import (
	"fmt"
	"strings"
)

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别，格式同 EVENTBUS_LOG_LEVEL
	// 例如 "info" 或 "core/pool=debug,warn"
	// 默认值: "info"
	Level string `json:"level"`

	// Format 输出格式（text 或 json）
	// 默认值: "text"
	Format string `json:"format"`

	// FxEvents 是否输出 Fx 容器事件
	// 默认值: false
	FxEvents bool `json:"fx_events"`
}

// DefaultLogConfig 返回默认的日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "info",
		Format: "text",
	}
}

// Validate 验证日志配置
func (c *LogConfig) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log: unknown format %q", c.Format)
	}
	return nil
}
