package config

import (
	"fmt"
	"net"
)

// DefaultIntrospectAddr 默认自省服务监听地址
const DefaultIntrospectAddr = "127.0.0.1:6060"

// IntrospectConfig 本地自省服务配置
type IntrospectConfig struct {
	// Enable 是否启动自省 HTTP 服务
	// 默认值: false
	Enable bool `json:"enable"`

	// Addr 监听地址
	// 默认值: "127.0.0.1:6060"
	Addr string `json:"addr"`
}

// DefaultIntrospectConfig 返回默认的自省服务配置
func DefaultIntrospectConfig() IntrospectConfig {
	return IntrospectConfig{
		Enable: false,
		Addr:   DefaultIntrospectAddr,
	}
}

// Validate 验证自省服务配置
func (c *IntrospectConfig) Validate() error {
	if !c.Enable {
		return nil
	}
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("introspect: invalid addr %q: %w", c.Addr, err)
	}
	return nil
}
