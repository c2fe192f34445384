package config

import "fmt"

// 对象池默认值
const (
	// DefaultPoolInitialSize 新建对象池的默认预填充数量
	DefaultPoolInitialSize = 10

	// maxPoolInitialSize 预填充数量上限
	maxPoolInitialSize = 1 << 16
)

// PoolConfig 对象池配置
type PoolConfig struct {
	// DefaultInitialSize 未指定大小时新建对象池的预填充数量
	// 默认值: 10
	DefaultInitialSize int `json:"default_initial_size"`

	// Shared 是否使用进程级共享对象池管理器
	// 默认值: false
	Shared bool `json:"shared"`
}

// DefaultPoolConfig 返回默认的对象池配置
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		DefaultInitialSize: DefaultPoolInitialSize,
	}
}

// Validate 验证对象池配置
func (c *PoolConfig) Validate() error {
	if c.DefaultInitialSize < 0 {
		return fmt.Errorf("pool: default_initial_size must be >= 0, got %d", c.DefaultInitialSize)
	}
	if c.DefaultInitialSize > maxPoolInitialSize {
		return fmt.Errorf("pool: default_initial_size must be <= %d, got %d", maxPoolInitialSize, c.DefaultInitialSize)
	}
	return nil
}
