package pool

import (
	"github.com/dep2p/go-eventbus/config"
	"github.com/dep2p/go-eventbus/internal/core/lifecycle"
)

var defaultHost = lifecycle.NewHost("pool", func() (*Manager, error) {
	return NewManager(config.DefaultPoolInitialSize), nil
})

// Default 返回进程级默认对象池管理器
func Default() *Manager {
	return defaultHost.MustInstance()
}

// ResetDefault 清空并销毁默认管理器
func ResetDefault() error {
	return defaultHost.Reset()
}

// DefaultHost 返回默认管理器的托管对象
func DefaultHost() *lifecycle.Host[*Manager] {
	return defaultHost
}
