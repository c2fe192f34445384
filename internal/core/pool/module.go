package pool

import (
	"context"

	"go.uber.org/fx"

	"github.com/dep2p/go-eventbus/config"
	"github.com/dep2p/go-eventbus/internal/core/lifecycle"
)

// Params 模块依赖参数
type Params struct {
	fx.In

	UnifiedCfg  *config.Config         `optional:"true"`
	Coordinator *lifecycle.Coordinator `optional:"true"`
}

// ConfigFromUnified 从统一配置获取对象池配置
func ConfigFromUnified(cfg *config.Config) config.PoolConfig {
	if cfg == nil {
		return config.DefaultPoolConfig()
	}
	return cfg.Pool
}

// NewManagerFromParams 从参数创建 Manager
//
// 共享模式下返回进程级默认管理器，交由生命周期协调器在停止时重置。
func NewManagerFromParams(p Params) *Manager {
	cfg := ConfigFromUnified(p.UnifiedCfg)
	if cfg.Shared {
		if p.Coordinator != nil {
			p.Coordinator.Register(defaultHost)
		}
		return Default()
	}
	return NewManager(cfg.DefaultInitialSize)
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("pool",
		fx.Provide(NewManagerFromParams),
		fx.Invoke(registerLifecycle),
	)
}

type lifecycleInput struct {
	fx.In

	LC         fx.Lifecycle
	Manager    *Manager
	UnifiedCfg *config.Config `optional:"true"`
}

// registerLifecycle 非共享模式下应用停止时清空对象池
func registerLifecycle(input lifecycleInput) {
	if ConfigFromUnified(input.UnifiedCfg).Shared {
		return
	}
	input.LC.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return input.Manager.Clear()
		},
	})
}
