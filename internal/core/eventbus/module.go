package eventbus

import (
	"context"

	"go.uber.org/fx"

	"github.com/dep2p/go-eventbus/config"
	"github.com/dep2p/go-eventbus/internal/core/lifecycle"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Params 模块依赖参数
type Params struct {
	fx.In

	UnifiedCfg  *config.Config         `optional:"true"`
	Coordinator *lifecycle.Coordinator `optional:"true"`
}

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	Registry *Registry
	EventBus pkgif.EventBus
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("eventbus",
		fx.Provide(ProvideEventBus),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideEventBus 提供 EventBus 实例
//
// 配置为共享模式时返回进程级默认注册表，并交由生命周期协调器在停止时重置。
func ProvideEventBus(p Params) Result {
	cfg := configFromUnified(p.UnifiedCfg)

	var r *Registry
	if cfg.Shared {
		r = Default()
		if p.Coordinator != nil {
			p.Coordinator.Register(defaultHost)
		}
	} else {
		r = NewRegistry()
	}

	return Result{
		Registry: r,
		EventBus: r,
	}
}

func configFromUnified(cfg *config.Config) config.EventBusConfig {
	if cfg == nil {
		return config.DefaultEventBusConfig()
	}
	return cfg.EventBus
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In

	LC         fx.Lifecycle
	Registry   *Registry
	UnifiedCfg *config.Config `optional:"true"`
}

// registerLifecycle 注册生命周期
func registerLifecycle(input lifecycleInput) {
	cfg := configFromUnified(input.UnifiedCfg)

	input.LC.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cfg.ClearOnStop {
				input.Registry.ClearAll()
			}
			return nil
		},
	})
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "eventbus"
	// Description 模块描述
	Description = "进程内同步事件总线，提供类型安全的发布/订阅"
)
