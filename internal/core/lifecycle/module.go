package lifecycle

import (
	"context"

	"go.uber.org/fx"
)

// provideCoordinator 提供 Coordinator 实例
func provideCoordinator() *Coordinator {
	return NewCoordinator()
}

// Module 返回 Fx 模块
//
// 提供生命周期协调器作为应用内单例，应用停止时重置所有已注册的 Host。
func Module() fx.Option {
	return fx.Module("lifecycle",
		fx.Provide(
			provideCoordinator,
		),
		fx.Invoke(registerLifecycleHooks),
	)
}

// lifecycleHooksParams 生命周期钩子参数
type lifecycleHooksParams struct {
	fx.In

	Lifecycle   fx.Lifecycle
	Coordinator *Coordinator
}

// registerLifecycleHooks 注册生命周期钩子
func registerLifecycleHooks(params lifecycleHooksParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return params.Coordinator.Stop()
		},
	})
}
