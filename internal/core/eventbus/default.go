package eventbus

import "github.com/dep2p/go-eventbus/internal/core/lifecycle"

// ============================================================================
// 进程级默认注册表
// ============================================================================

var defaultHost = lifecycle.NewHost("eventbus",
	func() (*Registry, error) {
		return NewRegistry(), nil
	},
	lifecycle.WithTeardown(func(r *Registry) error {
		r.ClearAll()
		return nil
	}),
)

// Default 返回进程级默认注册表，首次调用时创建
//
// 仅供无法通过构造参数获得注册表的调用点使用（如测试引导）；
// 其余场景应通过依赖注入传递 *Registry。
func Default() *Registry {
	return defaultHost.MustInstance()
}

// ResetDefault 清空并销毁默认注册表，下次 Default 调用时重新创建
func ResetDefault() error {
	return defaultHost.Reset()
}

// DefaultHost 返回默认注册表的托管对象
func DefaultHost() *lifecycle.Host[*Registry] {
	return defaultHost
}
