package eventbus

import pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"

// ============================================================================
// 本地选项函数
// ============================================================================

// MustExist 设置未注册事件时的发布行为
//
// 这是一个便利函数，与 pkg/interfaces.MustExist 等效
func MustExist(strict bool) pkgif.PublishOpt {
	return pkgif.MustExist(strict)
}

// Optional 未注册事件时静默返回
//
// 这是一个便利函数，与 pkg/interfaces.Optional 等效
func Optional() pkgif.PublishOpt {
	return pkgif.Optional()
}
