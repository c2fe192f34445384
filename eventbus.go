package eventbus

import (
	"github.com/dep2p/go-eventbus/internal/core/eventbus"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

type (
	// EventType 事件类型令牌
	EventType = pkgif.EventType

	// Event 事件标记能力
	Event = pkgif.Event

	// Marker 嵌入后获得事件标记
	Marker = pkgif.Marker

	// DynamicHandler 类型擦除的处理器
	DynamicHandler = pkgif.DynamicHandler

	// EventBus 事件总线的动态接口
	EventBus = pkgif.EventBus

	// PublishOpt 发布选项
	PublishOpt = pkgif.PublishOpt

	// Registry 事件注册表
	Registry = eventbus.Registry

	// SlotStats 事件槽统计
	SlotStats = eventbus.SlotStats

	// Handler T 类型事件处理器
	Handler[T Event] = eventbus.Handler[T]

	// HandlerFunc 函数形式的处理器
	HandlerFunc[T Event] = eventbus.HandlerFunc[T]
)

// NewRegistry 创建独立的事件注册表
func NewRegistry() *Registry {
	return eventbus.NewRegistry()
}

// TypeOf 返回 T 的事件类型令牌
func TypeOf[T any]() EventType {
	return eventbus.TypeOf[T]()
}

// IsEventType 检查类型是否带有事件标记
func IsEventType(t EventType) bool {
	return pkgif.IsEventType(t)
}

// Dynamic 将强类型处理器适配为 DynamicHandler，退订时与原处理器视为同一个
func Dynamic[T Event](h Handler[T]) DynamicHandler {
	return eventbus.Dynamic[T](h)
}

// ════════════════════════════════════════════════════════════════════════════
//                              泛型 API
// ════════════════════════════════════════════════════════════════════════════

// Subscribe 订阅 T 类型事件
//
// name 仅在首次创建事件槽时记录，用于错误信息。
func Subscribe[T Event](r *Registry, name string, h Handler[T]) error {
	return eventbus.Subscribe[T](r, name, h)
}

// SubscribeFunc 以函数形式订阅 T 类型事件
func SubscribeFunc[T Event](r *Registry, name string, fn func(sender any, args T)) error {
	return eventbus.SubscribeFunc[T](r, name, fn)
}

// Unsubscribe 退订 T 类型事件，仅移除一次注册
func Unsubscribe[T Event](r *Registry, name string, h Handler[T]) error {
	return eventbus.Unsubscribe[T](r, name, h)
}

// UnsubscribeFunc 以函数形式退订 T 类型事件
func UnsubscribeFunc[T Event](r *Registry, name string, fn func(sender any, args T)) error {
	return eventbus.UnsubscribeFunc[T](r, name, fn)
}

// Publish 同步发布 T 类型事件，默认要求事件已被订阅
func Publish[T Event](r *Registry, sender any, args T, opts ...PublishOpt) error {
	return eventbus.Publish(r, sender, args, opts...)
}

// MustExist 设置未注册事件时的发布行为
func MustExist(strict bool) PublishOpt {
	return pkgif.MustExist(strict)
}

// Optional 未注册事件时静默返回
func Optional() PublishOpt {
	return pkgif.Optional()
}

// ════════════════════════════════════════════════════════════════════════════
//                              默认注册表
// ════════════════════════════════════════════════════════════════════════════

// Default 返回进程级默认注册表
func Default() *Registry {
	return eventbus.Default()
}

// ResetDefault 清空并销毁默认注册表
func ResetDefault() error {
	return eventbus.ResetDefault()
}
