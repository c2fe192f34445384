package eventbus

import pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"

// ============================================================================
// 泛型 API
// ============================================================================
//
// 泛型函数在编译期通过 T pkgif.Event 约束检查事件标记，
// 其余行为与 Registry 的动态方法完全一致。

// Subscribe 订阅 T 类型事件
func Subscribe[T pkgif.Event](r *Registry, name string, h Handler[T]) error {
	if isNilHandler(h) {
		return ErrInvalidHandler
	}
	return r.subscribe(TypeOf[T](), name, typedEntry(h))
}

// SubscribeFunc 以函数形式订阅 T 类型事件
//
// 退订时需要传入同一个函数值，或同一接收者的指针方法值（如 p.OnScored）。
func SubscribeFunc[T pkgif.Event](r *Registry, name string, fn func(sender any, args T)) error {
	if fn == nil {
		return ErrInvalidHandler
	}
	return Subscribe[T](r, name, HandlerFunc[T](fn))
}

// Unsubscribe 退订 T 类型事件
//
// 事件从未被订阅时返回 ErrEventMissing。
func Unsubscribe[T pkgif.Event](r *Registry, _ string, h Handler[T]) error {
	if isNilHandler(h) {
		return ErrInvalidHandler
	}
	typ := TypeOf[T]()
	return r.unsubscribe(typ, identityOf(h), typ)
}

// UnsubscribeFunc 以函数形式退订 T 类型事件
func UnsubscribeFunc[T pkgif.Event](r *Registry, name string, fn func(sender any, args T)) error {
	if fn == nil {
		return ErrInvalidHandler
	}
	return Unsubscribe[T](r, name, HandlerFunc[T](fn))
}

// Publish 同步发布 T 类型事件
func Publish[T pkgif.Event](r *Registry, sender any, args T, opts ...pkgif.PublishOpt) error {
	return r.publish(TypeOf[T](), sender, args, TypeOf[T](), opts)
}
