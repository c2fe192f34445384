// Package interfaces 定义 go-eventbus 公共接口
//
// 本文件定义 EventBus 接口，提供进程内同步的事件发布订阅功能。
package interfaces

import "reflect"

// ============================================================================
//                              事件类型
// ============================================================================

// EventType 事件类型标识
//
// 两个 EventType 相等当且仅当它们表示同一个 Go 类型（Foo 与 *Foo 不同）。
type EventType = reflect.Type

// Event 事件标记接口
//
// 作为事件负载使用的类型必须实现该接口。通常通过嵌入 Marker 获得：
//
//	type PlayerScored struct {
//	    interfaces.Marker
//	    Points int
//	}
type Event interface {
	EventMarker()
}

// Marker 可嵌入的事件标记
type Marker struct{}

// EventMarker 实现 Event
func (Marker) EventMarker() {}

var eventIface = reflect.TypeOf((*Event)(nil)).Elem()

// IsEventType 检查类型是否带有事件标记
func IsEventType(t EventType) bool {
	return t != nil && t.Implements(eventIface)
}

// ============================================================================
//                              处理器
// ============================================================================

// DynamicHandler 类型擦除的事件处理器
//
// 动态 API 通过 EventType 在运行时校验处理器与事件类型是否匹配，
// 匹配后才会调用 HandleAny，因此实现中的类型断言总是成功的。
type DynamicHandler interface {
	// EventType 返回处理器接受的负载类型
	EventType() EventType

	// HandleAny 以擦除后的参数调用处理器
	HandleAny(sender any, args any)
}

// ============================================================================
//                              EventBus
// ============================================================================

// EventBus 定义事件总线的动态接口
//
// 所有方法以运行时类型标识 EventType 作为键。与泛型 API 共享同一组处理器槽，
// 通过任一形式订阅的处理器都可以通过另一形式退订或触发。
type EventBus interface {
	// Subscribe 订阅指定类型的事件
	Subscribe(eventType EventType, name string, handler DynamicHandler) error

	// Unsubscribe 退订指定类型的事件
	Unsubscribe(eventType EventType, name string, handler DynamicHandler) error

	// Publish 同步发布事件
	Publish(eventType EventType, sender any, args any, opts ...PublishOpt) error

	// ClearAll 清空所有事件槽
	ClearAll()

	// EventTypes 返回所有已注册的事件类型
	EventTypes() []EventType
}

// PublishOpt 发布选项函数类型
type PublishOpt func(*PublishSettings)

// PublishSettings 发布设置（导出以供实现使用）
type PublishSettings struct {
	// MustExist 事件未注册时是否返回 EventMissing
	MustExist bool
}

// MustExist 设置未注册事件时的行为
func MustExist(strict bool) PublishOpt {
	return func(s *PublishSettings) {
		s.MustExist = strict
	}
}

// Optional 未注册事件时静默返回
func Optional() PublishOpt {
	return MustExist(false)
}
