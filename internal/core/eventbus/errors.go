package eventbus

import (
	"errors"
	"fmt"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrTypeMismatch 处理器或负载类型与事件槽绑定的类型不一致
	ErrTypeMismatch = errors.New("event type mismatch")
	// ErrEventMissing 事件从未被订阅
	ErrEventMissing = errors.New("event missing")
	// ErrInvalidEventType 类型未实现事件标记
	ErrInvalidEventType = errors.New("invalid event type")
	// ErrInvalidHandler 处理器为空
	ErrInvalidHandler = errors.New("invalid handler")
)

// op 触发类型检查的操作
type op string

const (
	opAdd    op = "add"
	opRemove op = "remove"
	opInvoke op = "invoke"
)

// TypeMismatchError 类型不匹配错误
type TypeMismatchError struct {
	Op        string
	EventName string
	Expected  pkgif.EventType
	Actual    pkgif.EventType
}

func (e *TypeMismatchError) Error() string {
	switch op(e.Op) {
	case opAdd:
		return fmt.Sprintf("event %s is of type %v, cannot add a handler of type %v", e.EventName, e.Expected, e.Actual)
	case opRemove:
		return fmt.Sprintf("event %s is of type %v, cannot remove a handler of type %v", e.EventName, e.Expected, e.Actual)
	default:
		return fmt.Sprintf("event %s is of type %v, cannot be invoked with argument of type %v", e.EventName, e.Expected, e.Actual)
	}
}

// Unwrap 支持 errors.Is(err, ErrTypeMismatch)
func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// EventMissingError 事件缺失错误
type EventMissingError struct {
	EventType pkgif.EventType
}

func (e *EventMissingError) Error() string {
	return fmt.Sprintf("event of type %v was never subscribed", e.EventType)
}

// Unwrap 支持 errors.Is(err, ErrEventMissing)
func (e *EventMissingError) Unwrap() error { return ErrEventMissing }

// InvalidEventTypeError 无效事件类型错误
type InvalidEventTypeError struct {
	EventType pkgif.EventType
}

func (e *InvalidEventTypeError) Error() string {
	if e.EventType == nil {
		return "event type is nil"
	}
	return fmt.Sprintf("type %v does not implement Event", e.EventType)
}

// Unwrap 支持 errors.Is(err, ErrInvalidEventType)
func (e *InvalidEventTypeError) Unwrap() error { return ErrInvalidEventType }

func mismatch(o op, name string, expected, actual pkgif.EventType) error {
	return &TypeMismatchError{
		Op:        string(o),
		EventName: name,
		Expected:  expected,
		Actual:    actual,
	}
}
