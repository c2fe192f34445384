package mocks

import (
	"reflect"
	"sync"

	"github.com/dep2p/go-eventbus/pkg/interfaces"
)

// Call 一次处理器调用
type Call[T any] struct {
	Sender any
	Args   T
}

// Recorder 记录调用的事件处理器
//
// 同一个 Recorder 既可通过泛型 API 注册，也可作为 DynamicHandler 注册。
type Recorder[T interfaces.Event] struct {
	mu    sync.Mutex
	calls []Call[T]

	// OnEvent 可选的自定义行为，在记录之后调用
	OnEvent func(sender any, args T)
}

var _ interfaces.DynamicHandler = (*Recorder[interfaces.Marker])(nil)

// NewRecorder 创建 Recorder
func NewRecorder[T interfaces.Event]() *Recorder[T] {
	return &Recorder[T]{}
}

// HandleEvent 记录一次调用
func (r *Recorder[T]) HandleEvent(sender any, args T) {
	r.mu.Lock()
	r.calls = append(r.calls, Call[T]{Sender: sender, Args: args})
	fn := r.OnEvent
	r.mu.Unlock()

	if fn != nil {
		fn(sender, args)
	}
}

// EventType 返回处理器接受的事件类型
func (r *Recorder[T]) EventType() interfaces.EventType {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// HandleAny 类型擦除调用
func (r *Recorder[T]) HandleAny(sender any, args any) {
	r.HandleEvent(sender, args.(T))
}

// Calls 返回调用记录的副本
func (r *Recorder[T]) Calls() []Call[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call[T], len(r.calls))
	copy(out, r.calls)
	return out
}

// Args 返回所有调用的参数
func (r *Recorder[T]) Args() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, c.Args)
	}
	return out
}

// Count 返回调用次数
func (r *Recorder[T]) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Last 返回最后一次调用
func (r *Recorder[T]) Last() (Call[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call[T]{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Reset 清空调用记录
func (r *Recorder[T]) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}
