package eventbus

import (
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// Registry 实现
// ============================================================================

// Registry 事件注册表
//
// 维护事件类型到处理器槽的映射，是订阅、退订与发布的唯一入口。
// 动态方法（本文件）与泛型函数（generic.go）共享同一组事件槽。
type Registry struct {
	id string

	mu sync.RWMutex

	// slots 事件类型到处理器槽的映射
	slots map[pkgif.EventType]*slot
}

// NewRegistry 创建新的事件注册表
func NewRegistry() *Registry {
	return &Registry{
		id:    uuid.NewString(),
		slots: make(map[pkgif.EventType]*slot),
	}
}

// ID 返回注册表实例 ID（仅用于诊断）
func (r *Registry) ID() string {
	return r.id
}

// ============================================================================
// EventBus 接口实现
// ============================================================================

// Subscribe 订阅事件
//
// 事件类型必须实现 pkgif.Event，否则返回 ErrInvalidEventType。
// 首次订阅时创建事件槽，name 作为槽的诊断标签。
func (r *Registry) Subscribe(eventType pkgif.EventType, name string, handler pkgif.DynamicHandler) error {
	if err := checkEventType(eventType); err != nil {
		return err
	}
	if isNilHandler(handler) {
		return ErrInvalidHandler
	}
	return r.subscribe(eventType, name, dynamicEntry(handler))
}

// Unsubscribe 退订事件
//
// 事件从未被订阅时返回 ErrEventMissing，即使处理器本身也不存在。
func (r *Registry) Unsubscribe(eventType pkgif.EventType, _ string, handler pkgif.DynamicHandler) error {
	if err := checkEventType(eventType); err != nil {
		return err
	}
	if isNilHandler(handler) {
		return ErrInvalidHandler
	}
	return r.unsubscribe(eventType, identityOf(handler), handler.EventType())
}

// Publish 同步发布事件
//
// 负载类型取 args 的动态类型，必须与事件槽绑定的类型一致；
// 事件类型为接口时，可赋值给该接口的负载按接口类型处理。
// 默认事件未注册时返回 ErrEventMissing，传入 pkgif.Optional() 时静默返回。
func (r *Registry) Publish(eventType pkgif.EventType, sender any, args any, opts ...pkgif.PublishOpt) error {
	if err := checkEventType(eventType); err != nil {
		return err
	}
	return r.publish(eventType, sender, args, payloadType(eventType, args), opts)
}

// ClearAll 清空所有事件槽
//
// 正在进行的发布会继续使用其快照完成调用。
func (r *Registry) ClearAll() {
	r.mu.Lock()
	r.slots = make(map[pkgif.EventType]*slot)
	r.mu.Unlock()
}

// EventTypes 返回所有已注册的事件类型，按类型名排序
func (r *Registry) EventTypes() []pkgif.EventType {
	r.mu.RLock()
	types := make([]pkgif.EventType, 0, len(r.slots))
	for typ := range r.slots {
		types = append(types, typ)
	}
	r.mu.RUnlock()

	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
	return types
}

// HasEvent 检查事件类型是否已有事件槽
func (r *Registry) HasEvent(eventType pkgif.EventType) bool {
	_, ok := r.lookup(eventType)
	return ok
}

// HandlerCount 返回事件类型当前注册的处理器数量
func (r *Registry) HandlerCount(eventType pkgif.EventType) int {
	s, ok := r.lookup(eventType)
	if !ok {
		return 0
	}
	return s.len()
}

// ============================================================================
// 内部方法
// ============================================================================

func (r *Registry) lookup(typ pkgif.EventType) (*slot, bool) {
	r.mu.RLock()
	s, ok := r.slots[typ]
	r.mu.RUnlock()
	return s, ok
}

// subscribe 获取或创建事件槽并追加处理器
//
// 首次订阅即类型不匹配时不会留下空的事件槽。
func (r *Registry) subscribe(typ pkgif.EventType, name string, e entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[typ]
	if !ok {
		s = newSlot(name, typ)
		if err := s.add(e); err != nil {
			return err
		}
		r.slots[typ] = s
		return nil
	}
	return s.add(e)
}

func (r *Registry) unsubscribe(typ pkgif.EventType, id any, handlerType pkgif.EventType) error {
	s, ok := r.lookup(typ)
	if !ok {
		return &EventMissingError{EventType: typ}
	}
	return s.remove(id, handlerType)
}

func (r *Registry) publish(typ pkgif.EventType, sender, args any, argsType pkgif.EventType, opts []pkgif.PublishOpt) error {
	settings := &publishSettings{
		MustExist: true,
	}
	for _, opt := range opts {
		opt(settings)
	}

	s, ok := r.lookup(typ)
	if !ok {
		if settings.MustExist {
			return &EventMissingError{EventType: typ}
		}
		return nil
	}
	return s.invoke(sender, args, argsType)
}

// payloadType 返回动态发布时用于类型检查的负载类型
func payloadType(eventType pkgif.EventType, args any) pkgif.EventType {
	typ := reflect.TypeOf(args)
	if typ != nil && eventType.Kind() == reflect.Interface && typ.AssignableTo(eventType) {
		return eventType
	}
	return typ
}

func checkEventType(typ pkgif.EventType) error {
	if !pkgif.IsEventType(typ) {
		return &InvalidEventTypeError{EventType: typ}
	}
	return nil
}
