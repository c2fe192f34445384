package eventbus

import (
	"reflect"
	"runtime"
	"strings"
	"unsafe"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// 处理器类型
// ============================================================================

// Handler 强类型事件处理器
type Handler[T pkgif.Event] interface {
	HandleEvent(sender any, args T)
}

// HandlerFunc 函数形式的处理器
//
// 同时实现 Handler[T] 与 pkgif.DynamicHandler，
// 因此可以通过泛型 API 订阅、通过动态 API 退订，反之亦然。
type HandlerFunc[T pkgif.Event] func(sender any, args T)

// HandleEvent 实现 Handler
func (f HandlerFunc[T]) HandleEvent(sender any, args T) {
	f(sender, args)
}

// EventType 实现 pkgif.DynamicHandler
func (f HandlerFunc[T]) EventType() pkgif.EventType {
	return TypeOf[T]()
}

// HandleAny 实现 pkgif.DynamicHandler
func (f HandlerFunc[T]) HandleAny(sender any, args any) {
	v, _ := args.(T)
	f(sender, v)
}

// Dynamic 将强类型处理器包装为动态处理器
//
// 包装后的处理器与原处理器视为同一个处理器。
func Dynamic[T pkgif.Event](h Handler[T]) pkgif.DynamicHandler {
	if d, ok := h.(pkgif.DynamicHandler); ok && d.EventType() == TypeOf[T]() {
		return d
	}
	return dynamicAdapter[T]{h: h}
}

type dynamicAdapter[T pkgif.Event] struct {
	h Handler[T]
}

func (a dynamicAdapter[T]) EventType() pkgif.EventType { return TypeOf[T]() }

func (a dynamicAdapter[T]) HandleAny(sender any, args any) {
	v, _ := args.(T)
	a.h.HandleEvent(sender, v)
}

func (a dynamicAdapter[T]) handlerIdentity() any { return a.h }

// TypeOf 返回 T 的事件类型标识
func TypeOf[T any]() pkgif.EventType {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ============================================================================
// 处理器条目
// ============================================================================

// entry 事件槽中保存的类型擦除处理器
type entry struct {
	id   any
	typ  pkgif.EventType
	call func(sender, args any)
}

func typedEntry[T pkgif.Event](h Handler[T]) entry {
	return entry{
		id:  identityOf(h),
		typ: TypeOf[T](),
		call: func(sender, args any) {
			v, _ := args.(T)
			h.HandleEvent(sender, v)
		},
	}
}

func dynamicEntry(h pkgif.DynamicHandler) entry {
	return entry{
		id:   identityOf(h),
		typ:  h.EventType(),
		call: h.HandleAny,
	}
}

// identifier 由包装类型实现，返回被包装处理器的身份
type identifier interface {
	handlerIdentity() any
}

func identityOf(h any) any {
	if w, ok := h.(identifier); ok {
		return w.handlerIdentity()
	}
	return h
}

// isNilHandler 检查处理器是否为 nil（包括包装了 nil 函数的情况）
func isNilHandler(h any) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// sameHandler 判断两个处理器身份是否相同
//
// 可比较类型使用 ==；函数按函数值（闭包指针）比较，见 sameFunc。
func sameHandler(a, b any) (same bool) {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta == nil {
		return true
	}
	switch ta.Kind() {
	case reflect.Func:
		return sameFunc(a, b)
	case reflect.Map, reflect.Slice:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	if !ta.Comparable() {
		return false
	}
	// 含接口字段的结构体在运行时仍可能不可比较
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

// sameFunc 比较两个同类型函数值
//
// 同一个函数值（同一闭包）视为相同。指针接收者的方法值每次求值都会生成新闭包，
// 因此额外比较代码指针与接收者：p.OnEvent 与另一次求值的 p.OnEvent 相同，
// 与 q.OnEvent 不同。同一字面量在不同迭代中创建的闭包互不相同。
func sameFunc(a, b any) bool {
	pa, pb := funcValue(a), funcValue(b)
	if pa == pb {
		return true
	}
	if pa == nil || pb == nil {
		return false
	}

	code := reflect.ValueOf(a).Pointer()
	if code != reflect.ValueOf(b).Pointer() || !isPointerMethodValue(code) {
		return false
	}
	// 方法值闭包布局为 {代码指针, 接收者}
	ra := *(*unsafe.Pointer)(unsafe.Add(pa, unsafe.Sizeof(uintptr(0))))
	rb := *(*unsafe.Pointer)(unsafe.Add(pb, unsafe.Sizeof(uintptr(0))))
	return ra == rb
}

// funcValue 返回函数值本身（闭包指针），reflect.Value.Pointer 只返回代码指针
func funcValue(f any) unsafe.Pointer {
	v := reflect.New(reflect.TypeOf(f)).Elem()
	v.Set(reflect.ValueOf(f))
	return *(*unsafe.Pointer)(v.Addr().UnsafePointer())
}

// isPointerMethodValue 检查代码指针是否为指针接收者方法值的包装函数
func isPointerMethodValue(code uintptr) bool {
	fn := runtime.FuncForPC(code)
	if fn == nil {
		return false
	}
	name := fn.Name()
	return strings.HasSuffix(name, "-fm") && strings.Contains(name, "(*")
}
