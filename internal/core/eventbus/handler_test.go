package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type valueHandler struct {
	id int
}

func (valueHandler) HandleEvent(any, Scored) {}

type ifaceHolder struct {
	v any
}

func (ifaceHolder) HandleEvent(any, Scored) {}

func namedScored(any, Scored) {}

// TestSameHandler 测试处理器身份比较
func TestSameHandler(t *testing.T) {
	a, b := &movedListener{}, &movedListener{}
	fn := HandlerFunc[Scored](namedScored)

	assert.True(t, sameHandler(a, a), "同一指针")
	assert.False(t, sameHandler(a, b), "不同指针")
	assert.True(t, sameHandler(valueHandler{1}, valueHandler{1}), "可比较值按 == 比较")
	assert.False(t, sameHandler(valueHandler{1}, valueHandler{2}))
	assert.True(t, sameHandler(fn, HandlerFunc[Scored](namedScored)), "同一函数")
	assert.False(t, sameHandler(fn, HandlerFunc[Scored](func(any, Scored) {})), "不同函数")
	assert.False(t, sameHandler(fn, a), "类型不同")

	// 方法值：同一接收者相同，不同接收者不同
	assert.True(t, sameHandler(HandlerFunc[moved](a.HandleEvent), HandlerFunc[moved](a.HandleEvent)))
	assert.False(t, sameHandler(HandlerFunc[moved](a.HandleEvent), HandlerFunc[moved](b.HandleEvent)))

	// 循环中创建的闭包互不相同
	var last int
	loop := make([]HandlerFunc[Scored], 0, 2)
	for i := range 2 {
		loop = append(loop, func(any, Scored) { last = i })
	}
	loop[1](nil, 0)
	assert.Equal(t, 1, last)
	assert.True(t, sameHandler(loop[0], loop[0]))
	assert.False(t, sameHandler(loop[0], loop[1]))
	assert.True(t, sameHandler(nil, nil))
	assert.False(t, sameHandler(nil, a))

	// 接口字段持有不可比较值时不会 panic
	x := ifaceHolder{v: []int{1}}
	assert.NotPanics(t, func() {
		assert.False(t, sameHandler(x, ifaceHolder{v: []int{1}}))
	})
}

// TestIsNilHandler 测试 nil 处理器检测
func TestIsNilHandler(t *testing.T) {
	assert.True(t, isNilHandler(nil))
	assert.True(t, isNilHandler(HandlerFunc[Scored](nil)))
	assert.True(t, isNilHandler((*movedListener)(nil)))
	assert.False(t, isNilHandler(&movedListener{}))
	assert.False(t, isNilHandler(valueHandler{}))
}

// TestHandlerFunc_HandleAny 擦除调用转换为强类型调用
func TestHandlerFunc_HandleAny(t *testing.T) {
	var got Scored
	fn := HandlerFunc[Scored](func(_ any, s Scored) { got = s })

	fn.HandleAny(nil, Scored(8))
	assert.Equal(t, Scored(8), got)
	assert.Equal(t, TypeOf[Scored](), fn.EventType())
}
