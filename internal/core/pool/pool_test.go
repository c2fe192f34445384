package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

type scoreArgs struct {
	serial int
	Points int
}

func serialFactory() (Factory[*scoreArgs], *int) {
	n := 0
	return FactoryFunc[*scoreArgs](func() *scoreArgs {
		n++
		return &scoreArgs{serial: n}
	}), &n
}

// TestObjectPool_Prefill 创建时预填充
func TestObjectPool_Prefill(t *testing.T) {
	f, n := serialFactory()
	p := New(3, f)

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 3, *n)
	assert.Equal(t, uint64(3), p.Stats().Created)
}

// TestObjectPool_LIFO 最近归还的对象最先取出
func TestObjectPool_LIFO(t *testing.T) {
	f, _ := serialFactory()
	p := New(0, f)

	a, b := p.Get(), p.Get()
	p.Put(a)
	p.Put(b)

	assert.Same(t, b, p.Get())
	assert.Same(t, a, p.Get())
}

// TestObjectPool_CreatesWhenEmpty 池空时由工厂创建
func TestObjectPool_CreatesWhenEmpty(t *testing.T) {
	f, n := serialFactory()
	p := New(1, f)

	first := p.Get()
	second := p.Get()

	assert.Equal(t, 1, first.serial)
	assert.Equal(t, 2, second.serial)
	assert.Equal(t, 2, *n)
	assert.Equal(t, 0, p.Len())

	s := p.Stats()
	assert.Equal(t, uint64(2), s.Gets)
	assert.Equal(t, uint64(0), s.Puts)
}

// TestObjectPool_NegativeSize 负数大小视为 0
func TestObjectPool_NegativeSize(t *testing.T) {
	f, n := serialFactory()
	p := New(-4, f)

	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, *n)
}

// TestObjectPool_ImplementsInterface 验证接口实现
func TestObjectPool_ImplementsInterface(t *testing.T) {
	f, _ := serialFactory()
	var _ pkgif.Pool[*scoreArgs] = New(0, f)
}
