package pool

import (
	"sync"
	"sync/atomic"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// Factory 对象工厂
type Factory[T any] = pkgif.Factory[T]

// FactoryFunc 函数形式的对象工厂
type FactoryFunc[T any] = pkgif.FactoryFunc[T]

// ObjectPool 单一类型的对象池
//
// 空闲对象以栈保存，最近归还的对象最先被取出。池空时由工厂创建新对象。
type ObjectPool[T any] struct {
	mu      sync.Mutex
	items   []T
	factory Factory[T]

	created atomic.Uint64
	gets    atomic.Uint64
	puts    atomic.Uint64
}

var _ pkgif.Pool[int] = (*ObjectPool[int])(nil)

// New 创建对象池并预填充 initialSize 个对象
func New[T any](initialSize int, factory Factory[T]) *ObjectPool[T] {
	if initialSize < 0 {
		initialSize = 0
	}
	p := &ObjectPool[T]{
		items:   make([]T, 0, initialSize),
		factory: factory,
	}
	for i := 0; i < initialSize; i++ {
		p.items = append(p.items, p.create())
	}
	return p
}

func (p *ObjectPool[T]) create() T {
	p.created.Add(1)
	return p.factory.Create()
}

// Get 取出一个对象
func (p *ObjectPool[T]) Get() T {
	p.gets.Add(1)

	p.mu.Lock()
	n := len(p.items)
	if n == 0 {
		p.mu.Unlock()
		return p.create()
	}
	obj := p.items[n-1]
	var zero T
	p.items[n-1] = zero
	p.items = p.items[:n-1]
	p.mu.Unlock()

	return obj
}

// Put 归还对象
func (p *ObjectPool[T]) Put(obj T) {
	p.puts.Add(1)

	p.mu.Lock()
	p.items = append(p.items, obj)
	p.mu.Unlock()
}

// Len 返回空闲对象数
func (p *ObjectPool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// Stats 返回池计数快照
func (p *ObjectPool[T]) Stats() Stats {
	return Stats{
		Idle:    p.Len(),
		Created: p.created.Load(),
		Gets:    p.gets.Load(),
		Puts:    p.puts.Load(),
	}
}

// drain 取出所有空闲对象
func (p *ObjectPool[T]) drain() []any {
	p.mu.Lock()
	items := p.items
	p.items = nil
	p.mu.Unlock()

	out := make([]any, 0, len(items))
	for _, it := range items {
		out = append(out, it)
	}
	return out
}
