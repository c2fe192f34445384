package eventbus

import (
	"github.com/dep2p/go-eventbus/internal/core/pool"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ════════════════════════════════════════════════════════════════════════════
//                              对象池
// ════════════════════════════════════════════════════════════════════════════

type (
	// PoolManager 按类型管理对象池
	PoolManager = pool.Manager

	// PoolStats 对象池统计
	PoolStats = pool.Stats

	// ObjectPool T 类型对象池
	ObjectPool[T any] = pool.ObjectPool[T]

	// Factory 对象工厂
	Factory[T any] = pkgif.Factory[T]

	// FactoryFunc 函数形式的对象工厂
	FactoryFunc[T any] = pkgif.FactoryFunc[T]
)

// NewPoolManager 创建对象池管理器
func NewPoolManager(defaultSize int) *PoolManager {
	return pool.NewManager(defaultSize)
}

// NewObjectPool 创建独立的对象池并预填充 initialSize 个对象
func NewObjectPool[T any](initialSize int, factory Factory[T]) *ObjectPool[T] {
	return pool.New[T](initialSize, factory)
}

// CreatePool 在管理器中为 T 创建对象池，initialSize 为负数时使用默认大小
func CreatePool[T any](m *PoolManager, factory Factory[T], initialSize int) error {
	return pool.CreatePool[T](m, factory, initialSize)
}

// GetObject 从 T 的对象池取出对象
func GetObject[T any](m *PoolManager) (T, error) {
	return pool.Get[T](m)
}

// ReturnObject 将对象归还给 T 的对象池，对象池不存在时丢弃
func ReturnObject[T any](m *PoolManager, obj T) {
	pool.Return(m, obj)
}
