package interfaces

// Factory 对象工厂
type Factory[T any] interface {
	// Create 创建新实例
	Create() T
}

// FactoryFunc 函数形式的对象工厂
type FactoryFunc[T any] func() T

// Create 实现 Factory
func (f FactoryFunc[T]) Create() T {
	return f()
}

// Pool 对象池契约
//
// 取出的对象在归还前由调用方持有，不发生其他所有权转移。
type Pool[T any] interface {
	// Get 取出一个实例，池空时由工厂创建
	Get() T

	// Put 归还实例
	Put(obj T)

	// Len 返回池中空闲实例数
	Len() int
}
