package pool

import "errors"

var (
	// ErrPoolExists 该类型的对象池已存在
	ErrPoolExists = errors.New("pool already exists")
	// ErrPoolNotFound 该类型的对象池不存在
	ErrPoolNotFound = errors.New("pool not found")
	// ErrNilFactory 工厂为空
	ErrNilFactory = errors.New("pool factory is nil")
)
