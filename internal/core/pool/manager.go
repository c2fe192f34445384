package pool

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"sync"

	"go.uber.org/multierr"

	"github.com/dep2p/go-eventbus/pkg/lib/log"
)

var logger = log.Logger("core/pool")

// Stats 对象池计数
type Stats struct {
	// Type 池对象类型（仅 Manager.Stats 填充）
	Type reflect.Type
	// Idle 空闲对象数
	Idle int
	// Created 工厂创建的对象总数
	Created uint64
	// Gets 取出次数
	Gets uint64
	// Puts 归还次数
	Puts uint64
}

// managed Manager 持有的类型擦除对象池
type managed interface {
	Len() int
	Stats() Stats
	drain() []any
}

// Manager 按类型管理多个对象池
type Manager struct {
	mu          sync.RWMutex
	pools       map[reflect.Type]managed
	defaultSize int
}

// NewManager 创建对象池管理器
//
// defaultSize 为 CreatePool 传入负数大小时使用的预填充数量。
func NewManager(defaultSize int) *Manager {
	if defaultSize < 0 {
		defaultSize = 0
	}
	return &Manager{
		pools:       make(map[reflect.Type]managed),
		defaultSize: defaultSize,
	}
}

// DefaultSize 返回默认预填充数量
func (m *Manager) DefaultSize() int {
	return m.defaultSize
}

// CreatePool 为 T 创建对象池
//
// initialSize 为负数时使用管理器的默认大小。同一类型重复创建返回 ErrPoolExists。
func CreatePool[T any](m *Manager, factory Factory[T], initialSize int) error {
	if factory == nil {
		return ErrNilFactory
	}
	if initialSize < 0 {
		initialSize = m.defaultSize
	}

	typ := typeOf[T]()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.pools[typ]; ok {
		return fmt.Errorf("pool of type %v: %w", typ, ErrPoolExists)
	}
	m.pools[typ] = New(initialSize, factory)

	logger.Debug("对象池已创建", "type", typ.String(), "initial", initialSize)
	return nil
}

// Exists 检查 T 的对象池是否存在
func Exists[T any](m *Manager) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.pools[typeOf[T]()]
	return ok
}

// Lookup 返回 T 的对象池
func Lookup[T any](m *Manager) (*ObjectPool[T], error) {
	typ := typeOf[T]()

	m.mu.RLock()
	p, ok := m.pools[typ]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("pool of type %v: %w", typ, ErrPoolNotFound)
	}
	return p.(*ObjectPool[T]), nil
}

// Get 从 T 的对象池取出对象
func Get[T any](m *Manager) (T, error) {
	p, err := Lookup[T](m)
	if err != nil {
		var zero T
		return zero, err
	}
	return p.Get(), nil
}

// Return 将对象归还给 T 的对象池
//
// 对象池不存在时对象被丢弃。
func Return[T any](m *Manager, obj T) {
	p, err := Lookup[T](m)
	if err != nil {
		return
	}
	p.Put(obj)
}

// Types 返回已创建对象池的类型，按名称排序
func (m *Manager) Types() []reflect.Type {
	m.mu.RLock()
	types := make([]reflect.Type, 0, len(m.pools))
	for typ := range m.pools {
		types = append(types, typ)
	}
	m.mu.RUnlock()

	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
	return types
}

// Stats 返回所有对象池的计数快照，按类型名排序
func (m *Manager) Stats() []Stats {
	m.mu.RLock()
	stats := make([]Stats, 0, len(m.pools))
	for typ, p := range m.pools {
		s := p.Stats()
		s.Type = typ
		stats = append(stats, s)
	}
	m.mu.RUnlock()

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Type.String() < stats[j].Type.String()
	})
	return stats
}

// Clear 移除所有对象池
//
// 池中实现 io.Closer 的空闲对象会被关闭，关闭错误合并后返回。
// 尚未归还的对象不受影响，之后归还时会被丢弃。
func (m *Manager) Clear() error {
	m.mu.Lock()
	pools := m.pools
	m.pools = make(map[reflect.Type]managed)
	m.mu.Unlock()

	var err error
	for _, p := range pools {
		for _, obj := range p.drain() {
			if c, ok := obj.(io.Closer); ok {
				err = multierr.Append(err, c.Close())
			}
		}
	}

	logger.Debug("对象池已清空", "pools", len(pools))
	return err
}

// Close 实现 io.Closer，等价于 Clear
func (m *Manager) Close() error {
	return m.Clear()
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
