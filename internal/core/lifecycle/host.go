// Package lifecycle 提供进程级单例托管与生命周期协调
//
// 核心职责：
//  1. Host 懒加载创建唯一实例，并拒绝重复构造
//  2. Coordinator 在进程（或 Fx 应用）停止时按注册逆序重置所有 Host
package lifecycle

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/multierr"

	"github.com/dep2p/go-eventbus/pkg/lib/log"
)

var logger = log.Logger("core/lifecycle")

// ============================================================================
//                              错误定义
// ============================================================================

var (
	// ErrAlreadyConstructed 已存在存活实例
	ErrAlreadyConstructed = errors.New("singleton already constructed")

	// ErrNoConstructor 未提供构造函数
	ErrNoConstructor = errors.New("singleton has no constructor")
)

// ============================================================================
//                              Host
// ============================================================================

// Host 单例托管
//
// 同一时刻最多持有一个存活实例。首次 Instance 调用时构造实例并执行初始化；
// 初始化失败不会留下实例，下次调用重新尝试。
//
// 构造函数在持锁状态下执行，不能回调同一个 Host。
type Host[T any] struct {
	name     string
	ctor     func() (T, error)
	teardown func(T) error

	mu       sync.Mutex
	live     bool
	instance T
}

// HostOption Host 选项
type HostOption[T any] func(*Host[T])

// WithTeardown 设置重置时的清理函数
//
// 清理函数在 io.Closer 关闭之前执行。
func WithTeardown[T any](fn func(T) error) HostOption[T] {
	return func(h *Host[T]) {
		h.teardown = fn
	}
}

// NewHost 创建单例托管
func NewHost[T any](name string, ctor func() (T, error), opts ...HostOption[T]) *Host[T] {
	h := &Host[T]{
		name: name,
		ctor: ctor,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Name 返回托管名称
func (h *Host[T]) Name() string {
	return h.name
}

// Instance 返回唯一实例，必要时懒加载创建
func (h *Host[T]) Instance() (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.live {
		return h.instance, nil
	}

	var zero T
	if h.ctor == nil {
		return zero, fmt.Errorf("%s: %w", h.name, ErrNoConstructor)
	}

	v, err := h.ctor()
	if err != nil {
		return zero, fmt.Errorf("%s: construct singleton: %w", h.name, err)
	}

	h.instance = v
	h.live = true

	logger.Debug("单例已创建", "host", h.name)
	return v, nil
}

// MustInstance 返回唯一实例，创建失败时 panic
func (h *Host[T]) MustInstance() T {
	v, err := h.Instance()
	if err != nil {
		panic(err)
	}
	return v
}

// Install 安装外部构造的实例
//
// 已存在存活实例时返回 ErrAlreadyConstructed。
// 用于依赖注入场景：由容器构造实例，再交给 Host 作为全局访问点。
func (h *Host[T]) Install(v T) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.live {
		return fmt.Errorf("%s: %w", h.name, ErrAlreadyConstructed)
	}

	h.instance = v
	h.live = true

	logger.Debug("单例已安装", "host", h.name)
	return nil
}

// Live 检查是否存在存活实例
func (h *Host[T]) Live() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.live
}

// Reset 销毁当前实例
//
// 依次执行清理函数、关闭实现 io.Closer 的实例，然后忘记该实例。
// 无论清理是否出错实例都会被移除，错误合并后返回。
func (h *Host[T]) Reset() error {
	h.mu.Lock()
	if !h.live {
		h.mu.Unlock()
		return nil
	}
	v := h.instance
	var zero T
	h.instance = zero
	h.live = false
	h.mu.Unlock()

	var err error
	if h.teardown != nil {
		err = multierr.Append(err, h.teardown(v))
	}
	if c, ok := any(v).(io.Closer); ok {
		err = multierr.Append(err, c.Close())
	}

	if err != nil {
		logger.Warn("单例重置出错", "host", h.name, "err", err)
		return fmt.Errorf("%s: reset singleton: %w", h.name, err)
	}

	logger.Debug("单例已重置", "host", h.name)
	return nil
}
