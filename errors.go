package eventbus

import (
	"errors"

	"github.com/dep2p/go-eventbus/internal/core/eventbus"
	"github.com/dep2p/go-eventbus/internal/core/lifecycle"
	"github.com/dep2p/go-eventbus/internal/core/pool"
)

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// 事件总线错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrTypeMismatch 处理器或参数类型与事件槽类型不一致
	ErrTypeMismatch = eventbus.ErrTypeMismatch

	// ErrEventMissing 事件从未被订阅
	ErrEventMissing = eventbus.ErrEventMissing

	// ErrInvalidEventType 类型不带事件标记
	ErrInvalidEventType = eventbus.ErrInvalidEventType

	// ErrInvalidHandler 处理器为 nil
	ErrInvalidHandler = eventbus.ErrInvalidHandler

	// ────────────────────────────────────────────────────────────────────────
	// 生命周期错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrAlreadyConstructed 单例已存在
	ErrAlreadyConstructed = lifecycle.ErrAlreadyConstructed

	// ────────────────────────────────────────────────────────────────────────
	// 对象池错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrPoolExists 同一类型的对象池已存在
	ErrPoolExists = pool.ErrPoolExists

	// ErrPoolNotFound 对象池不存在
	ErrPoolNotFound = pool.ErrPoolNotFound

	// ────────────────────────────────────────────────────────────────────────
	// 运行时错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrNotStarted 运行时未启动
	ErrNotStarted = errors.New("runtime not started")

	// ErrAlreadyStarted 运行时已启动
	ErrAlreadyStarted = errors.New("runtime already started")

	// ErrRuntimeClosed 运行时已关闭
	ErrRuntimeClosed = errors.New("runtime closed")
)

// 结构化错误
type (
	// TypeMismatchError 类型不一致的详细信息
	TypeMismatchError = eventbus.TypeMismatchError

	// EventMissingError 未订阅事件的详细信息
	EventMissingError = eventbus.EventMissingError

	// InvalidEventTypeError 非事件类型的详细信息
	InvalidEventTypeError = eventbus.InvalidEventTypeError
)
