package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-eventbus/config"
	"github.com/dep2p/go-eventbus/internal/core/lifecycle"
	"github.com/dep2p/go-eventbus/internal/core/metrics"
	"github.com/dep2p/go-eventbus/internal/debug/introspect"
	"github.com/dep2p/go-eventbus/pkg/lib/log"
)

var logger = log.Logger("eventbus")

// ════════════════════════════════════════════════════════════════════════════
//                              运行时状态
// ════════════════════════════════════════════════════════════════════════════

// State 运行时状态
type State int

const (
	// StateIdle 已创建，未启动
	StateIdle State = iota

	// StateRunning 运行中
	StateRunning

	// StateStopped 已停止，不可重新启动
	StateStopped
)

// String 返回状态的字符串表示
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// startTimeout Start 未设置截止时间时的默认超时
const startTimeout = 15 * time.Second

// Snapshot 事件槽与对象池统计快照
type Snapshot = metrics.Snapshot

// ════════════════════════════════════════════════════════════════════════════
//                              Runtime
// ════════════════════════════════════════════════════════════════════════════

// Runtime 组装好的事件总线运行时
//
// Runtime 是一个门面，聚合 Fx 应用中的各组件：
//   - EventBus: 事件注册表
//   - Pools: 对象池管理器
//   - Metrics: Prometheus 注册表
//
// 使用示例：
//
//	rt, err := eventbus.New(eventbus.WithPoolSize(4))
//	if err != nil {
//	    return err
//	}
//	if err := rt.Start(ctx); err != nil {
//	    return err
//	}
//	defer rt.Stop(ctx)
type Runtime struct {
	mu    sync.Mutex
	state State

	cfg *config.Config
	app *fx.App

	bus         *Registry
	pools       *PoolManager
	prom        *prometheus.Registry
	coordinator *lifecycle.Coordinator
	introspect  *introspect.Server
}

// New 创建运行时
//
// 组件在 New 返回前完成构造，Start 之前即可订阅事件。
func New(opts ...Option) (*Runtime, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	cfg, err := o.toConfig()
	if err != nil {
		return nil, err
	}

	log.Configure(cfg.Log.Level, cfg.Log.Format)

	rt := &Runtime{cfg: cfg}
	rt.app = buildFxApp(cfg, rt, o.userFxOptions)
	if err := rt.app.Err(); err != nil {
		return nil, fmt.Errorf("build fx app: %w", err)
	}

	logger.Debug("运行时已创建", "registry", rt.bus.ID(), "shared", cfg.EventBus.Shared)
	return rt, nil
}

// Start 启动运行时
func (rt *Runtime) Start(ctx context.Context) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	switch rt.state {
	case StateRunning:
		return ErrAlreadyStarted
	case StateStopped:
		return ErrRuntimeClosed
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, startTimeout)
		defer cancel()
	}

	if err := rt.app.Start(ctx); err != nil {
		logger.Error("启动运行时失败", "error", err)
		return fmt.Errorf("start fx app: %w", err)
	}

	rt.state = StateRunning
	logger.Info("运行时已启动", "registry", rt.bus.ID())
	return nil
}

// Stop 停止运行时
//
// 按反向顺序执行各组件的 OnStop：清空注册表、清空对象池、重置共享单例。
func (rt *Runtime) Stop(ctx context.Context) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	switch rt.state {
	case StateIdle:
		return ErrNotStarted
	case StateStopped:
		return ErrRuntimeClosed
	}

	rt.state = StateStopped
	if err := rt.app.Stop(ctx); err != nil {
		logger.Error("停止运行时失败", "error", err)
		return fmt.Errorf("stop fx app: %w", err)
	}

	logger.Info("运行时已停止")
	return nil
}

// Close 停止运行时，可重复调用
func (rt *Runtime) Close() error {
	rt.mu.Lock()
	if rt.state != StateRunning {
		rt.state = StateStopped
		rt.mu.Unlock()
		return nil
	}
	rt.mu.Unlock()

	if err := rt.Stop(context.Background()); err != nil && !errors.Is(err, ErrRuntimeClosed) {
		return err
	}
	return nil
}

// State 返回运行时状态
func (rt *Runtime) State() State {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.state
}

// Config 返回生效的配置
func (rt *Runtime) Config() *config.Config {
	return rt.cfg
}

// EventBus 返回事件注册表
func (rt *Runtime) EventBus() *Registry {
	return rt.bus
}

// Pools 返回对象池管理器
func (rt *Runtime) Pools() *PoolManager {
	return rt.pools
}

// Metrics 返回 Prometheus 注册表
//
// 指标禁用时注册表为空。
func (rt *Runtime) Metrics() *prometheus.Registry {
	return rt.prom
}

// Stats 返回统计快照
func (rt *Runtime) Stats() Snapshot {
	return metrics.TakeSnapshot(rt.bus, rt.pools)
}

// IntrospectAddr 返回自省服务的实际监听地址，未启用时返回空字符串
func (rt *Runtime) IntrospectAddr() string {
	if rt.introspect == nil {
		return ""
	}
	return rt.introspect.Addr()
}

// Lifecycle 返回已托管的单例名称，按注册顺序
func (rt *Runtime) Lifecycle() []string {
	return rt.coordinator.Hosts()
}
