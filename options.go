package eventbus

import (
	"errors"
	"fmt"

	"go.uber.org/fx"

	"github.com/dep2p/go-eventbus/config"
)

// Option 运行时配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	// 基础配置（WithConfig/WithConfigFile）
	base *config.Config

	// 预设
	preset string

	// 覆盖项
	shared           *bool
	poolSize         *int
	metricsEnabled   *bool
	metricsNamespace string
	logLevel         string
	logFormat        string
	fxEvents         *bool
	introspectAddr   *string

	// 用户扩展
	userFxOptions []fx.Option
}

// toConfig 合并为统一配置
//
// 顺序：基础配置 → 预设 → 单项覆盖。
func (o *options) toConfig() (*config.Config, error) {
	cfg := o.base
	if cfg == nil {
		cfg = config.NewConfig()
	}

	if err := config.ApplyPreset(cfg, o.preset); err != nil {
		return nil, err
	}

	if o.shared != nil {
		cfg.EventBus.Shared = *o.shared
		cfg.Pool.Shared = *o.shared
	}
	if o.poolSize != nil {
		cfg.Pool.DefaultInitialSize = *o.poolSize
	}
	if o.metricsEnabled != nil {
		cfg.Metrics.Enabled = *o.metricsEnabled
	}
	if o.metricsNamespace != "" {
		cfg.Metrics.Namespace = o.metricsNamespace
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	if o.fxEvents != nil {
		cfg.Log.FxEvents = *o.fxEvents
	}
	if o.introspectAddr != nil {
		cfg.Introspect.Enable = true
		if *o.introspectAddr != "" {
			cfg.Introspect.Addr = *o.introspectAddr
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// ============================================================================
//                              配置来源
// ============================================================================

// WithConfig 使用给定配置作为基础
//
// 配置会被复制，调用方之后的修改不影响运行时。
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return errors.New("配置不能为空")
		}
		c := *cfg
		o.base = &c
		return nil
	}
}

// WithConfigFile 从 JSON 文件加载基础配置
func WithConfigFile(path string) Option {
	return func(o *options) error {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		o.base = cfg
		return nil
	}
}

// WithPreset 使用预设配置
//
// 支持 PresetDefault、PresetMinimal、PresetDebug。
func WithPreset(name string) Option {
	return func(o *options) error {
		o.preset = name
		return nil
	}
}

// ============================================================================
//                              组件选项
// ============================================================================

// WithShared 使用进程级默认注册表与对象池管理器
//
// 运行时停止时默认实例被重置。
func WithShared(shared bool) Option {
	return func(o *options) error {
		o.shared = &shared
		return nil
	}
}

// WithPoolSize 设置对象池默认预填充数量
func WithPoolSize(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("对象池大小不能为负数: %d", n)
		}
		o.poolSize = &n
		return nil
	}
}

// WithMetrics 启用或禁用 Prometheus 采集器
func WithMetrics(enabled bool) Option {
	return func(o *options) error {
		o.metricsEnabled = &enabled
		return nil
	}
}

// WithMetricsNamespace 设置指标名前缀
func WithMetricsNamespace(ns string) Option {
	return func(o *options) error {
		o.metricsNamespace = ns
		return nil
	}
}

// WithIntrospect 启用本地自省 HTTP 服务
//
// addr 为空时使用 config.DefaultIntrospectAddr。
func WithIntrospect(addr string) Option {
	return func(o *options) error {
		o.introspectAddr = &addr
		return nil
	}
}

// ============================================================================
//                              日志选项
// ============================================================================

// WithLogLevel 设置日志级别，格式同 EVENTBUS_LOG_LEVEL
func WithLogLevel(level string) Option {
	return func(o *options) error {
		o.logLevel = level
		return nil
	}
}

// WithLogFormat 设置日志格式（text 或 json）
func WithLogFormat(format string) Option {
	return func(o *options) error {
		o.logFormat = format
		return nil
	}
}

// WithFxEvents 输出 Fx 容器事件
func WithFxEvents(enabled bool) Option {
	return func(o *options) error {
		o.fxEvents = &enabled
		return nil
	}
}

// ============================================================================
//                              扩展选项
// ============================================================================

// WithFxOptions 追加自定义 Fx 选项
//
// 可用于向运行时注入订阅者组件：
//
//	eventbus.WithFxOptions(fx.Invoke(func(bus *eventbus.Registry) error {
//	    return eventbus.SubscribeFunc(bus, "Scored", onScored)
//	}))
func WithFxOptions(opts ...fx.Option) Option {
	return func(o *options) error {
		o.userFxOptions = append(o.userFxOptions, opts...)
		return nil
	}
}
