package metrics

import (
	"go.uber.org/fx"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dep2p/go-eventbus/config"
	"github.com/dep2p/go-eventbus/internal/core/eventbus"
	"github.com/dep2p/go-eventbus/internal/core/pool"
	"github.com/dep2p/go-eventbus/pkg/lib/log"
)

var logger = log.Logger("core/metrics")

// ConfigFromUnified 从统一配置创建指标配置
func ConfigFromUnified(cfg *config.Config) config.MetricsConfig {
	if cfg == nil {
		return config.DefaultMetricsConfig()
	}
	return cfg.Metrics
}

// Params Metrics 依赖参数
type Params struct {
	fx.In

	Registry   *eventbus.Registry
	UnifiedCfg *config.Config `optional:"true"`
	Pools      *pool.Manager  `optional:"true"`
}

// NewCollectorFromParams 从参数创建 Collector，禁用时返回 nil
func NewCollectorFromParams(p Params) *Collector {
	cfg := ConfigFromUnified(p.UnifiedCfg)
	if !cfg.Enabled {
		return nil
	}

	var pools PoolSource
	if p.Pools != nil {
		pools = p.Pools
	}
	return NewCollector(cfg.Namespace, p.Registry, pools)
}

// NewPrometheusRegistry 创建独立的 Prometheus 注册表
func NewPrometheusRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// Module 是 metrics 的 Fx 模块
func Module() fx.Option {
	return fx.Module("metrics",
		fx.Provide(
			NewCollectorFromParams,
			NewPrometheusRegistry,
		),
		fx.Invoke(register),
	)
}

func register(reg *prometheus.Registry, c *Collector) error {
	if c == nil {
		logger.Debug("指标采集已禁用")
		return nil
	}
	return reg.Register(c)
}
