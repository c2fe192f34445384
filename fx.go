package eventbus

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-eventbus/config"
	"github.com/dep2p/go-eventbus/internal/core/eventbus"
	"github.com/dep2p/go-eventbus/internal/core/lifecycle"
	"github.com/dep2p/go-eventbus/internal/core/metrics"
	"github.com/dep2p/go-eventbus/internal/core/pool"
	"github.com/dep2p/go-eventbus/internal/debug/introspect"
	"github.com/dep2p/go-eventbus/pkg/lib/log"
)

var fxLogger = log.Logger("eventbus/fx")

// buildFxApp 构建 Fx 应用
//
// 加载顺序（按依赖）：
//  1. 配置注入与生命周期协调器
//  2. 事件注册表、对象池
//  3. 指标采集（禁用时采集器为 nil）
//  4. 本地自省服务（禁用时不监听）
//  5. 用户扩展
func buildFxApp(cfg *config.Config, rt *Runtime, userOpts []fx.Option) *fx.App {
	modules := []fx.Option{
		fx.Supply(cfg),

		lifecycle.Module(),
		eventbus.Module(),
		pool.Module(),
		metrics.Module(),
		introspect.Module(),
	}

	modules = append(modules, userOpts...)
	modules = append(modules, fx.Populate(&rt.bus, &rt.pools, &rt.prom, &rt.coordinator, &rt.introspect))
	modules = append(modules, fxLoggerOption(cfg.Log))

	return fx.New(modules...)
}

// fxLoggerOption Fx 事件日志
//
// 未开启 FxEvents 时丢弃容器事件，避免干扰用户日志。
func fxLoggerOption(cfg config.LogConfig) fx.Option {
	if !cfg.FxEvents {
		return fx.NopLogger
	}
	return fx.WithLogger(func() fxevent.Logger {
		l, err := newZapLogger(cfg.Format)
		if err != nil {
			fxLogger.Warn("创建 Fx 事件日志失败", "error", err)
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}
		return &fxevent.ZapLogger{Logger: l}
	})
}

func newZapLogger(format string) (*zap.Logger, error) {
	if format == "json" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
