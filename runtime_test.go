package eventbus_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/dep2p/go-eventbus"
	"github.com/dep2p/go-eventbus/config"
)

// TestRuntime_Lifecycle 启动、发布、停止
func TestRuntime_Lifecycle(t *testing.T) {
	ctx := context.Background()
	rt, err := eventbus.New(eventbus.WithPoolSize(1), eventbus.WithMetricsNamespace("test"))
	require.NoError(t, err)
	assert.Equal(t, eventbus.StateIdle, rt.State())
	assert.ErrorIs(t, rt.Stop(ctx), eventbus.ErrNotStarted)

	require.NoError(t, rt.Start(ctx))
	assert.ErrorIs(t, rt.Start(ctx), eventbus.ErrAlreadyStarted)
	assert.Equal(t, "running", rt.State().String())

	bus := rt.EventBus()
	var total Scored
	require.NoError(t, eventbus.SubscribeFunc(bus, "Scored", func(_ any, s Scored) { total += s }))
	require.NoError(t, eventbus.Publish(bus, nil, Scored(3)))
	require.NoError(t, eventbus.Publish(bus, nil, Scored(4)))
	assert.Equal(t, Scored(7), total)

	require.NoError(t, eventbus.CreatePool[*game](rt.Pools(), eventbus.FactoryFunc[*game](func() *game { return &game{} }), -1))

	snap := rt.Stats()
	assert.Equal(t, 1, snap.Slots)
	assert.Equal(t, 1, snap.Handlers)
	require.Len(t, snap.Pools, 1)
	assert.Equal(t, 1, snap.Pools[0].Idle)

	n, err := testutil.GatherAndCount(rt.Metrics(), "test_slots", "test_pool_idle")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, rt.Stop(ctx))
	assert.Equal(t, eventbus.StateStopped, rt.State())
	assert.ErrorIs(t, rt.Start(ctx), eventbus.ErrRuntimeClosed)
	assert.ErrorIs(t, eventbus.Publish(bus, nil, Scored(1)), eventbus.ErrEventMissing, "停止时清空")
	assert.Empty(t, rt.Pools().Types())
	require.NoError(t, rt.Close())
}

// TestRuntime_Shared 共享模式使用默认实例，停止时重置
func TestRuntime_Shared(t *testing.T) {
	t.Cleanup(func() { _ = eventbus.ResetDefault() })

	ctx := context.Background()
	rt, err := eventbus.New(eventbus.WithShared(true), eventbus.WithMetrics(false))
	require.NoError(t, err)
	require.NoError(t, rt.Start(ctx))

	assert.Same(t, eventbus.Default(), rt.EventBus())
	assert.Equal(t, []string{"eventbus", "pool"}, rt.Lifecycle())

	require.NoError(t, rt.Stop(ctx))
	assert.NotSame(t, rt.EventBus(), eventbus.Default())
}

// TestRuntime_Options 选项与预设
func TestRuntime_Options(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Pool.DefaultInitialSize = 7

	rt, err := eventbus.New(
		eventbus.WithConfig(cfg),
		eventbus.WithPreset(eventbus.PresetMinimal),
		eventbus.WithLogLevel("warn"),
	)
	require.NoError(t, err)
	defer rt.Close()

	got := rt.Config()
	assert.False(t, got.Metrics.Enabled)
	assert.Equal(t, 0, got.Pool.DefaultInitialSize, "预设在基础配置之后应用")
	assert.Equal(t, "warn", got.Log.Level)
	assert.Equal(t, 7, cfg.Pool.DefaultInitialSize, "调用方配置不被修改")

	mfs, err := rt.Metrics().Gather()
	require.NoError(t, err)
	assert.Empty(t, mfs)

	_, err = eventbus.New(eventbus.WithPreset("bogus"))
	assert.Error(t, err)
	_, err = eventbus.New(eventbus.WithPoolSize(-1))
	assert.Error(t, err)
	_, err = eventbus.New(eventbus.WithMetricsNamespace("bad-name"))
	assert.Error(t, err)
	_, err = eventbus.New(eventbus.WithConfig(nil))
	assert.Error(t, err)
}

// TestRuntime_FxOptions 通过 Fx 注入订阅者
func TestRuntime_FxOptions(t *testing.T) {
	var seen []Scored
	rt, err := eventbus.New(
		eventbus.WithMetrics(false),
		eventbus.WithFxOptions(fx.Invoke(func(bus *eventbus.Registry) error {
			return eventbus.SubscribeFunc(bus, "Scored", func(_ any, s Scored) { seen = append(seen, s) })
		})),
	)
	require.NoError(t, err)

	require.NoError(t, eventbus.Publish(rt.EventBus(), nil, Scored(2)))
	assert.Equal(t, []Scored{2}, seen)
	require.NoError(t, rt.Close())
}

// TestGetConfig 预设配置
func TestGetConfig(t *testing.T) {
	cfg, err := eventbus.GetConfig(eventbus.PresetDebug)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.FxEvents)

	_, err = eventbus.GetConfig("nope")
	assert.Error(t, err)
}

// TestRuntime_Introspect 自省服务随运行时启停
func TestRuntime_Introspect(t *testing.T) {
	ctx := context.Background()
	rt, err := eventbus.New(eventbus.WithIntrospect("127.0.0.1:0"))
	require.NoError(t, err)
	require.NoError(t, rt.Start(ctx))

	addr := rt.IntrospectAddr()
	require.NotEmpty(t, addr)

	resp, err := http.Get("http://" + addr + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, rt.Stop(ctx))

	plain, err := eventbus.New(eventbus.WithMetrics(false))
	require.NoError(t, err)
	assert.Empty(t, plain.IntrospectAddr())
	require.NoError(t, plain.Close())
}
