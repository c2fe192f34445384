package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/dep2p/go-eventbus/config"
	"github.com/dep2p/go-eventbus/internal/core/lifecycle"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// Fx 模块测试
// ============================================================================

// TestModule_Load 测试 Fx 模块加载
func TestModule_Load(t *testing.T) {
	var (
		registry *Registry
		bus      pkgif.EventBus
	)

	app := fxtest.New(t,
		Module(),
		fx.Populate(&registry, &bus),
	)
	app.RequireStart()

	require.NotNil(t, registry)
	assert.Same(t, registry, bus)

	app.RequireStop()
}

// TestModule_ClearOnStop 应用停止时清空事件槽
func TestModule_ClearOnStop(t *testing.T) {
	var registry *Registry

	app := fxtest.New(t,
		Module(),
		fx.Populate(&registry),
	)
	app.RequireStart()

	require.NoError(t, SubscribeFunc(registry, "Scored", func(any, Scored) {}))
	app.RequireStop()

	assert.Empty(t, registry.EventTypes())
}

// TestModule_KeepOnStop 关闭 ClearOnStop 时保留事件槽
func TestModule_KeepOnStop(t *testing.T) {
	cfg := config.NewConfig()
	cfg.EventBus.ClearOnStop = false

	var registry *Registry
	app := fxtest.New(t,
		fx.Supply(cfg),
		Module(),
		fx.Populate(&registry),
	)
	app.RequireStart()
	require.NoError(t, SubscribeFunc(registry, "Scored", func(any, Scored) {}))
	app.RequireStop()

	assert.Len(t, registry.EventTypes(), 1)
}

// TestModule_Shared 共享模式注入默认注册表，停止时由协调器重置
func TestModule_Shared(t *testing.T) {
	t.Cleanup(func() { _ = ResetDefault() })

	cfg := config.NewConfig()
	cfg.EventBus.Shared = true

	var registry *Registry
	app := fxtest.New(t,
		fx.Supply(cfg),
		lifecycle.Module(),
		Module(),
		fx.Populate(&registry),
	)
	app.RequireStart()

	assert.Same(t, Default(), registry)
	app.RequireStop()

	assert.False(t, DefaultHost().Live(), "协调器已重置默认注册表")
}

// TestModule_Lifecycle 测试生命周期钩子
func TestModule_Lifecycle(t *testing.T) {
	app := fx.New(
		Module(),
		fx.NopLogger,
	)

	ctx := context.Background()
	require.NoError(t, app.Start(ctx))
	assert.NoError(t, app.Stop(ctx))
}
