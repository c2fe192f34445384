package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfig 测试创建默认配置
func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	require.NotNil(t, cfg)

	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.EventBus.Shared)
	assert.True(t, cfg.EventBus.ClearOnStop)
	assert.Equal(t, DefaultPoolInitialSize, cfg.Pool.DefaultInitialSize)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "eventbus", cfg.Metrics.Namespace)
}

// TestPoolConfig 测试对象池配置
func TestPoolConfig(t *testing.T) {
	t.Run("Negative", func(t *testing.T) {
		cfg := DefaultPoolConfig()
		cfg.DefaultInitialSize = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("TooLarge", func(t *testing.T) {
		cfg := DefaultPoolConfig()
		cfg.DefaultInitialSize = maxPoolInitialSize + 1
		assert.Error(t, cfg.Validate())
	})

	t.Run("Zero", func(t *testing.T) {
		cfg := DefaultPoolConfig()
		cfg.DefaultInitialSize = 0
		assert.NoError(t, cfg.Validate())
	})
}

// TestMetricsConfig 测试指标配置
func TestMetricsConfig(t *testing.T) {
	cfg := DefaultMetricsConfig()
	cfg.Namespace = "1bad-name"
	assert.Error(t, cfg.Validate())

	cfg.Enabled = false
	assert.NoError(t, cfg.Validate(), "禁用时不检查命名空间")
}

// TestLogConfig 测试日志配置
func TestLogConfig(t *testing.T) {
	cfg := DefaultLogConfig()
	cfg.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg.Format = "JSON"
	assert.NoError(t, cfg.Validate())
}

// TestFromJSON 测试 JSON 加载
func TestFromJSON(t *testing.T) {
	data := []byte(`{"eventbus":{"shared":true},"pool":{"default_initial_size":32}}`)

	cfg, err := FromJSON(data)
	require.NoError(t, err)

	assert.True(t, cfg.EventBus.Shared)
	assert.True(t, cfg.EventBus.ClearOnStop, "未出现的字段保留默认值")
	assert.Equal(t, 32, cfg.Pool.DefaultInitialSize)
	assert.Equal(t, "eventbus", cfg.Metrics.Namespace)

	_, err = FromJSON([]byte(`{"pool":`))
	assert.Error(t, err)
}

// TestToJSON_RoundTrip 测试序列化后重新加载
func TestToJSON_RoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.Pool.Shared = true
	cfg.Log.Level = "core/pool=debug,warn"

	data, err := cfg.ToJSON()
	require.NoError(t, err)

	loaded, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

// TestLoadFile 测试从文件加载
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "eventbus.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"metrics":{"enabled":true,"namespace":"game"}}`), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "game", cfg.Metrics.Namespace)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"log":{"format":"xml"}}`), 0o600))
	_, err = LoadFile(bad)
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

// TestApplyPreset 测试预设
func TestApplyPreset(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, ApplyPreset(cfg, "minimal"))
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 0, cfg.Pool.DefaultInitialSize)

	cfg = NewConfig()
	require.NoError(t, ApplyPreset(cfg, "debug"))
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.FxEvents)

	assert.Error(t, ApplyPreset(cfg, "unknown"))
	assert.Error(t, ApplyPreset(nil, "default"))
}

// TestValidateAndFix 测试自动修复
func TestValidateAndFix(t *testing.T) {
	cfg := NewConfig()
	cfg.Pool.DefaultInitialSize = -5
	cfg.Metrics.Namespace = ""
	cfg.Log.Format = ""

	fixed, err := ValidateAndFix(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, fixed.Pool.DefaultInitialSize)
	assert.Equal(t, "eventbus", fixed.Metrics.Namespace)
	assert.Equal(t, "text", fixed.Log.Format)

	fixed, err = ValidateAndFix(nil)
	require.NoError(t, err)
	assert.NotNil(t, fixed)

	assert.Error(t, ValidateAll(nil))
}

// TestIntrospectConfig 测试自省服务配置
func TestIntrospectConfig(t *testing.T) {
	cfg := DefaultIntrospectConfig()
	assert.False(t, cfg.Enable)
	assert.NoError(t, cfg.Validate())

	cfg.Enable = true
	assert.NoError(t, cfg.Validate())

	cfg.Addr = "no-port"
	assert.Error(t, cfg.Validate())

	full := NewConfig()
	full.Introspect.Enable = true
	full.Introspect.Addr = ""
	fixed, err := ValidateAndFix(full)
	require.NoError(t, err)
	assert.Equal(t, DefaultIntrospectAddr, fixed.Introspect.Addr)
}
