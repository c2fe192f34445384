package introspect

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/dep2p/go-eventbus/config"
	"github.com/dep2p/go-eventbus/internal/core/eventbus"
	"github.com/dep2p/go-eventbus/internal/core/metrics"
	"github.com/dep2p/go-eventbus/internal/core/pool"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

type ping struct {
	pkgif.Marker
}

func newTestServer(t *testing.T) (*Server, *eventbus.Registry, *pool.Manager) {
	t.Helper()

	bus := eventbus.NewRegistry()
	require.NoError(t, eventbus.SubscribeFunc(bus, "Ping", func(any, ping) {}))

	pools := pool.NewManager(1)
	require.NoError(t, pool.CreatePool[*ping](pools, pool.FactoryFunc[*ping](func() *ping { return &ping{} }), -1))

	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.NewCollector("eventbus", bus, pools))

	return New(Config{Registry: bus, Pools: pools, Gatherer: reg}), bus, pools
}

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return rec, string(body)
}

// TestServer_Introspect 完整诊断报告
func TestServer_Introspect(t *testing.T) {
	s, bus, _ := newTestServer(t)

	rec, body := get(t, s.Handler(), "/debug/introspect")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp IntrospectResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, bus.ID(), resp.RegistryID)
	assert.Equal(t, 1, resp.Slots)
	assert.Equal(t, 1, resp.Handlers)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "introspect.ping", resp.Events[0].Type)
	assert.Equal(t, "Ping", resp.Events[0].Name)
	require.Len(t, resp.Pools, 1)
	assert.Equal(t, "*introspect.ping", resp.Pools[0].Type)
	assert.Equal(t, 1, resp.Pools[0].Idle)
	require.NotNil(t, resp.Runtime)
}

// TestServer_Endpoints 子端点
func TestServer_Endpoints(t *testing.T) {
	s, _, _ := newTestServer(t)
	h := s.Handler()

	_, body := get(t, h, "/debug/introspect/events")
	var events []EventInfo
	require.NoError(t, json.Unmarshal([]byte(body), &events))
	assert.Len(t, events, 1)

	_, body = get(t, h, "/debug/introspect/pools")
	var pools []PoolInfo
	require.NoError(t, json.Unmarshal([]byte(body), &pools))
	assert.Len(t, pools, 1)

	_, body = get(t, h, "/metrics")
	assert.Contains(t, body, "eventbus_slots 1")
	assert.Contains(t, body, `eventbus_pool_idle{type="*introspect.ping"} 1`)

	_, body = get(t, h, "/health")
	var health HealthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "ok", health.Status)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/debug/introspect", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// TestServer_Degraded 缺少注册表时健康状态降级
func TestServer_Degraded(t *testing.T) {
	s := New(Config{})
	assert.Equal(t, config.DefaultIntrospectAddr, s.Addr())

	_, body := get(t, s.Handler(), "/health")
	var health HealthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "degraded", health.Status)

	rec, _ := get(t, s.Handler(), "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestServer_StartStop 监听随机端口
func TestServer_StartStop(t *testing.T) {
	s := New(Config{Addr: "127.0.0.1:0", Registry: eventbus.NewRegistry()})
	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Start(context.Background()), "重复启动无副作用")

	resp, err := http.Get("http://" + s.Addr() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop())
}

// TestModule 启用与禁用
func TestModule(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		var s *Server
		app := fxtest.New(t,
			fx.Supply(config.NewConfig()),
			eventbus.Module(),
			Module(),
			fx.Populate(&s),
		)
		app.RequireStart()
		app.RequireStop()
		assert.Nil(t, s)
	})

	t.Run("enabled", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Introspect.Enable = true
		cfg.Introspect.Addr = "127.0.0.1:0"

		var s *Server
		app := fxtest.New(t,
			fx.Supply(cfg),
			eventbus.Module(),
			pool.Module(),
			metrics.Module(),
			Module(),
			fx.Populate(&s),
		)
		app.RequireStart()
		require.NotNil(t, s)

		resp, err := http.Get("http://" + s.Addr() + "/metrics")
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		app.RequireStop()
	})
}
