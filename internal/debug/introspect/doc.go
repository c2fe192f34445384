// Package introspect 提供本地自省 HTTP 服务
//
// 该服务运行在本地端口，提供 JSON 格式的事件槽与对象池诊断信息，以及 Prometheus 指标。
// 默认绑定到 127.0.0.1，不暴露到网络。
//
// # 端点
//
//	GET /debug/introspect         - 完整诊断报告 (JSON)
//	GET /debug/introspect/events  - 事件槽列表
//	GET /debug/introspect/pools   - 对象池列表
//	GET /debug/introspect/runtime - Go 运行时信息
//	GET /metrics                  - Prometheus 指标
//	GET /debug/pprof/*            - Go pprof 端点
//	GET /health                   - 健康检查
//
// # 使用示例
//
//	server := introspect.New(introspect.Config{
//	    Addr:     "127.0.0.1:6060",
//	    Registry: bus,
//	    Pools:    pools,
//	})
//	server.Start(ctx)
//	defer server.Stop()
//
// # 配置
//
// 通过 config.Introspect.Enable 启用。
package introspect
