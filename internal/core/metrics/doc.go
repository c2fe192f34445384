// Package metrics 提供事件总线与对象池的监控指标
//
// 指标在采集时从 Registry.Stats 与 Manager.Stats 拉取，分发路径上不记录任何计数，
// 事件总线本身保持无副作用。
//
// # 快速开始
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(metrics.NewCollector("eventbus", bus, pools))
//
//	// 或直接读取快照
//	snap := metrics.TakeSnapshot(bus, pools)
//	fmt.Println(snap.Slots, snap.Handlers)
//
// # 指标
//
//	<ns>_slots                      事件槽数量
//	<ns>_handlers{event,name}       每个事件的处理器数量
//	<ns>_pool_idle{type}            对象池空闲对象数
//	<ns>_pool_created_total{type}   工厂创建对象总数
//	<ns>_pool_gets_total{type}      取出次数
//	<ns>_pool_puts_total{type}      归还次数
package metrics
