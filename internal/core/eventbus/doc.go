// Package eventbus 实现进程内同步事件总线
//
// 提供类型安全的事件发布/订阅机制，支持：
//   - 泛型 API（编译期类型检查）与动态 API（运行时类型标识）共享同一组事件槽
//   - 按注册顺序同步分发，允许重复注册
//   - 分发期间处理器可重入订阅、退订与发布
//   - 严格模式：退订或发布未注册事件时返回错误
//
// # 快速开始
//
//	type Scored struct {
//	    interfaces.Marker
//	    Points int
//	}
//
//	r := eventbus.NewRegistry()
//
//	onScored := eventbus.HandlerFunc[Scored](func(sender any, e Scored) {
//	    // 处理事件
//	})
//	_ = eventbus.Subscribe[Scored](r, "scored", onScored)
//
//	_ = eventbus.Publish(r, player, Scored{Points: 5})
//
//	// 动态形式
//	_ = r.Publish(eventbus.TypeOf[Scored](), player, Scored{Points: 7}, eventbus.Optional())
//
//	_ = eventbus.Unsubscribe[Scored](r, "scored", onScored)
//
// # 类型安全
//
// 每个事件槽在创建时绑定一个事件类型。处理器的负载类型或发布的参数类型
// 与之不一致时返回 *TypeMismatchError，事件槽保持不变。
//
// # 快照分发
//
// 发布时先复制处理器序列再逐个调用，调用期间不持有任何锁。处理器在分发中
// 订阅或退订只影响下一次发布。处理器 panic 会中止本次分发并传播给发布者。
//
// # 并发安全
//
// Registry 使用 sync.RWMutex 保护事件槽映射，每个事件槽使用 sync.Mutex
// 保护处理器序列。ClearAll 与进行中的发布并发时，进行中的发布会用其快照完成。
//
// # Fx 模块
//
//	app := fx.New(
//	    lifecycle.Module(),
//	    eventbus.Module(),
//	    fx.Invoke(func(r *eventbus.Registry) { ... }),
//	)
package eventbus
