// Package eventbus 提供进程内、类型安全的同步发布/订阅事件总线
//
// 互不引用的组件通过事件类型交换强类型通知。为 T 注册的处理器只会以 T 类型的参数被调用，
// 泛型注册与基于运行时类型令牌的动态注册共享同一组事件槽。
//
// # 定义事件
//
// 事件负载通过嵌入 Marker 或声明 EventMarker 方法获得事件标记：
//
//	type Scored int
//
//	func (Scored) EventMarker() {}
//
//	type PlayerJoined struct {
//	    eventbus.Marker
//	    Name string
//	}
//
// # 订阅与发布
//
//	bus := eventbus.NewRegistry()
//
//	onScore := eventbus.HandlerFunc[Scored](func(sender any, s Scored) {
//	    fmt.Println("scored", s)
//	})
//	_ = eventbus.Subscribe[Scored](bus, "Scored", onScore)
//	_ = eventbus.Publish(bus, game, Scored(5))
//	_ = eventbus.Unsubscribe[Scored](bus, "Scored", onScore)
//
//	// 无订阅时静默返回
//	_ = eventbus.Publish(bus, game, Scored(7), eventbus.Optional())
//
// # 动态 API
//
// Registry 的方法接受 EventType 令牌与 DynamicHandler，在运行时检查事件标记与类型一致性：
//
//	_ = bus.Subscribe(eventbus.TypeOf[Scored](), "Scored", onScore)
//	_ = bus.Publish(eventbus.TypeOf[Scored](), game, Scored(9))
//
// # 重入
//
// 分发时先对处理器列表拍快照再释放锁，处理器内部可以订阅、退订或发布。
// 分发中新增的处理器在下一次发布时才可见，分发中退订的处理器在本次快照内仍会被调用。
//
// # 运行时
//
// New 将事件总线、对象池、生命周期协调器与指标采集组装为 Fx 应用：
//
//	rt, err := eventbus.New(eventbus.WithPreset(eventbus.PresetDebug))
//	if err != nil {
//	    return err
//	}
//	if err := rt.Start(ctx); err != nil {
//	    return err
//	}
//	defer rt.Stop(ctx)
//
//	_ = eventbus.SubscribeFunc(rt.EventBus(), "Scored", func(_ any, s Scored) {})
package eventbus
