// Package mocks 提供统一的测试 Mock 实现
//
// # 处理器 Mock
//
//   - Recorder: 同时实现 Handler[T] 与 DynamicHandler，记录每次调用
//
// # 设计原则
//
// 1. 函数式注入: 通过 OnEvent 字段注入自定义行为
// 2. 调用记录: 记录 sender 与参数，便于验证分发顺序与次数
// 3. 指针身份: 以指针注册，退订时按指针识别
//
// # 使用示例
//
//	rec := mocks.NewRecorder[Scored]()
//	_ = eventbus.Subscribe[Scored](bus, "Scored", rec)
//	_ = eventbus.Publish(bus, game, Scored(5))
//
//	if rec.Count() != 1 {
//	    t.Error("expected one call")
//	}
package mocks
