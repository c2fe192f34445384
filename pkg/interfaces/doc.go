// Package interfaces 定义 go-eventbus 的公共接口
//
// 实现位于 internal/core 下的同名目录，根包通过类型别名对外暴露。
//
// # 事件总线
//
//   - eventbus.go - 事件类型令牌、事件标记、DynamicHandler、EventBus、发布选项
//
// # 对象池
//
//   - pool.go - 对象工厂与对象池契约
//
// # 事件标记
//
// Go 没有区别于 any 的空标记接口，事件标记以方法接口表达：
//
//	type Event interface {
//	    EventMarker()
//	}
//
// 负载类型嵌入 Marker 或自行声明 EventMarker 方法即可成为事件。
package interfaces
