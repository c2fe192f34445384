// Package pool 提供按类型管理的对象池
//
// 事件生产者可以用对象池回收事件参数对象，事件总线本身不关心参数是否来自对象池。
//
// # 快速开始
//
//	m := pool.NewManager(10)
//	_ = pool.CreatePool[*ScoreChanged](m, pool.FactoryFunc[*ScoreChanged](newScoreChanged), 0)
//
//	evt, _ := pool.Get[*ScoreChanged](m)
//	evt.Points = 5
//	_ = eventbus.Publish(r, sender, evt)
//	pool.Return(m, evt)
//
// # 所有权
//
// 取出的对象在归还前由调用方持有；归还后不应再使用。
// Manager.Clear 会关闭池中实现 io.Closer 的空闲对象。
package pool
