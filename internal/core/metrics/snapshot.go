package metrics

import (
	"github.com/dep2p/go-eventbus/internal/core/eventbus"
	"github.com/dep2p/go-eventbus/internal/core/pool"
)

// SlotSource 事件槽统计来源
type SlotSource interface {
	Stats() []eventbus.SlotStats
}

// PoolSource 对象池统计来源
type PoolSource interface {
	Stats() []pool.Stats
}

var (
	_ SlotSource = (*eventbus.Registry)(nil)
	_ PoolSource = (*pool.Manager)(nil)
)

// Snapshot 某一时刻的统计快照
type Snapshot struct {
	// Slots 事件槽数量
	Slots int
	// Handlers 所有事件槽的处理器总数
	Handlers int
	// Events 各事件槽统计
	Events []eventbus.SlotStats
	// Pools 各对象池统计
	Pools []pool.Stats
}

// TakeSnapshot 读取统计快照，任一来源可为 nil
func TakeSnapshot(slots SlotSource, pools PoolSource) Snapshot {
	var snap Snapshot
	if slots != nil {
		snap.Events = slots.Stats()
		snap.Slots = len(snap.Events)
		for _, e := range snap.Events {
			snap.Handlers += e.Handlers
		}
	}
	if pools != nil {
		snap.Pools = pools.Stats()
	}
	return snap
}
