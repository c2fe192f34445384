package eventbus

import (
	"sort"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// SlotStats 事件槽快照
type SlotStats struct {
	// EventType 事件类型
	EventType pkgif.EventType
	// Name 首次订阅时给出的标签
	Name string
	// Handlers 当前处理器数量（含重复注册）
	Handlers int
}

// Stats 返回所有事件槽的只读快照，按类型名排序
func (r *Registry) Stats() []SlotStats {
	r.mu.RLock()
	slots := make([]*slot, 0, len(r.slots))
	for _, s := range r.slots {
		slots = append(slots, s)
	}
	r.mu.RUnlock()

	stats := make([]SlotStats, 0, len(slots))
	for _, s := range slots {
		stats = append(stats, SlotStats{
			EventType: s.typ,
			Name:      s.name,
			Handlers:  s.len(),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].EventType.String() < stats[j].EventType.String()
	})
	return stats
}
