package eventbus

import (
	"slices"
	"sync"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// 事件槽
// ============================================================================

// slot 单一事件类型的处理器槽
//
// 绑定的类型在创建时确定且不再变化，所有增删与调用都要先通过类型检查。
type slot struct {
	lk       sync.Mutex
	name     string
	typ      pkgif.EventType
	handlers []entry
}

func newSlot(name string, typ pkgif.EventType) *slot {
	return &slot{
		name:     name,
		typ:      typ,
		handlers: make([]entry, 0),
	}
}

// add 追加处理器，允许重复
func (s *slot) add(e entry) error {
	if e.typ != s.typ {
		return mismatch(opAdd, s.name, s.typ, e.typ)
	}

	s.lk.Lock()
	s.handlers = append(s.handlers, e)
	s.lk.Unlock()
	return nil
}

// remove 移除第一个身份相同的处理器，不存在时静默返回
func (s *slot) remove(id any, typ pkgif.EventType) error {
	if typ != s.typ {
		return mismatch(opRemove, s.name, s.typ, typ)
	}

	s.lk.Lock()
	defer s.lk.Unlock()

	for i, e := range s.handlers {
		if sameHandler(e.id, id) {
			// 复制而非原地修改，已取出的快照不受影响
			s.handlers = slices.Delete(slices.Clone(s.handlers), i, i+1)
			return nil
		}
	}
	return nil
}

// invoke 按注册顺序调用处理器快照
//
// 快照在加锁期间复制，调用处理器时不持有锁，处理器可以重入订阅、退订或发布；
// 这些修改只在下一次调用中可见。处理器 panic 会直接传播给发布者。
func (s *slot) invoke(sender, args any, typ pkgif.EventType) error {
	if typ != s.typ {
		return mismatch(opInvoke, s.name, s.typ, typ)
	}

	s.lk.Lock()
	snapshot := slices.Clone(s.handlers)
	s.lk.Unlock()

	for _, e := range snapshot {
		e.call(sender, args)
	}
	return nil
}

func (s *slot) len() int {
	s.lk.Lock()
	defer s.lk.Unlock()
	return len(s.handlers)
}
