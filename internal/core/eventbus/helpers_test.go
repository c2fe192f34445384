package eventbus

import pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"

// ============================================================================
// 测试事件类型
// ============================================================================

// Scored 整数负载事件
type Scored int

func (Scored) EventMarker() {}

type moved struct {
	pkgif.Marker
	X, Y int
}

type chatted struct {
	pkgif.Marker
	Text string
}

// gameEvent 接口事件类型，由多个具体负载实现
type gameEvent interface {
	pkgif.Event
	Kind() string
}

func (Scored) Kind() string { return "score" }

func (moved) Kind() string { return "move" }

type notAnEvent struct {
	Value int
}

// ============================================================================
// 调用记录
// ============================================================================

type call struct {
	tag    string
	sender any
	args   any
}

type recorder struct {
	calls []call
}

func (r *recorder) scored(tag string) HandlerFunc[Scored] {
	return func(sender any, args Scored) {
		r.calls = append(r.calls, call{tag: tag, sender: sender, args: args})
	}
}

func (r *recorder) tags() []string {
	tags := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		tags = append(tags, c.tag)
	}
	return tags
}

// movedListener 指针处理器，身份按指针比较
type movedListener struct {
	name string
	got  []moved
}

func (l *movedListener) HandleEvent(_ any, e moved) {
	l.got = append(l.got, e)
}
