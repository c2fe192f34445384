package mocks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dep2p/go-eventbus/pkg/interfaces"
)

type tick struct {
	interfaces.Marker
	N int
}

func TestRecorder(t *testing.T) {
	r := NewRecorder[tick]()
	var hooked []int
	r.OnEvent = func(_ any, e tick) { hooked = append(hooked, e.N) }

	r.HandleEvent("a", tick{N: 1})
	r.HandleAny("b", tick{N: 2})

	assert.Equal(t, 2, r.Count())
	assert.Equal(t, []tick{{N: 1}, {N: 2}}, r.Args())
	assert.Equal(t, []int{1, 2}, hooked)

	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, "b", last.Sender)
	assert.Equal(t, "mocks.tick", r.EventType().String())

	r.Reset()
	_, ok = r.Last()
	assert.False(t, ok)
	assert.Empty(t, r.Calls())
}
