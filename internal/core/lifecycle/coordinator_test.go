package lifecycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResetter struct {
	name string
	log  *[]string
	err  error
}

func (f *fakeResetter) Name() string { return f.name }

func (f *fakeResetter) Reset() error {
	*f.log = append(*f.log, f.name)
	return f.err
}

// TestCoordinator_StopReverseOrder 按注册逆序重置
func TestCoordinator_StopReverseOrder(t *testing.T) {
	var log []string
	c := NewCoordinator()

	a := &fakeResetter{name: "a", log: &log}
	b := &fakeResetter{name: "b", log: &log}
	c.Register(a)
	c.Register(b)
	c.Register(a)

	assert.Equal(t, []string{"a", "b"}, c.Hosts())

	require.NoError(t, c.Stop())
	assert.Equal(t, []string{"b", "a"}, log)
	assert.True(t, c.Stopped())

	// 重复停止无副作用
	require.NoError(t, c.Stop())
	assert.Len(t, log, 2)
}

// TestCoordinator_StopErrors 单个失败不影响其余对象
func TestCoordinator_StopErrors(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	c := NewCoordinator()

	c.Register(&fakeResetter{name: "a", log: &log})
	c.Register(&fakeResetter{name: "b", log: &log, err: boom})

	err := c.Stop()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"b", "a"}, log)
}

// TestCoordinator_WithHost 与 Host 配合使用
func TestCoordinator_WithHost(t *testing.T) {
	h, _ := newCountingHost()
	c := NewCoordinator()
	c.Register(h)

	s := h.MustInstance()
	require.NoError(t, c.Stop())

	assert.True(t, s.closed)
	assert.False(t, h.Live())
}
