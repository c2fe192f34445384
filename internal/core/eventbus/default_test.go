package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault_Lazy 默认注册表懒加载且唯一
func TestDefault_Lazy(t *testing.T) {
	require.NoError(t, ResetDefault())
	t.Cleanup(func() { _ = ResetDefault() })

	assert.False(t, DefaultHost().Live())

	r := Default()
	require.NotNil(t, r)
	assert.Same(t, r, Default())
	assert.True(t, DefaultHost().Live())
}

// TestDefault_RejectSecondInstance 存活期间拒绝安装第二个实例
func TestDefault_RejectSecondInstance(t *testing.T) {
	require.NoError(t, ResetDefault())
	t.Cleanup(func() { _ = ResetDefault() })

	_ = Default()
	err := DefaultHost().Install(NewRegistry())
	assert.Error(t, err)
}

// TestDefault_Reset 重置后事件槽被清空，下次访问得到新实例
func TestDefault_Reset(t *testing.T) {
	require.NoError(t, ResetDefault())
	t.Cleanup(func() { _ = ResetDefault() })

	old := Default()
	require.NoError(t, SubscribeFunc(old, "Scored", func(any, Scored) {}))

	require.NoError(t, ResetDefault())
	assert.Empty(t, old.EventTypes(), "重置时执行 ClearAll")

	fresh := Default()
	assert.NotSame(t, old, fresh)
	assert.ErrorIs(t, Publish(fresh, nil, Scored(1)), ErrEventMissing)
}
