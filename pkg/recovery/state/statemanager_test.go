package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateManager(t *testing.T) {
	mgr := NewStateManager(NewInMemoryStateStore())

	require.NoError(t, mgr.NewState("s1"))
	s, err := mgr.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", s.ID())
	assert.Equal(t, 0, s.Shares())
	assert.False(t, s.Aborted())
	assert.False(t, s.Completed())

	require.NoError(t, mgr.SetShares("s1", 3))
	require.NoError(t, mgr.SetCompleted("s1"))
	s, err = mgr.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Shares())
	assert.True(t, s.Completed())
	assert.False(t, s.Aborted())

	require.NoError(t, mgr.NewState("s2"))
	require.NoError(t, mgr.SetAborted("s2"))
	s, err = mgr.Get("s2")
	require.NoError(t, err)
	assert.True(t, s.Aborted())

	assert.ErrorIs(t, mgr.SetAborted("s3"), ErrStateNotFound)
	_, err = mgr.Get("s3")
	assert.ErrorIs(t, err, ErrStateNotFound)
}
