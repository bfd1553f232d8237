package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCounterStore_CountsWithinWindow(t *testing.T) {
	store := NewMemoryCounterStore()

	for i := 1; i <= 3; i++ {
		count, err := store.Incr("user-1", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}
}

func TestMemoryCounterStore_KeysIndependent(t *testing.T) {
	store := NewMemoryCounterStore()

	_, err := store.Incr("user-1", time.Minute)
	require.NoError(t, err)

	count, err := store.Incr("user-2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryCounterStore_WindowExpiry(t *testing.T) {
	store := NewMemoryCounterStore()

	_, err := store.Incr("user-1", 10*time.Millisecond)
	require.NoError(t, err)
	_, err = store.Incr("user-1", 10*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	count, err := store.Incr("user-1", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
