package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranspositionTable(t *testing.T) {
	t.Run("empty table misses", func(t *testing.T) {
		tt := NewTranspositionTable(8, 4)
		_, ok := tt.Lookup(3, 0)
		require.False(t, ok, "Empty table should not hit")
		require.Equal(t, 0, tt.Count())
	})

	t.Run("hits at equal or lower depth only", func(t *testing.T) {
		tt := NewTranspositionTable(8, 4)
		tt.Store(3, 1.5, 2, Exact, 7)

		e, ok := tt.Lookup(3, 2)
		require.True(t, ok)
		require.Equal(t, Entry{Hash: 3, Value: 1.5, Depth: 2, Flag: Exact, Response: 7, valid: true}, e)

		_, ok = tt.Lookup(3, 1)
		require.True(t, ok, "Deeper entry should serve a shallower request")

		_, ok = tt.Lookup(3, 3)
		require.False(t, ok, "Shallower entry should not serve a deeper request")
	})

	t.Run("last write wins", func(t *testing.T) {
		tt := NewTranspositionTable(8, 4)
		tt.Store(3, 1, 4, Exact, 7)
		tt.Store(3, -1, 1, Upper, 9)

		_, ok := tt.Lookup(3, 2)
		require.False(t, ok, "Shallower store should replace the deeper entry")

		e, ok := tt.Lookup(3, 1)
		require.True(t, ok)
		require.Equal(t, float32(-1), e.Value)
		require.Equal(t, Upper, e.Flag)
		require.Equal(t, 1, tt.Count())
	})

	t.Run("slot collision replaces the previous key", func(t *testing.T) {
		tt := NewTranspositionTable(4, 4)
		tt.Store(1, 10, 1, Exact, 0)
		tt.Store(5, 50, 1, Exact, 0)

		_, ok := tt.Lookup(1, 0)
		require.False(t, ok, "Replaced key should miss")
		e, ok := tt.Lookup(5, 0)
		require.True(t, ok)
		require.Equal(t, float32(50), e.Value)

		stats := tt.Stats()
		require.Contains(t, stats, "collisions: 1")
		require.Contains(t, stats, "evictions: 1")
		require.Contains(t, stats, "hits: 1")
	})

	t.Run("clamps arguments", func(t *testing.T) {
		tt := NewTranspositionTable(0, -1)
		require.Equal(t, 1, tt.Capacity())
		require.Len(t, tt.EntriesByDepth(), 1)
	})

	t.Run("entries by depth", func(t *testing.T) {
		tt := NewTranspositionTable(8, 2)
		tt.Store(0, 0, 0, Exact, 0)
		tt.Store(1, 0, 2, Lower, 0)
		tt.Store(2, 0, 5, Upper, 0)
		require.Equal(t, []int{1, 0, 2}, tt.EntriesByDepth())
	})

	t.Run("clear", func(t *testing.T) {
		tt := NewTranspositionTable(8, 2)
		tt.Store(1, 0, 2, Exact, 0)
		tt.Lookup(1, 0)
		tt.Clear()

		require.Equal(t, 0, tt.Count())
		_, ok := tt.Lookup(1, 0)
		require.False(t, ok)
		require.Contains(t, tt.Stats(), "hits: 0")
	})

	t.Run("stats are humanized", func(t *testing.T) {
		tt := NewTranspositionTable(362880, 9)
		require.Contains(t, tt.Stats(), "entries: 0/362,880")
	})
}
