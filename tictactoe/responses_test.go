package tictactoe

import (
	"testing"

	"gameplayer/game"

	"github.com/stretchr/testify/require"
)

func TestResponses(t *testing.T) {
	t.Run("one response per empty cell in order", func(t *testing.T) {
		s := NewStateFrom(board("X...O...."), game.First)
		responses := Responses(s, 0)
		require.Len(t, responses, 7)

		want := []int{1, 2, 3, 5, 6, 7, 8}
		for i, r := range responses {
			next := r.(*State)
			require.Equal(t, X, next.Board().At(want[i]))
			require.Equal(t, game.Second, next.WhoseTurn())
			require.Nil(t, next.Response())
		}
		require.Equal(t, Neither, s.Board().At(1))
		require.Equal(t, game.First, s.WhoseTurn())
	})

	t.Run("responses match played moves", func(t *testing.T) {
		s := NewState()
		responses := Responses(s, 3)
		require.Len(t, responses, Cells)

		moved := NewState()
		require.NoError(t, moved.Move(1, 1))
		require.Equal(t, moved.Fingerprint(), responses[4].Fingerprint())
	})

	t.Run("finished state has none", func(t *testing.T) {
		require.Empty(t, Responses(NewStateFrom(board("XXXOO...."), game.Second), 0))
		require.Empty(t, Responses(NewStateFrom(board("XOXXOOOXX"), game.Second), 0))
	})

	t.Run("unexpected state type", func(t *testing.T) {
		require.Panics(t, func() { Responses(nil, 0) })
	})
}
