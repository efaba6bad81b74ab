package tictactoe

import (
	"testing"

	"gameplayer/game"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"
)

func board(cells string) Board {
	var b Board
	for i, r := range cells {
		switch r {
		case 'X':
			b[i] = X
		case 'O':
			b[i] = O
		}
	}
	return b
}

func TestEvaluator(t *testing.T) {
	e := NewEvaluator()

	t.Run("wins and draws", func(t *testing.T) {
		require.Equal(t, XWinValue, e.Evaluate(NewStateFrom(board("XXXOO...."), game.Second)))
		require.Equal(t, OWinValue, e.Evaluate(NewStateFrom(board("OX.OX.O.X"), game.First)))
		require.Equal(t, float32(0), e.Evaluate(NewStateFrom(board("XOXXOOOXX"), game.Second)))
		require.Equal(t, XWinValue, e.FirstPlayerWins())
		require.Equal(t, OWinValue, e.SecondPlayerWins())
	})

	t.Run("empty board is even", func(t *testing.T) {
		require.Equal(t, float32(0), e.Evaluate(NewState()))
	})

	t.Run("positional bonuses", func(t *testing.T) {
		require.Equal(t, centerBonus, e.Evaluate(NewStateFrom(board("....X...."), game.Second)))
		require.Equal(t, -cornerBonus, e.Evaluate(NewStateFrom(board("O........"), game.First)))
		// center and corner for X, one corner for O
		require.Equal(t, centerBonus, e.Evaluate(NewStateFrom(board("X...X...O"), game.Second)))
	})

	t.Run("two in a line", func(t *testing.T) {
		// X X . / . . O / . . O
		require.Equal(t, cornerBonus+twoInLineBonus-twoInLineBonus-cornerBonus,
			e.Evaluate(NewStateFrom(board("XX...O..O"), game.First)))
		// X X . / . O . / . . .
		require.Equal(t, twoInLineBonus+cornerBonus-centerBonus,
			e.Evaluate(NewStateFrom(board("XX..O...."), game.Second)))
	})

	t.Run("heuristic stays inside the win bounds", func(t *testing.T) {
		var visit func(s *State)
		visit = func(s *State) {
			v := e.Evaluate(s)
			if !s.IsDone() || s.IsDraw() {
				require.Less(t, math32.Abs(v), XWinValue)
			}
			for _, r := range Responses(s, 0) {
				visit(r.(*State))
			}
		}
		visit(NewState())
	})

	t.Run("unexpected state type", func(t *testing.T) {
		require.Panics(t, func() { e.Evaluate(nil) })
	})
}
