package tictactoe

import (
	"gameplayer/game"

	"github.com/samber/lo"
)

// Responses is the response generator for tic-tac-toe: one successor per empty
// cell, in index order. depth is unused; every legal move is generated at
// every depth.
func Responses(state game.State, depth int) []game.State {
	s, ok := state.(*State)
	if !ok {
		panic("unexpected state type")
	}
	if s.done {
		return nil
	}
	return lo.FilterMap(lo.Range(Cells), func(index int, _ int) (game.State, bool) {
		if s.board[index] != Neither {
			return nil, false
		}
		next := s.Clone()
		next.place(index)
		return next, true
	})
}
