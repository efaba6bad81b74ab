package tictactoe

import (
	"gameplayer/game"

	"github.com/samber/lo"
)

const (
	XWinValue      float32 = 10000
	OWinValue      float32 = -10000
	centerBonus    float32 = 5
	cornerBonus    float32 = 1
	twoInLineBonus float32 = 100
)

var corners = [4]int{0, 2, 6, 8}

// Evaluator scores tic-tac-toe states from X's point of view.
type Evaluator struct{}

func NewEvaluator() Evaluator {
	return Evaluator{}
}

func (Evaluator) FirstPlayerWins() float32  { return XWinValue }
func (Evaluator) SecondPlayerWins() float32 { return OWinValue }

// Evaluate returns the win values for won boards and 0 for a draw. Otherwise it
// rewards open two-in-a-rows, the centre and the corners.
func (Evaluator) Evaluate(state game.State) float32 {
	s, ok := state.(*State)
	if !ok {
		panic("unexpected state type")
	}
	b := s.board

	switch b.lineWinner() {
	case X:
		return XWinValue
	case O:
		return OWinValue
	}
	if s.IsDraw() {
		return 0
	}

	var score float32
	for _, line := range lines {
		cells := []Cell{b[line[0]], b[line[1]], b[line[2]]}
		empty := lo.CountBy(cells, func(c Cell) bool { return c == Neither })
		if empty != 1 {
			continue
		}
		switch lo.CountBy(cells, func(c Cell) bool { return c == X }) {
		case 2:
			score += twoInLineBonus
		case 0:
			score -= twoInLineBonus
		}
	}

	score += markBonus(b[4], centerBonus)
	for _, corner := range corners {
		score += markBonus(b[corner], cornerBonus)
	}
	return score
}

func markBonus(c Cell, bonus float32) float32 {
	switch c {
	case X:
		return bonus
	case O:
		return -bonus
	default:
		return 0
	}
}
