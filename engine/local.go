package engine

import (
	"time"

	"gameplayer/experiments/metrics"
	"gameplayer/game"
	"gameplayer/player"
	"gameplayer/tictactoe"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// searchReporter is implemented by players that search for their moves.
type searchReporter interface {
	LastMetrics() metrics.SearchMetric
}

var _ Engine = (*LocalGame)(nil)

type LocalGame struct {
	State   *tictactoe.State
	players [2]player.Player
}

// LocalEngine sets up a game on an empty board between first and second.
func LocalEngine(first, second player.Player) *LocalGame {
	return LocalEngineFrom(tictactoe.NewState(), first, second)
}

// LocalEngineFrom continues a game from state.
func LocalEngineFrom(state *tictactoe.State, first, second player.Player) *LocalGame {
	if first == nil || second == nil {
		panic("need two players")
	}
	if first.ID() != game.First || second.ID() != game.Second {
		panic("players do not match their turn order")
	}
	return &LocalGame{
		State:   state,
		players: [2]player.Player{first, second},
	}
}

// Run executes the game loop until the game is done.
func (e *LocalGame) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: tictactoe.ToCell(e.State.WhoseTurn()).String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", gameMetric.StartingPlayer)

	step := 1
	for !e.State.IsDone() {
		current := e.State.WhoseTurn()
		p := e.players[current]
		before := e.State.Board()

		if err := p.Move(e.State); err != nil {
			return gameMetric, moveMetrics, errors.Wrapf(err, "move %d", step)
		}
		index, err := validateMove(before, e.State.Board(), tictactoe.ToCell(current))
		if err != nil {
			return gameMetric, moveMetrics, errors.Wrapf(err, "move %d by %v", step, current)
		}

		mm := metrics.MoveMetric{Step: step, Player: tictactoe.ToCell(current).String()}
		if r, ok := p.(searchReporter); ok {
			mm.SearchMetric = r.LastMetrics()
		}
		moveMetrics = append(moveMetrics, mm)

		row, column := tictactoe.ToPosition(index)
		log.Info().Msgf("move %d: %s plays (%d, %d)", step, mm.Player, row, column)
		step++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if !e.State.IsDraw() {
		gameMetric.Winner = e.State.Winner().String()
	}

	log.Info().Msgf("game over: %s", e.Result())
	return gameMetric, moveMetrics, nil
}

// Result describes the outcome, or "in progress".
func (e *LocalGame) Result() string {
	switch {
	case !e.State.IsDone():
		return "in progress"
	case e.State.IsDraw():
		return "draw"
	default:
		return e.State.Winner().String() + " wins"
	}
}

// validateMove checks that exactly one empty cell became mark and returns it.
func validateMove(before, after tictactoe.Board, mark tictactoe.Cell) (int, error) {
	changed := -1
	for i := range before {
		if before[i] == after[i] {
			continue
		}
		if changed >= 0 {
			return -1, errors.Wrap(ErrIllegalMove, "more than one cell changed")
		}
		changed = i
	}
	if changed < 0 {
		return -1, errors.Wrap(ErrIllegalMove, "no cell changed")
	}
	if before[changed] != tictactoe.Neither || after[changed] != mark {
		return -1, errors.Wrapf(ErrIllegalMove, "cell %d changed from %v to %v", changed, before[changed], after[changed])
	}
	return changed, nil
}
