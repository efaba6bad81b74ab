package engine

import (
	"gameplayer/experiments/metrics"

	"github.com/pkg/errors"
)

// ErrIllegalMove is returned when a player changes the board in any way other
// than placing exactly one of its own marks on an empty cell.
var ErrIllegalMove = errors.New("illegal move")

type Engine interface {
	// Run plays a game until it is won or drawn
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
