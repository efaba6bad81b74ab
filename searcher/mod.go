package searcher

import (
	"gameplayer/experiments/metrics"

	"github.com/pkg/errors"
)

var (
	// ErrPrecondition is returned when the searcher is asked to resolve a state
	// that is already finished, has no responses, or already has a response.
	ErrPrecondition = errors.New("search precondition violated")
	// ErrInconsistent is returned when the recommended response cannot be found
	// among the root's successors.
	ErrInconsistent = errors.New("recommended response is not a successor")
)

type Option func(t *GameTree)

func WithMetrics(collector metrics.Collector) Option {
	return func(t *GameTree) {
		if collector != nil {
			t.metrics = collector
		}
	}
}
