package searcher

import (
	"gameplayer/experiments/metrics"
	"gameplayer/game"
	"gameplayer/utils"
	"gameplayer/zobrist"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// noResponse is recorded for states that were scored without expanding them.
const noResponse = game.StateHash(zobrist.Undefined)

// GameTree finds the best response to a state with depth-limited minimax and
// alpha-beta pruning. Results are memoized in a transposition table keyed by
// state fingerprint, which may be shared between searches of the same game.
//
// A GameTree is not safe for concurrent use.
type GameTree struct {
	table     *TranspositionTable
	evaluator game.Evaluator
	generate  game.ResponseGenerator
	maxDepth  int
	metrics   metrics.Collector
	last      metrics.SearchMetric
}

// NewGameTree returns a tree that searches maxDepth plies below the root's
// responses. With maxDepth 0 the responses themselves are scored by the
// evaluator.
func NewGameTree(table *TranspositionTable, evaluator game.Evaluator, generate game.ResponseGenerator, maxDepth int, options ...Option) *GameTree {
	if table == nil || evaluator == nil || generate == nil {
		panic("game tree needs a table, an evaluator and a response generator")
	}
	if maxDepth < 0 {
		panic("max depth must not be negative")
	}
	t := &GameTree{
		table:     table,
		evaluator: evaluator,
		generate:  generate,
		maxDepth:  maxDepth,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *GameTree) MaxDepth() int {
	return t.maxDepth
}

func (t *GameTree) Table() *TranspositionTable {
	return t.table
}

// LastMetrics returns the metrics of the latest completed search. They are
// zero unless the tree was built WithMetrics.
func (t *GameTree) LastMetrics() metrics.SearchMetric {
	return t.last
}

// FindBestResponse searches state and writes the best successor for the player
// to move into its response slot. It returns the minimax value of state. The
// state must not be finished, must have at least one response and must not
// have a response yet.
func (t *GameTree) FindBestResponse(state game.State) (float32, error) {
	hash := state.Fingerprint()
	if state.Response() != nil {
		return 0, errors.Wrapf(ErrPrecondition, "state %016x already has a response", uint64(hash))
	}
	if t.isWin(t.evaluator.Evaluate(state)) {
		return 0, errors.Wrapf(ErrPrecondition, "state %016x is already won", uint64(hash))
	}
	responses := t.generate(state, 0)
	if len(responses) == 0 {
		return 0, errors.Wrapf(ErrPrecondition, "state %016x has no responses", uint64(hash))
	}

	t.metrics.Start(t.maxDepth)
	value, best := t.search(state, t.maxDepth+1, 0, math32.Inf(-1), math32.Inf(1))
	t.last = t.metrics.Complete()

	fingerprints := make([]game.StateHash, len(responses))
	for i, r := range responses {
		fingerprints[i] = r.Fingerprint()
	}
	i := utils.FindIndex(fingerprints, best)
	if i < 0 {
		return 0, errors.Wrapf(ErrInconsistent, "state %016x recommends %016x", uint64(hash), uint64(best))
	}
	state.SetResponse(responses[i])

	log.Debug().Msgf("resolved state %016x: value=%v response=%016x nodes=%d leaves=%d hits=%d cutoffs=%d",
		uint64(hash), value, uint64(best), t.last.Nodes, t.last.Leaves, t.last.TableHits, t.last.Cutoffs)
	return value, nil
}

// search returns the value of state searched with depth plies remaining
// within the window (alpha, beta), and the fingerprint of the successor
// achieving it.
func (t *GameTree) search(state game.State, depth, ply int, alpha, beta float32) (float32, game.StateHash) {
	t.metrics.AddNode()
	hash := state.Fingerprint()

	if e, ok := t.table.Lookup(hash, depth); ok {
		if e.Flag == Exact || (e.Flag == Lower && e.Value >= beta) || (e.Flag == Upper && e.Value <= alpha) {
			t.metrics.AddTableHit()
			return e.Value, e.Response
		}
	}

	if depth == 0 {
		return t.leaf(hash, state, depth)
	}
	value := t.evaluator.Evaluate(state)
	if t.isWin(value) {
		t.metrics.AddLeaf()
		t.table.Store(hash, value, depth, Exact, noResponse)
		return value, noResponse
	}
	responses := t.generate(state, ply)
	if len(responses) == 0 {
		t.metrics.AddLeaf()
		t.table.Store(hash, value, depth, Exact, noResponse)
		return value, noResponse
	}

	return t.expand(hash, state.WhoseTurn(), responses, depth, ply, alpha, beta)
}

func (t *GameTree) leaf(hash game.StateHash, state game.State, depth int) (float32, game.StateHash) {
	t.metrics.AddLeaf()
	value := t.evaluator.Evaluate(state)
	t.table.Store(hash, value, depth, Exact, noResponse)
	return value, noResponse
}

// expand scores every response in order. The first player maximizes, the
// second minimizes; a later response replaces the best only if strictly
// better.
func (t *GameTree) expand(hash game.StateHash, turn game.PlayerID, responses []game.State, depth, ply int, alpha, beta float32) (float32, game.StateHash) {
	alphaOrig, betaOrig := alpha, beta
	maximizing := turn == game.First

	best := noResponse
	value := math32.Inf(1)
	if maximizing {
		value = math32.Inf(-1)
	}

	for _, r := range responses {
		v, _ := t.search(r, depth-1, ply+1, alpha, beta)
		if maximizing {
			if v > value {
				value, best = v, r.Fingerprint()
			}
			if value > alpha {
				alpha = value
			}
		} else {
			if v < value {
				value, best = v, r.Fingerprint()
			}
			if value < beta {
				beta = value
			}
		}
		if alpha >= beta {
			t.metrics.AddCutoff()
			break
		}
	}

	flag := Exact
	if value <= alphaOrig {
		flag = Upper
	} else if value >= betaOrig {
		flag = Lower
	}
	t.table.Store(hash, value, depth, flag, best)
	return value, best
}

func (t *GameTree) isWin(value float32) bool {
	return value >= t.evaluator.FirstPlayerWins() || value <= t.evaluator.SecondPlayerWins()
}
