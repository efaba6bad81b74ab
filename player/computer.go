package player

import (
	"gameplayer/experiments/metrics"
	"gameplayer/game"
	"gameplayer/meta"
	"gameplayer/searcher"
	"gameplayer/tictactoe"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Option func(p *ComputerPlayer)

// WithDepth sets the search depth below the candidate moves.
func WithDepth(depth int) Option {
	return func(p *ComputerPlayer) {
		p.depth = depth
	}
}

// WithTable shares a transposition table with other players.
func WithTable(table *searcher.TranspositionTable) Option {
	return func(p *ComputerPlayer) {
		p.table = table
	}
}

func WithMetrics() Option {
	return func(p *ComputerPlayer) {
		p.collector = metrics.NewCollector()
	}
}

// ComputerPlayer picks its moves with a minimax search. The transposition
// table is kept between moves.
type ComputerPlayer struct {
	id        game.PlayerID
	depth     int
	table     *searcher.TranspositionTable
	collector metrics.Collector
	tree      *searcher.GameTree
}

func NewComputerPlayer(id game.PlayerID, options ...Option) *ComputerPlayer {
	p := &ComputerPlayer{
		id:    id,
		depth: meta.MaxDepth,
	}
	for _, option := range options {
		option(p)
	}
	if p.table == nil {
		p.table = searcher.NewTranspositionTable(meta.TableCapacity, meta.MaxDepth)
	}

	var treeOptions []searcher.Option
	if p.collector != nil {
		treeOptions = append(treeOptions, searcher.WithMetrics(p.collector))
	}
	p.tree = searcher.NewGameTree(p.table, tictactoe.NewEvaluator(), tictactoe.Responses, p.depth, treeOptions...)
	return p
}

func (p *ComputerPlayer) ID() game.PlayerID {
	return p.id
}

func (p *ComputerPlayer) Depth() int {
	return p.depth
}

// Move searches a copy of state and replaces state with the chosen response.
func (p *ComputerPlayer) Move(state *tictactoe.State) error {
	if state == nil || state.IsDone() {
		return nil
	}

	root := state.Clone()
	value, err := p.tree.FindBestResponse(root)
	if err != nil {
		return errors.Wrapf(err, "%v player failed to move", p.id)
	}
	response, ok := root.Response().(*tictactoe.State)
	if !ok {
		panic("unexpected state type")
	}
	*state = *response.Clone()

	log.Debug().Msgf("%v player moved with value %v", p.id, value)
	return nil
}

// LastMetrics returns the metrics of the latest move. They are zero unless the
// player was created WithMetrics.
func (p *ComputerPlayer) LastMetrics() metrics.SearchMetric {
	return p.tree.LastMetrics()
}

func (p *ComputerPlayer) TableStats() string {
	return p.table.Stats()
}
