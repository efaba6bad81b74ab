package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	StartTime time.Time
	Duration  time.Duration
	MaxDepth  int
	Nodes     int
	Leaves    int
	TableHits int
	Cutoffs   int
}

type MoveMetric struct {
	Step   int
	Player string // "X" or "O"
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string // "X" or "O"
	Winner         string // "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(maxDepth int)
	AddNode()
	AddLeaf()
	AddTableHit()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	maxDepth  int
	startTime time.Time
	nodes     atomic.Int32
	leaves    atomic.Int32
	tableHits atomic.Int32
	cutoffs   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(maxDepth int) {
	m.startTime = time.Now()
	m.maxDepth = maxDepth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.tableHits.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddTableHit() {
	m.tableHits.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		MaxDepth:  m.maxDepth,
		Nodes:     int(m.nodes.Load()),
		Leaves:    int(m.leaves.Load()),
		TableHits: int(m.tableHits.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(maxDepth int)     {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) AddTableHit()           {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
