// Package zobrist maintains incremental structural fingerprints.
//
// A fingerprint is the XOR of one key per observable fact about a state (a
// mark on a cell, whose turn it is, how the game ended). Toggling a fact XORs
// its key in or out, so the fingerprint depends only on the final set of facts
// and toggling the same fact twice is a no-op. Keys are not cryptographic.
package zobrist

import "golang.org/x/exp/rand"

// DefaultSeed seeds every key table unless another seed is given. The same
// seed yields the same keys on every run.
const DefaultSeed uint64 = 0x9e3779b97f4a7c15

// Hash is a fingerprint value.
type Hash uint64

const (
	// Empty is the fingerprint of a state with no facts.
	Empty Hash = 0
	// Undefined is reserved for callers as a sentinel; composition never
	// produces it on purpose.
	Undefined Hash = ^Empty
)

// Toggle XORs key into h.
func (h Hash) Toggle(key uint64) Hash {
	return h ^ Hash(key)
}

func (h Hash) IsUndefined() bool {
	return h == Undefined
}

// Table holds the keys for a board of cells, each of which carries one of
// several marks (mark 0 meaning empty), a turn key, and one key per outcome.
type Table struct {
	marks    int
	cells    []uint64
	turn     uint64
	outcomes []uint64
}

// NewTable generates keys for the given number of cells, marks per cell
// (including the empty mark 0) and outcomes from seed.
func NewTable(cells, marks, outcomes int, seed uint64) *Table {
	if cells <= 0 || marks <= 1 || outcomes <= 0 {
		panic("zobrist: table needs cells, at least two marks and outcomes")
	}
	rng := rand.New(rand.NewSource(seed))
	next := func() uint64 {
		// a zero key would make its fact invisible
		v := rng.Uint64()
		for v == 0 || Hash(v) == Undefined {
			v = rng.Uint64()
		}
		return v
	}

	t := &Table{
		marks:    marks,
		cells:    make([]uint64, cells*marks),
		outcomes: make([]uint64, outcomes),
	}
	for i := 0; i < cells; i++ {
		for m := 1; m < marks; m++ { // empty cells don't contribute
			t.cells[i*marks+m] = next()
		}
	}
	t.turn = next()
	for i := range t.outcomes {
		t.outcomes[i] = next()
	}
	return t
}

// Cell returns the key for mark on cell index. The empty mark has key 0.
func (t *Table) Cell(index, mark int) uint64 {
	return t.cells[index*t.marks+mark]
}

// Turn returns the key toggled whenever the turn passes.
func (t *Table) Turn() uint64 {
	return t.turn
}

// Outcome returns the key toggled when the game ends with the given outcome.
func (t *Table) Outcome(outcome int) uint64 {
	return t.outcomes[outcome]
}

// Cells returns the number of cells covered by the table.
func (t *Table) Cells() int {
	return len(t.cells) / t.marks
}
