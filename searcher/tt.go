package searcher

import (
	"fmt"

	"gameplayer/game"

	"github.com/dustin/go-humanize"
)

// Flag tells how an entry's value relates to the true minimax value of its
// state.
type Flag uint8

const (
	Exact Flag = iota // value is the minimax value
	Lower             // value is a lower bound (search failed high)
	Upper             // value is an upper bound (search failed low)
)

func (f Flag) String() string {
	switch f {
	case Exact:
		return "exact"
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return "unknown"
	}
}

// Entry is a search result for one state.
type Entry struct {
	Hash     game.StateHash
	Value    float32
	Depth    int // remaining depth the value was searched with
	Flag     Flag
	Response game.StateHash // fingerprint of the recommended successor
	valid    bool
}

// TranspositionTable maps fingerprints to search results. Entries are direct
// mapped to slot fingerprint % capacity; a store always overwrites its slot.
// The table is not safe for concurrent use.
type TranspositionTable struct {
	entries  []Entry
	maxDepth int

	hits       int
	shallow    int
	collisions int
	misses     int
	evictions  int
}

// NewTranspositionTable allocates a table of capacity entries. maxDepth is the
// deepest remaining depth the table expects to record; deeper entries are
// still stored but counted in the last depth bucket.
func NewTranspositionTable(capacity int, maxDepth int) *TranspositionTable {
	if capacity < 1 {
		capacity = 1
	}
	if maxDepth < 0 {
		maxDepth = 0
	}
	return &TranspositionTable{
		entries:  make([]Entry, capacity),
		maxDepth: maxDepth,
	}
}

func (tt *TranspositionTable) slot(hash game.StateHash) *Entry {
	return &tt.entries[uint64(hash)%uint64(len(tt.entries))]
}

// Lookup returns the entry for hash if one was stored with a remaining depth of
// at least depth. A shallower entry is reported as a miss.
func (tt *TranspositionTable) Lookup(hash game.StateHash, depth int) (Entry, bool) {
	e := tt.slot(hash)
	switch {
	case !e.valid:
		tt.misses++
	case e.Hash != hash:
		tt.collisions++
	case e.Depth < depth:
		tt.shallow++
	default:
		tt.hits++
		return *e, true
	}
	return Entry{}, false
}

// Store records a result for hash, replacing whatever occupied its slot.
func (tt *TranspositionTable) Store(hash game.StateHash, value float32, depth int, flag Flag, response game.StateHash) {
	e := tt.slot(hash)
	if e.valid && e.Hash != hash {
		tt.evictions++
	}
	*e = Entry{
		Hash:     hash,
		Value:    value,
		Depth:    depth,
		Flag:     flag,
		Response: response,
		valid:    true,
	}
}

// Clear empties every slot and resets the counters.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = Entry{}
	}
	tt.hits, tt.shallow, tt.collisions, tt.misses, tt.evictions = 0, 0, 0, 0, 0
}

func (tt *TranspositionTable) Capacity() int {
	return len(tt.entries)
}

// Count returns the number of occupied slots.
func (tt *TranspositionTable) Count() int {
	count := 0
	for i := range tt.entries {
		if tt.entries[i].valid {
			count++
		}
	}
	return count
}

// EntriesByDepth counts occupied slots by recorded depth, 0 through maxDepth.
func (tt *TranspositionTable) EntriesByDepth() []int {
	counts := make([]int, tt.maxDepth+1)
	for i := range tt.entries {
		e := &tt.entries[i]
		if !e.valid {
			continue
		}
		d := e.Depth
		if d > tt.maxDepth {
			d = tt.maxDepth
		}
		if d < 0 {
			d = 0
		}
		counts[d]++
	}
	return counts
}

func (tt *TranspositionTable) Stats() string {
	return fmt.Sprintf("entries: %v/%v, hits: %v, depth too low: %v, collisions: %v, misses: %v, evictions: %v",
		humanize.Comma(int64(tt.Count())), humanize.Comma(int64(tt.Capacity())),
		humanize.Comma(int64(tt.hits)), humanize.Comma(int64(tt.shallow)),
		humanize.Comma(int64(tt.collisions)), humanize.Comma(int64(tt.misses)),
		humanize.Comma(int64(tt.evictions)),
	)
}
