// meta/meta.go
package meta

// MaxDepth is the default search depth below the root's responses. At 9 the
// whole tic-tac-toe tree is searched.
const MaxDepth = 9

// TableCapacity is the default number of transposition table slots (9!).
const TableCapacity = 362880

// NumGames is the number of games per experiment matchup.
const NumGames = 20

// Seed is the base seed for experiment openings.
const Seed uint64 = 42
