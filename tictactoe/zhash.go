package tictactoe

import (
	"gameplayer/game"
	"gameplayer/zobrist"
)

// Keys for every (cell, mark), the turn, and the three outcomes (indexed by the
// winning Cell, Neither meaning a draw). Generated once from a fixed seed, so
// fingerprints are the same on every run.
var keys = zobrist.NewTable(Cells, 3, 3, zobrist.DefaultSeed)

// ZHash is the zobrist fingerprint of a tic-tac-toe state. It covers the board,
// whose turn it is, and whether the game is over and who won.
type ZHash struct {
	value zobrist.Hash
}

// NewZHash computes the fingerprint of a complete state. It equals starting
// from the empty hash and applying Move for every cell, Turn if the second
// player is to move, and Done(winner) if the game is over. winner is ignored
// unless done is set.
func NewZHash(board Board, current game.PlayerID, done bool, winner Cell) ZHash {
	z := ZHash{value: zobrist.Empty}
	for i, c := range board {
		z = z.Move(c, i)
	}
	if current != game.First {
		z = z.Turn()
	}
	if done {
		z = z.Done(winner)
	}
	return z
}

func (z ZHash) Value() zobrist.Hash {
	return z.value
}

// Move toggles mark c on cell index. Toggling Neither changes nothing.
func (z ZHash) Move(c Cell, index int) ZHash {
	return ZHash{value: z.value.Toggle(keys.Cell(index, int(c)))}
}

// Turn toggles whose turn it is.
func (z ZHash) Turn() ZHash {
	return ZHash{value: z.value.Toggle(keys.Turn())}
}

// Done toggles the finished status with the given winner.
func (z ZHash) Done(winner Cell) ZHash {
	return ZHash{value: z.value.Toggle(keys.Outcome(int(winner)))}
}

func (z ZHash) IsUndefined() bool {
	return z.value.IsUndefined()
}
