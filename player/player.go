package player

import (
	"gameplayer/game"
	"gameplayer/tictactoe"
)

// Player makes one move on the state it is given, in place. A nil or finished
// state is left untouched.
type Player interface {
	ID() game.PlayerID
	Move(state *tictactoe.State) error
}
