package main

import (
	"fmt"

	"gameplayer/player"
	"gameplayer/tictactoe"
)

// printing shows the board before the wrapped player moves.
type printing struct {
	player.Player
}

func (p printing) Move(state *tictactoe.State) error {
	if state != nil && !state.IsDone() {
		fmt.Print(state.Board())
	}
	return p.Player.Move(state)
}
