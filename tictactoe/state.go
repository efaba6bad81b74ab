package tictactoe

import (
	"gameplayer/game"

	"github.com/pkg/errors"
)

var (
	ErrOccupied = errors.New("cell is already occupied")
	ErrGameOver = errors.New("game is over")
)

// lines lists every row, column and diagonal.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// State is a tic-tac-toe position. X always belongs to the first player.
type State struct {
	game.ResponseSlot

	board         Board
	currentPlayer game.PlayerID
	done          bool
	winner        Cell // Neither while playing or after a draw
	zhash         ZHash
}

// NewState returns an empty board with X to move.
func NewState() *State {
	return &State{
		currentPlayer: game.First,
		zhash:         NewZHash(Board{}, game.First, false, Neither),
	}
}

// NewStateFrom returns a state for board with current to move. The board is
// assumed to be reachable; whether it is won or drawn is derived from it.
func NewStateFrom(board Board, current game.PlayerID) *State {
	s := &State{
		board:         board,
		currentPlayer: current,
		zhash:         NewZHash(board, current, false, Neither),
	}
	s.checkIfDone()
	return s
}

// Move places the current player's mark at row, column and passes the turn.
func (s *State) Move(row, column int) error {
	index, err := ToIndex(row, column)
	if err != nil {
		return err
	}
	if s.done {
		return ErrGameOver
	}
	if s.board[index] != Neither {
		return errors.Wrapf(ErrOccupied, "(%d, %d)", row, column)
	}
	s.place(index)
	return nil
}

func (s *State) place(index int) {
	mark := ToCell(s.currentPlayer)
	s.board[index] = mark
	s.zhash = s.zhash.Move(mark, index)

	s.checkIfDone()

	s.currentPlayer = s.currentPlayer.Other()
	s.zhash = s.zhash.Turn()
}

func (s *State) checkIfDone() {
	if s.done {
		return
	}
	if w := s.board.lineWinner(); w != Neither {
		s.done = true
		s.winner = w
		s.zhash = s.zhash.Done(w)
		return
	}
	if s.board.Full() {
		s.done = true
		s.zhash = s.zhash.Done(Neither)
	}
}

// lineWinner returns the mark filling a complete line, or Neither.
func (b Board) lineWinner() Cell {
	for _, line := range lines {
		c := b[line[0]]
		if c != Neither && c == b[line[1]] && c == b[line[2]] {
			return c
		}
	}
	return Neither
}

func (s *State) Fingerprint() game.StateHash {
	return game.StateHash(s.zhash.Value())
}

func (s *State) WhoseTurn() game.PlayerID {
	return s.currentPlayer
}

func (s *State) IsDone() bool {
	return s.done
}

func (s *State) IsDraw() bool {
	return s.done && s.winner == Neither
}

func (s *State) Winner() Cell {
	return s.winner
}

func (s *State) Board() Board {
	return s.board
}

// Clone returns a copy of s without its response.
func (s *State) Clone() *State {
	c := *s
	c.ClearResponse()
	return &c
}

// ToCell returns the mark played by player.
func ToCell(player game.PlayerID) Cell {
	if player == game.First {
		return X
	}
	return O
}

// ToPlayerID returns the player owning mark c; ok is false for Neither.
func ToPlayerID(c Cell) (player game.PlayerID, ok bool) {
	switch c {
	case X:
		return game.First, true
	case O:
		return game.Second, true
	default:
		return 0, false
	}
}
