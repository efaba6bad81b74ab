package player

import (
	"bufio"
	"fmt"
	"io"

	"gameplayer/game"
	"gameplayer/tictactoe"

	"github.com/pkg/errors"
)

// ErrInputClosed is returned when the input ends before a legal move is read.
var ErrInputClosed = errors.New("input closed")

const prompt = "Enter your move (row col), where row and col are 0-2: "

// HumanPlayer reads moves as "row col" lines and re-prompts until one is legal.
type HumanPlayer struct {
	id      game.PlayerID
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHumanPlayer(id game.PlayerID, in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{
		id:      id,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *HumanPlayer) ID() game.PlayerID {
	return p.id
}

func (p *HumanPlayer) Move(state *tictactoe.State) error {
	if state == nil || state.IsDone() {
		return nil
	}

	for {
		fmt.Fprint(p.out, prompt)
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return errors.Wrap(err, "failed to read move")
			}
			return ErrInputClosed
		}

		var row, column int
		if _, err := fmt.Sscan(p.scanner.Text(), &row, &column); err != nil {
			fmt.Fprintln(p.out, "Invalid input! Please enter two numbers.")
			continue
		}

		err := state.Move(row, column)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, tictactoe.ErrOutOfRange):
			fmt.Fprintln(p.out, "Invalid move! Row and column must be between 0 and 2.")
		case errors.Is(err, tictactoe.ErrOccupied):
			fmt.Fprintf(p.out, "Invalid move! Cell (%d, %d) is already occupied.\n", row, column)
		default:
			return err
		}
	}
}
