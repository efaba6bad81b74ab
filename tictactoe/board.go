package tictactoe

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	Size  = 3
	Cells = Size * Size
)

var ErrOutOfRange = errors.New("row and column must be between 0 and 2")

// Cell is the content of one square.
type Cell uint8

const (
	Neither Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Board holds the cells in row-major order.
type Board [Cells]Cell

func InRange(row, column int) bool {
	return row >= 0 && row < Size && column >= 0 && column < Size
}

// ToIndex converts a row and column to a cell index.
func ToIndex(row, column int) (int, error) {
	if !InRange(row, column) {
		return -1, errors.Wrapf(ErrOutOfRange, "(%d, %d)", row, column)
	}
	return row*Size + column, nil
}

// ToPosition converts a cell index to a row and column.
func ToPosition(index int) (row, column int) {
	return index / Size, index % Size
}

func (b Board) At(index int) Cell {
	return b[index]
}

func (b *Board) Set(index int, c Cell) {
	b[index] = c
}

// Full reports whether no cell is empty.
func (b Board) Full() bool {
	for _, c := range b {
		if c == Neither {
			return false
		}
	}
	return true
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b[r*Size+c].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
