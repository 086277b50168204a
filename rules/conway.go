package rules

import "github.com/pkg/errors"

var (
	// ErrInvalidGridDimensions is returned when a grid has no rows or no columns
	ErrInvalidGridDimensions = errors.New("grid must have a positive number of rows and columns")
	// ErrInvalidCellState is returned for a cell that is neither Dead nor Live
	ErrInvalidCellState = errors.New("cell state must be either Live or Dead")
)

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = 0
	Live Cell = 1
)

// Valid reports whether c is Dead or Live
func (c Cell) Valid() bool {
	return c == Dead || c == Live
}

func (c Cell) String() string {
	switch c {
	case Dead:
		return "0"
	case Live:
		return "1"
	}
	return "invalid"
}

/*
NextCellState applies Conway's Game of Life rules to determine the next state of a cell.

	Live with fewer than 2 live neighbours dies (under-population)
	Live with 2 or 3 live neighbours survives
	Live with more than 3 live neighbours dies (over-population)
	Dead with exactly 3 live neighbours becomes Live (reproduction)
*/
func NextCellState(current Cell, liveNeighbours int) (Cell, error) {
	if !current.Valid() {
		return current, errors.Wrapf(ErrInvalidCellState, "[NextCellState] got %d", uint8(current))
	}
	if liveNeighbours == 3 || (current == Live && liveNeighbours == 2) {
		return Live, nil
	}
	return Dead, nil
}
