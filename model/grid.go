package model

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-stepper/rules"
)

// ErrRaggedGrid is returned when the rows of a grid literal differ in length
var ErrRaggedGrid = errors.New("all grid rows must have the same length")

// Grid is an immutable rows x cols board of cells
type Grid struct {
	rows  int
	cols  int
	cells [][]rules.Cell
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(rules.ErrInvalidGridDimensions, "[NewGrid] %dx%d", rows, cols)
	}
	return newGrid(rows, cols), nil
}

func newGrid(rows, cols int) *Grid {
	cells := make([][]rules.Cell, rows)
	for i := range cells {
		cells[i] = make([]rules.Cell, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// FromRows copies cells into a new grid. Cell values are kept as given.
func FromRows(cells [][]rules.Cell) (*Grid, error) {
	cols := 0
	if len(cells) > 0 {
		cols = len(cells[0])
	}

	g := newGrid(len(cells), cols)
	for r, row := range cells {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrRaggedGrid, "[FromRows] row %d has %d cells, want %d", r, len(row), cols)
		}
		copy(g.cells[r], row)
	}
	return g, nil
}

// ParseGrid reads the comma separated form written by CSVRenderer.
// Blank lines are skipped and a trailing comma on a row is optional.
func ParseGrid(text string) (*Grid, error) {
	var cells [][]rules.Cell
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimSuffix(line, ",")

		fields := strings.Split(line, ",")
		row := make([]rules.Cell, len(fields))
		for i, field := range fields {
			switch strings.TrimSpace(field) {
			case "0":
				row[i] = rules.Dead
			case "1":
				row[i] = rules.Live
			default:
				return nil, errors.Wrapf(rules.ErrInvalidCellState, "[ParseGrid] line %d column %d: %q", n+1, i+1, field)
			}
		}
		cells = append(cells, row)
	}
	return FromRows(cells)
}

// GetRows returns the number of rows of the grid
func (g *Grid) GetRows() int {
	return g.rows
}

// GetCols returns the number of columns of the grid
func (g *Grid) GetCols() int {
	return g.cols
}

// Get returns the cell at (row, col), or Dead outside the grid
func (g *Grid) Get(row, col int) rules.Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return rules.Dead
	}
	return g.cells[row][col]
}

// Row returns a copy of one row
func (g *Grid) Row(row int) []rules.Cell {
	out := make([]rules.Cell, g.cols)
	copy(out, g.cells[row])
	return out
}

// Cells returns a deep copy of the grid contents
func (g *Grid) Cells() [][]rules.Cell {
	out := make([][]rules.Cell, g.rows)
	for r := range out {
		out[r] = g.Row(r)
	}
	return out
}

// CountLiveNeighbours counts the live cells in the 3x3 block around (row, col),
// clipped at the grid edges and excluding the cell itself
func (g *Grid) CountLiveNeighbours(row, col int) int {
	count := 0

	rowEnd := min(g.rows, row+2)
	colEnd := min(g.cols, col+2)

	for r := max(0, row-1); r < rowEnd; r++ {
		for c := max(0, col-1); c < colEnd; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] == rules.Live {
				count++
			}
		}
	}

	return count
}

// CountLiveNeighbours is the function form of Grid.CountLiveNeighbours
func CountLiveNeighbours(g *Grid, row, col int) int {
	return g.CountLiveNeighbours(row, col)
}

// CountLiveCells returns the total number of live cells
func (g *Grid) CountLiveCells() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] == rules.Live {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 hash of the dimensions and cells
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.rows, g.cols)
	for r := range g.rows {
		for c := range g.cols {
			h.Write([]byte{byte(g.cells[r][c])})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (g *Grid) String() string {
	var sb strings.Builder
	_ = (CSVRenderer{}).Render(&sb, g)
	return sb.String()
}
