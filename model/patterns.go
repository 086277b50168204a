package model

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-stepper/rules"
	"github.com/sheikhrachel/gol-stepper/utils"
)

const (
	PatternDemo    = "demo"
	PatternBlock   = "block"
	PatternBlinker = "blinker"
	PatternGlider  = "glider"
	PatternRandom  = "random"
)

// ErrUnknownPattern is returned by Pattern for an unsupported name
var ErrUnknownPattern = errors.New("unknown pattern")

// demoBoard is the starting board of the console demo
const demoBoard = `
0,0,0,0,0
0,0,0,1,0
0,0,1,1,0
0,0,0,1,0
0,0,0,0,0
`

// Pattern builds the named starting grid. The glider and random patterns
// use the configured rows and cols; the others have fixed sizes.
func Pattern(name string, config utils.Config) (*Grid, error) {
	switch name {
	case PatternDemo, "":
		return ParseGrid(demoBoard)
	case PatternBlock:
		g := newGrid(4, 4)
		g.setAll(rules.Live, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})
		return g, nil
	case PatternBlinker:
		g := newGrid(5, 5)
		g.setAll(rules.Live, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
		return g, nil
	case PatternGlider:
		g, err := sizedGrid(name, config)
		if err != nil {
			return nil, err
		}
		g.addGlider(0, 0)
		return g, nil
	case PatternRandom:
		g, err := sizedGrid(name, config)
		if err != nil {
			return nil, err
		}
		g.randomize(rand.New(rand.NewSource(config.Seed)), config.RandomDensity)
		return g, nil
	}
	return nil, errors.Wrapf(ErrUnknownPattern, "[Pattern] %q", name)
}

func sizedGrid(name string, config utils.Config) (*Grid, error) {
	if config.Rows <= 0 || config.Cols <= 0 {
		return nil, errors.Wrapf(rules.ErrInvalidGridDimensions, "[Pattern] %s needs a %dx%d board", name, config.Rows, config.Cols)
	}
	return newGrid(config.Rows, config.Cols), nil
}

// set is only used while a grid is being built, before it is handed out
func (g *Grid) set(row, col int, state rules.Cell) {
	if row >= 0 && row < g.rows && col >= 0 && col < g.cols {
		g.cells[row][col] = state
	}
}

func (g *Grid) setAll(state rules.Cell, positions ...[2]int) {
	for _, pos := range positions {
		g.set(pos[0], pos[1], state)
	}
}

// addGlider adds a glider whose bounding box starts at (startRow, startCol)
func (g *Grid) addGlider(startRow, startCol int) {
	pattern := [][]rules.Cell{
		{rules.Dead, rules.Live, rules.Dead},
		{rules.Dead, rules.Dead, rules.Live},
		{rules.Live, rules.Live, rules.Live},
	}

	for r, row := range pattern {
		for c, cell := range row {
			g.set(startRow+r, startCol+c, cell)
		}
	}
}

// randomize fills the grid with live cells at the given density
func (g *Grid) randomize(rng *rand.Rand, density float64) {
	for r := range g.rows {
		for c := range g.cols {
			if rng.Float64() < density {
				g.cells[r][c] = rules.Live
			} else {
				g.cells[r][c] = rules.Dead
			}
		}
	}
}
