package main

import (
	"fmt"
	"io"

	"github.com/sheikhrachel/gol-stepper/model"
	"github.com/sheikhrachel/gol-stepper/utils"
)

const historySize = 3

// history keeps the hashes of recent generations to spot still lifes and
// oscillators of period 2 or 3
type history struct {
	hashes []string
}

// update adds the grid to history and maintains size
func (h *history) update(grid *model.Grid) {
	h.hashes = append(h.hashes, grid.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// stable reports whether grid repeats one of the generations in history
func (h *history) stable(grid *model.Grid) (bool, string) {
	current := grid.Hash()
	for period := 1; period <= len(h.hashes); period++ {
		if h.hashes[len(h.hashes)-period] != current {
			continue
		}
		if period == 1 {
			return true, "still life"
		}
		return true, fmt.Sprintf("period %d oscillator", period)
	}
	return false, ""
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Grid, model.Renderer, *utils.Stats, error) {
	grid, err := model.Pattern(config.Pattern, config)
	if err != nil {
		return nil, nil, nil, err
	}

	renderer, err := model.NewRenderer(config.Render)
	if err != nil {
		return nil, nil, nil, err
	}

	return grid, renderer, utils.NewStats(), nil
}

// displayGameInfo shows the run settings on the status stream
func displayGameInfo(status io.Writer, config utils.Config, grid *model.Grid) {
	fmt.Fprintf(status, "Pattern: %s | Grid: %dx%d | Initial living cells: %d\n",
		config.Pattern, grid.GetRows(), grid.GetCols(), grid.CountLiveCells())
	fmt.Fprintf(status, "Generations: %d | Parallel: %v | Stop when stable: %v\n",
		config.Generations, config.UseParallel, config.StopWhenStable)
}
