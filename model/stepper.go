package model

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-stepper/rules"
	"github.com/sheikhrachel/gol-stepper/utils"
)

// Step calculates the next generation of g into a new grid.
// The input grid is only read, so every cell sees the previous generation.
func Step(g *Grid) (*Grid, error) {
	if err := checkDimensions(g); err != nil {
		return nil, errors.Wrap(err, "[Step]")
	}

	next := newGrid(g.rows, g.cols)
	if err := g.stepRows(next, 0, g.rows); err != nil {
		return nil, errors.Wrap(err, "[Step]")
	}
	return next, nil
}

// StepParallel calculates the next generation like Step, splitting the rows
// into contiguous bands handled by separate goroutines.
// workers <= 0 uses one worker per CPU.
func StepParallel(ctx context.Context, g *Grid, workers int) (*Grid, error) {
	if err := checkDimensions(g); err != nil {
		return nil, errors.Wrap(err, "[StepParallel]")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	next := newGrid(g.rows, g.cols)

	var (
		eg, egCtx     = errgroup.WithContext(ctx)
		rowsPerWorker = (g.rows + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			return g.stepRows(next, startRow, endRow)
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[StepParallel]")
	}
	return next, nil
}

// NextGeneration calculates the next generation based on configuration
func NextGeneration(ctx context.Context, g *Grid, config utils.Config) (*Grid, error) {
	if config.UseParallel {
		return StepParallel(ctx, g, config.Workers)
	}
	return Step(g)
}

// stepRows writes rows [startRow, endRow) of the next generation into next
func (g *Grid) stepRows(next *Grid, startRow, endRow int) error {
	for r := startRow; r < endRow; r++ {
		for c := range g.cols {
			state, err := rules.NextCellState(g.cells[r][c], g.CountLiveNeighbours(r, c))
			if err != nil {
				return errors.Wrapf(err, "cell (%d,%d)", r, c)
			}
			next.cells[r][c] = state
		}
	}
	return nil
}

func checkDimensions(g *Grid) error {
	if g == nil {
		return errors.Wrap(rules.ErrInvalidGridDimensions, "nil grid")
	}
	if g.rows <= 0 || g.cols <= 0 {
		return errors.Wrapf(rules.ErrInvalidGridDimensions, "%dx%d", g.rows, g.cols)
	}
	return nil
}
