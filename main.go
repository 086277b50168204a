package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-stepper/model"
	"github.com/sheikhrachel/gol-stepper/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}
		config = utils.DefaultConfig()
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run prints the starting grid and config.Generations further generations to out,
// separated by blank lines. Status and statistics go to status.
func run(ctx context.Context, config utils.Config, out, status io.Writer) error {
	grid, renderer, stats, err := initializeGame(config)
	if err != nil {
		return errors.Wrap(err, "[run] failed to initialize")
	}
	displayGameInfo(status, config, grid)

	fmt.Fprintln(out, "Conway's GameOfLife")
	if err = renderer.Render(out, grid); err != nil {
		return err
	}

	var seen history
	seen.update(grid)

	for generation := 1; generation <= config.Generations; generation++ {
		select {
		case <-ctx.Done():
			shutdown(status, stats)
			return nil
		default:
		}

		next, err := model.NextGeneration(ctx, grid, config)
		if err != nil {
			// interrupted in the middle of a parallel step
			if ctx.Err() != nil {
				shutdown(status, stats)
				return nil
			}
			return errors.Wrapf(err, "[run] generation %d", generation)
		}
		grid = next

		fmt.Fprintln(out)
		if err = renderer.Render(out, grid); err != nil {
			return err
		}

		stats.Update(generation, grid.CountLiveCells(), time.Now())

		if config.StopWhenStable {
			if stable, reason := seen.stable(grid); stable {
				fmt.Fprintf(status, "Stopping at generation %d: %s\n", generation, reason)
				break
			}
			seen.update(grid)
		}

		if config.FrameRate > 0 {
			time.Sleep(config.FrameRate)
		}
	}

	fmt.Fprintln(status, stats)
	return nil
}

func shutdown(status io.Writer, stats *utils.Stats) {
	fmt.Fprintln(status, "Shutting down gracefully...")
	fmt.Fprintln(status, stats)
}
