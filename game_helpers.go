package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-glider/engine"
	"github.com/sheikhrachel/go-glider/model"
	"github.com/sheikhrachel/go-glider/utils"
)

// game holds everything one run of the simulation needs
type game struct {
	config   utils.Config
	grid     *model.Grid
	pool     *model.GridPool
	renderer *model.TextRenderer
	history  *model.History
	stats    *utils.Stats
	out      io.Writer
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (*game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	grid, err := engine.SeedGlider(config.Size)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to seed glider")
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	return &game{
		config:   config,
		grid:     grid,
		pool:     pool,
		renderer: model.NewTextRenderer(out),
		history:  model.NewHistory(config.HistorySize),
		stats:    utils.NewStats(),
		out:      out,
	}, nil
}

// nextGeneration advances the game by one generation, releasing the old grid
func (g *game) nextGeneration(ctx context.Context) error {
	var (
		next *model.Grid
		err  error
	)
	if g.config.UseParallel {
		next, err = engine.StepParallel(ctx, g.grid, g.config.Workers, g.pool)
	} else {
		next, err = engine.StepWithPool(g.grid, g.pool)
	}
	if err != nil {
		return err
	}

	g.history.Record(g.grid)
	model.GridToPool(g.grid, g.pool)
	g.grid = next
	return nil
}

// run drives the simulation for the configured number of iterations and
// returns how many generations were computed
func (g *game) run(ctx context.Context) (int, error) {
	fmt.Fprintln(g.out, "Initialized universe with Glider pattern:")
	if err := g.renderer.Display(g.grid); err != nil {
		return 0, err
	}

	lastFrameTime := time.Now()
	for i := 1; i <= g.config.Iterations; i++ {
		select {
		case <-ctx.Done():
			return i - 1, nil
		default:
		}

		if err := g.nextGeneration(ctx); err != nil {
			return i - 1, errors.Wrapf(err, "[run] iteration %d", i)
		}

		g.stats.Update(i, g.grid.CountLivingCells(), time.Since(lastFrameTime))
		lastFrameTime = time.Now()

		fmt.Fprintf(g.out, "Iteration №%d\n", i)
		if err := g.renderer.Display(g.grid); err != nil {
			return i, err
		}

		if g.config.StopWhenStagnant && g.history.IsStagnant(g.grid) {
			fmt.Fprintf(g.out, "Universe stagnant after %d iterations\n", i)
			return i, nil
		}

		if g.config.FrameRate > 0 {
			time.Sleep(g.config.FrameRate)
		}
	}
	return g.config.Iterations, nil
}

// displayStats shows the final run statistics
func (g *game) displayStats(generations int) {
	fmt.Fprintf(g.out, "Final stats: %d generations in %.3f seconds\n",
		generations, g.stats.Runtime().Seconds())
	fmt.Fprintf(g.out, "Living: %d | Avg Pop: %.1f | %.1f gen/sec\n",
		g.stats.ActiveCells, g.stats.AveragePopulation, g.stats.GenerationsPerSecond)
}
