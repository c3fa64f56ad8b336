// Package engine seeds and advances Game of Life generations. Every function
// here is pure: grids go in, new grids come out, nothing is printed.
package engine

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-glider/model"
	"github.com/sheikhrachel/go-glider/rules"
)

// MinGliderSize is the smallest grid that holds a centred glider
const MinGliderSize = 3

// gliderOffsets are the live cells of the glider relative to the grid centre
var gliderOffsets = [5][2]int{
	{-1, 0},
	{0, 1},
	{1, -1},
	{1, 0},
	{1, 1},
}

// SeedGlider builds a size x size grid with a glider around its centre and
// every other cell dead
func SeedGlider(size int) (*model.Grid, error) {
	if size < MinGliderSize {
		return nil, errors.Wrapf(model.ErrInvalidSize,
			"[SeedGlider] glider needs size >= %d, got %d", MinGliderSize, size)
	}

	cells := make([][]model.CellState, size)
	for i := range cells {
		cells[i] = make([]model.CellState, size)
	}

	middle := (size - 1) / 2
	for _, off := range gliderOffsets {
		cells[middle+off[0]][middle+off[1]] = model.Alive
	}

	grid, err := model.NewGridFrom(cells)
	if err != nil {
		return nil, errors.Wrap(err, "[SeedGlider] failed to build grid")
	}
	return grid, nil
}

// Population counts the live cells among the up to eight neighbours of
// (row, col). The grid has hard edges, so neighbours past them do not count.
func Population(g *model.Grid, row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.Size()-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.Size()-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.Alive(r, c) {
				count++
			}
		}
	}

	return count
}

// Step returns the generation after current. current is only read.
func Step(current *model.Grid) (*model.Grid, error) {
	return StepWithPool(current, nil)
}

// StepWithPool is Step with the result's storage taken from pool. A nil pool
// allocates fresh storage.
func StepWithPool(current *model.Grid, pool *model.GridPool) (*model.Grid, error) {
	if current == nil {
		return nil, errors.Wrap(model.ErrInvalidSize, "[Step] nil grid")
	}

	next := allocCells(current.Size(), pool)
	stepRows(current, next, 0, current.Size())

	grid, err := model.NewGridFrom(next)
	if err != nil {
		return nil, errors.Wrap(err, "[Step] failed to build next generation")
	}
	return grid, nil
}

// StepParallel computes the same generation as Step, splitting the rows into
// bands evaluated concurrently. workers <= 0 uses one worker per CPU.
func StepParallel(
	ctx context.Context,
	current *model.Grid,
	workers int,
	pool *model.GridPool,
) (*model.Grid, error) {
	if current == nil {
		return nil, errors.Wrap(model.ErrInvalidSize, "[StepParallel] nil grid")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		size          = current.Size()
		next          = allocCells(size, pool)
		rowsPerWorker = (size + workers - 1) / workers // Ceiling division
	)

	eg, ctx := errgroup.WithContext(ctx)
	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, size)
		)
		if startRow >= size {
			break
		}

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stepRows(current, next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[StepParallel] generation aborted")
	}

	grid, err := model.NewGridFrom(next)
	if err != nil {
		return nil, errors.Wrap(err, "[StepParallel] failed to build next generation")
	}
	return grid, nil
}

// stepRows writes the next state of rows [startRow, endRow) into next
func stepRows(current *model.Grid, next [][]model.CellState, startRow, endRow int) {
	size := current.Size()
	for row := startRow; row < endRow; row++ {
		for col := 0; col < size; col++ {
			if rules.ApplyConwayRules(Population(current, row, col), current.Alive(row, col)) {
				next[row][col] = model.Alive
			}
		}
	}
}

func allocCells(size int, pool *model.GridPool) [][]model.CellState {
	if pool != nil {
		return pool.Cells(size)
	}
	cells := make([][]model.CellState, size)
	for i := range cells {
		cells[i] = make([]model.CellState, size)
	}
	return cells
}
