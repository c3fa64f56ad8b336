package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// CellState is the state of a single cell
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

const (
	deadGlyph  = "."
	aliveGlyph = "*"
)

// String returns the printable glyph for the cell
func (c CellState) String() string {
	if c == Alive {
		return aliveGlyph
	}
	return deadGlyph
}

// Grid is one generation of a square universe. It has no setters: once
// built it is never changed, and every generation gets its own Grid.
type Grid struct {
	size  int
	cells [][]CellState
}

// NewGrid creates a grid of the given edge length with every cell dead
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewGrid] size must be positive, got %d", size)
	}
	return &Grid{size: size, cells: makeCells(size)}, nil
}

// NewGridFrom wraps cells as a grid. The caller hands the rows over and must
// not modify them afterwards.
func NewGridFrom(cells [][]CellState) (*Grid, error) {
	size := len(cells)
	if size == 0 {
		return nil, errors.Wrap(ErrInvalidSize, "[NewGridFrom] no rows")
	}
	for i, row := range cells {
		if len(row) != size {
			return nil, errors.Wrapf(ErrInvalidSize,
				"[NewGridFrom] row %d has %d cells, want %d", i, len(row), size)
		}
	}
	return &Grid{size: size, cells: cells}, nil
}

func makeCells(size int) [][]CellState {
	cells := make([][]CellState, size)
	for i := range cells {
		cells[i] = make([]CellState, size)
	}
	return cells
}

// Size returns the edge length of the grid
func (g *Grid) Size() int {
	return g.size
}

// CellAt returns the state of the cell at (row, col)
func (g *Grid) CellAt(row, col int) (CellState, error) {
	if !g.inBounds(row, col) {
		return Dead, errors.Wrapf(ErrOutOfBounds,
			"[CellAt] (%d, %d) outside %dx%d grid", row, col, g.size, g.size)
	}
	return g.cells[row][col], nil
}

// Alive reports whether (row, col) holds a live cell. Coordinates outside
// the grid are dead.
func (g *Grid) Alive(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row][col] == Alive
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Snapshot returns a copy of the cells that the caller owns
func (g *Grid) Snapshot() [][]CellState {
	out := makeCells(g.size)
	for i, row := range g.cells {
		copy(out[i], row)
	}
	return out
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, row := range g.cells {
		for _, c := range row {
			if c == Alive {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same size and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j] != other.cells[i][j] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 hash of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	row := make([]byte, g.size)
	for _, cells := range g.cells {
		for j, c := range cells {
			row[j] = byte(c)
		}
		h.Write(row)
	}
	return fmt.Sprintf("%d:%x", g.size, h.Sum(nil))
}
