package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles the cell storage of discarded generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Cells returns cleared size x size storage, reusing a released grid when one
// is available. The result is meant to be filled and passed to NewGridFrom.
func (p *GridPool) Cells(size int) [][]CellState {
	g := p.pool.Get().(*Grid)
	cells := g.cells
	g.cells = nil

	// Resize cells if needed
	if len(cells) != size {
		cells = make([][]CellState, size)
	}
	for i := range cells {
		if len(cells[i]) != size {
			cells[i] = make([]CellState, size)
		} else {
			clear(cells[i])
		}
	}
	return cells
}

// Put takes back a grid whose owner is done with it. The grid is emptied and
// must not be read again.
func (p *GridPool) Put(g *Grid) {
	g.size = 0
	p.pool.Put(g)
}
