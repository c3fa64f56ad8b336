package rules

const (
	// MaxNeighbors is the size of a full Moore neighbourhood
	MaxNeighbors = 8

	birthNeighbors = 3
	surviveLow     = 2
	surviveHigh    = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbours and dies otherwise; a dead
cell comes alive with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= surviveLow && neighbors <= surviveHigh
	}
	return neighbors == birthNeighbors
}
