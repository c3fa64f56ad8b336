package model

const defaultHistorySize = 5

// History remembers the hashes of recent generations for cycle detection
type History struct {
	limit  int
	hashes []string
}

// NewHistory keeps the last limit generations. A non-positive limit uses the default.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = defaultHistorySize
	}
	return &History{limit: limit}
}

// Record adds the grid to the history, dropping the oldest entry when full
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())

	if len(h.hashes) > h.limit {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether g repeats a recorded generation, i.e. the
// universe has settled into a still life or an oscillator short enough to fit
// in the history.
func (h *History) IsStagnant(g *Grid) bool {
	current := g.Hash()
	for _, seen := range h.hashes {
		if seen == current {
			return true
		}
	}
	return false
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}
