package bloom

// Host is anything a bloom grid can be mounted on: a scene node, a terminal
// panel, or a test recorder.
type Host interface {
	// AttachGrid appends a 3×3 grid of blank cells and returns it.
	AttachGrid() Grid
}

// Grid is the effectful side of an instance: nine cells it writes every
// frame. Implementations are only called from the frame loop goroutine.
type Grid interface {
	// SetCell applies state to the cell at index (0-8).
	SetCell(index int, state CellState)
	// Detach removes the grid and its cells from the host.
	Detach()
}

// applyGrid writes every cell of st to g.
func applyGrid(g Grid, st *GridState) {
	for i := range st {
		g.SetCell(i, st[i])
	}
}

// blankGrid sets every cell of g to transparent with no filter.
func blankGrid(g Grid) {
	for i := 0; i < CellCount; i++ {
		g.SetCell(i, CellState{})
	}
}
