package model

// Overlay tracks cells already explored by a search over one grid.
type Overlay struct {
	cols    int
	visited []bool
}

// NewOverlay returns an overlay with every cell of g unvisited.
func NewOverlay(g Grid) *Overlay {
	return &Overlay{cols: g.Cols(), visited: make([]bool, g.Rows()*g.Cols())}
}

// Visited reports whether c has been marked. Cells outside the overlay never are.
func (o *Overlay) Visited(c Cell) bool {
	idx, ok := o.index(c)
	return ok && o.visited[idx]
}

// Mark flags c as visited. Cells outside the overlay are ignored.
func (o *Overlay) Mark(c Cell) {
	if idx, ok := o.index(c); ok {
		o.visited[idx] = true
	}
}

// Count returns the number of visited cells.
func (o *Overlay) Count() int {
	n := 0

	for _, v := range o.visited {
		if v {
			n++
		}
	}

	return n
}

// Reset clears every mark.
func (o *Overlay) Reset() {
	clear(o.visited)
}

func (o *Overlay) index(c Cell) (int, bool) {
	if o.cols == 0 || c.Row < 0 || c.Col < 0 || c.Col >= o.cols {
		return 0, false
	}

	idx := c.Row*o.cols + c.Col
	if idx >= len(o.visited) {
		return 0, false
	}

	return idx, true
}
