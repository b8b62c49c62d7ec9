// Package domain implements maze exit detection and the solve workflows.
package domain

import (
	"fmt"

	m "amaze.dev/pkg/amaze/internal/model"
)

// exploreOrder is the fixed order neighbors are tried in, named by the
// came-from tag each neighbor receives: the cell below first, then right,
// left and above.
var exploreOrder = [...]m.Direction{m.Up, m.Left, m.Right, m.Down}

// Searcher decides whether a target cell can be reached from a start cell.
type Searcher interface {
	// HasPath reports whether an open 4-directional path leads from current
	// to target. cameFrom names the side of current the traversal arrived
	// from; that neighbor is marked in overlay and never walked back into.
	HasPath(grid m.Grid, current, target m.Cell, cameFrom m.Direction, overlay *m.Overlay) bool
}

// NewSearcher returns the Searcher for strategy. Unknown strategies fall
// back to the iterative one.
func NewSearcher(strategy m.SearchStrategy) Searcher {
	if strategy == m.StrategyRecursive {
		return recursiveSearcher{}
	}

	return iterativeSearcher{}
}

// Reachable validates from and to, then searches from from with the entry
// direction the scanner would use.
func Reachable(s Searcher, grid m.Grid, from, to m.Cell, overlay *m.Overlay) (bool, error) {
	if !grid.Valid() {
		return false, fmt.Errorf("%w: grid is empty", m.ErrInvalidGrid)
	}

	for _, c := range []m.Cell{from, to} {
		if !grid.InBounds(c) {
			return false, fmt.Errorf("%w: %s outside %dx%d grid", m.ErrInvalidCoordinate, c, grid.Rows(), grid.Cols())
		}
	}

	return s.HasPath(grid, from, to, EntryDirection(grid, from), overlay), nil
}

// EntryDirection returns the outward side of a boundary cell, checked as
// top, bottom, left, right. Interior cells get NoDirection.
func EntryDirection(grid m.Grid, c m.Cell) m.Direction {
	switch {
	case c.Row == 0:
		return m.Up
	case c.Row == grid.Rows()-1:
		return m.Down
	case c.Col == 0:
		return m.Left
	case c.Col == grid.Cols()-1:
		return m.Right
	default:
		return m.NoDirection
	}
}

// guardsOpen reports whether every interior neighbor guarding boundary cell c
// is open. A cell on several sides (corners, 1-wide grids) has several
// guards; guards outside the grid are not checked.
func guardsOpen(grid m.Grid, c m.Cell) bool {
	lastRow, lastCol := grid.Rows()-1, grid.Cols()-1

	guards := make([]m.Cell, 0, 4)
	if c.Row == 0 {
		guards = append(guards, m.Cell{Row: 1, Col: c.Col})
	}

	if c.Row == lastRow {
		guards = append(guards, m.Cell{Row: c.Row - 1, Col: c.Col})
	}

	if c.Col == 0 {
		guards = append(guards, m.Cell{Row: c.Row, Col: 1})
	}

	if c.Col == lastCol {
		guards = append(guards, m.Cell{Row: c.Row, Col: c.Col - 1})
	}

	for _, g := range guards {
		if grid.InBounds(g) && !grid.IsOpen(g) {
			return false
		}
	}

	return true
}

// precheck applies the walled-off exit and entrance checks.
func precheck(grid m.Grid, start, target m.Cell) bool {
	return guardsOpen(grid, target) && guardsOpen(grid, start)
}

// step is the outcome of arriving at a cell.
type step int

const (
	stepFound step = iota
	stepDead
	stepExpand
)

// arrive applies the termination rules for cell and, when the walk goes on,
// marks the cell on side cameFrom as visited.
func arrive(grid m.Grid, cell, target m.Cell, cameFrom m.Direction, overlay *m.Overlay) step {
	if cell == target {
		return stepFound
	}

	if !grid.InBounds(cell) || overlay.Visited(cell) {
		return stepDead
	}

	// The departed cell is marked, not cell itself.
	if cameFrom != m.NoDirection {
		overlay.Mark(cameFrom.Neighbor(cell))
	}

	if !grid.IsOpen(cell) {
		return stepDead
	}

	return stepExpand
}

// next returns the came-from tag and cell for the i-th neighbor of cell.
func next(cell m.Cell, i int) (m.Direction, m.Cell) {
	tag := exploreOrder[i]
	return tag, tag.Opposite().Neighbor(cell)
}

// recursiveSearcher uses one call frame per cell on the current path, so
// large open regions need a deep stack.
type recursiveSearcher struct{}

func (recursiveSearcher) HasPath(grid m.Grid, current, target m.Cell, cameFrom m.Direction, overlay *m.Overlay) bool {
	if !precheck(grid, current, target) {
		return false
	}

	return walk(grid, current, target, cameFrom, overlay)
}

func walk(grid m.Grid, cell, target m.Cell, cameFrom m.Direction, overlay *m.Overlay) bool {
	switch arrive(grid, cell, target, cameFrom, overlay) {
	case stepFound:
		return true
	case stepDead:
		return false
	case stepExpand:
	}

	back := cameFrom.Opposite()

	for i := range exploreOrder {
		tag, neighbor := next(cell, i)
		if tag == back {
			continue
		}

		if walk(grid, neighbor, target, tag, overlay) {
			return true
		}
	}

	return false
}

// iterativeSearcher keeps the depth-first path on an explicit stack and
// visits cells in the same order as recursiveSearcher.
type iterativeSearcher struct{}

type frame struct {
	cell     m.Cell
	cameFrom m.Direction
	next     int
}

func (iterativeSearcher) HasPath(grid m.Grid, current, target m.Cell, cameFrom m.Direction, overlay *m.Overlay) bool {
	if !precheck(grid, current, target) {
		return false
	}

	switch arrive(grid, current, target, cameFrom, overlay) {
	case stepFound:
		return true
	case stepDead:
		return false
	case stepExpand:
	}

	stack := []frame{{cell: current, cameFrom: cameFrom}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(exploreOrder) {
			stack = stack[:len(stack)-1]
			continue
		}

		tag, neighbor := next(top.cell, top.next)
		top.next++

		if tag == top.cameFrom.Opposite() {
			continue
		}

		switch arrive(grid, neighbor, target, tag, overlay) {
		case stepFound:
			return true
		case stepDead:
		case stepExpand:
			stack = append(stack, frame{cell: neighbor, cameFrom: tag})
		}
	}

	return false
}
