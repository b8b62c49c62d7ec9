// Package model defines the data structures for maze solving.
package model

import "fmt"

// CellState is the content of a single maze cell.
type CellState uint8

const (
	// Open cells can be walked through.
	Open CellState = iota
	// Blocked cells are walls.
	Blocked
)

func (s CellState) String() string {
	switch s {
	case Open:
		return "open"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Cell is a 0-indexed (row, col) coordinate. Row 0 is the top, col 0 the left.
type Cell struct {
	Row int
	Col int
}

// Step returns the cell reached by moving dr rows and dc columns.
func (c Cell) Step(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Position converts the cell to its 1-indexed exit record.
func (c Cell) Position() ExitRecord {
	return ExitRecord{Row: c.Row + 1, Col: c.Col + 1}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is an immutable rectangular maze.
type Grid struct {
	cells [][]CellState
	rows  int
	cols  int
}

// NewGrid deep-copies cells into a Grid.
// It returns ErrInvalidGrid when cells is empty or ragged.
func NewGrid(cells [][]CellState) (Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return Grid{}, fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidGrid)
	}

	cols := len(cells[0])
	copied := make([][]CellState, len(cells))

	for r, row := range cells {
		if len(row) != cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, r, len(row), cols)
		}

		copied[r] = append([]CellState(nil), row...)
	}

	return Grid{cells: copied, rows: len(cells), cols: cols}, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// Valid reports whether the grid was built through NewGrid.
func (g Grid) Valid() bool {
	return g.rows > 0 && g.cols > 0
}

// InBounds reports whether c lies inside the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the state of c. Cells outside the grid read as Blocked.
func (g Grid) At(c Cell) CellState {
	if !g.InBounds(c) {
		return Blocked
	}

	return g.cells[c.Row][c.Col]
}

// IsOpen reports whether c is inside the grid and open.
func (g Grid) IsOpen(c Cell) bool {
	return g.At(c) == Open
}

// OnBoundary reports whether c is an edge cell of the grid.
func (g Grid) OnBoundary(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}

	return c.Row == 0 || c.Row == g.rows-1 || c.Col == 0 || c.Col == g.cols-1
}

// OpenCells counts the open cells of the grid.
func (g Grid) OpenCells() int {
	count := 0

	for _, row := range g.cells {
		for _, state := range row {
			if state == Open {
				count++
			}
		}
	}

	return count
}
