package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "amaze.dev/pkg/amaze/internal/model"
)

// gridFromRows builds a grid where '#' is blocked and anything else open.
func gridFromRows(t *testing.T, rows ...string) m.Grid {
	t.Helper()

	cells := make([][]m.CellState, len(rows))
	for r, row := range rows {
		cells[r] = make([]m.CellState, len(row))
		for c, ch := range row {
			if ch == '#' {
				cells[r][c] = m.Blocked
			}
		}
	}

	grid, err := m.NewGrid(cells)
	require.NoError(t, err)

	return grid
}

func visitedCells(grid m.Grid, overlay *m.Overlay) []m.Cell {
	var cells []m.Cell

	for r := range grid.Rows() {
		for c := range grid.Cols() {
			cell := m.Cell{Row: r, Col: c}
			if overlay.Visited(cell) {
				cells = append(cells, cell)
			}
		}
	}

	return cells
}

var strategies = []m.SearchStrategy{m.StrategyIterative, m.StrategyRecursive}
