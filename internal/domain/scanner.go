package domain

import (
	"fmt"
	"log/slog"

	m "amaze.dev/pkg/amaze/internal/model"
)

// ScanOptions configures an exit scan.
type ScanOptions struct {
	Overlay  m.OverlayMode
	Strategy m.SearchStrategy
}

// DefaultScanOptions resets the overlay per search and walks iteratively.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{Overlay: m.OverlayPerSearch, Strategy: m.StrategyIterative}
}

// Scanner enumerates the exits of a maze.
type Scanner interface {
	FindExits(grid m.Grid, entrance m.Cell) (m.Solution, error)
}

type scanner struct {
	searcher Searcher
	overlay  m.OverlayMode
}

// NewScanner builds a Scanner from opts.
func NewScanner(opts ScanOptions) Scanner {
	return &scanner{
		searcher: NewSearcher(opts.Strategy),
		overlay:  opts.Overlay,
	}
}

// NewScannerWithSearcher builds a Scanner around a custom Searcher.
func NewScannerWithSearcher(searcher Searcher, overlay m.OverlayMode) Scanner {
	return &scanner{searcher: searcher, overlay: overlay}
}

// FindExits runs one search from entrance to every open boundary cell and
// collects the reachable ones in scan order: top row, bottom row, then the
// first and last column of each interior row.
func (s *scanner) FindExits(grid m.Grid, entrance m.Cell) (m.Solution, error) {
	if !grid.Valid() {
		return m.Solution{}, fmt.Errorf("%w: grid is empty", m.ErrInvalidGrid)
	}

	if !grid.InBounds(entrance) {
		return m.Solution{}, fmt.Errorf("%w: entrance %s outside %dx%d grid",
			m.ErrInvalidCoordinate, entrance, grid.Rows(), grid.Cols())
	}

	cameFrom := EntryDirection(grid, entrance)
	shared := m.NewOverlay(grid)
	solution := m.Solution{Exits: []m.ExitRecord{}}

	for _, candidate := range BoundaryCells(grid) {
		if candidate == entrance || !grid.IsOpen(candidate) {
			continue
		}

		overlay := shared
		if s.overlay != m.OverlayShared {
			overlay = m.NewOverlay(grid)
		}

		if !s.searcher.HasPath(grid, entrance, candidate, cameFrom, overlay) {
			slog.Debug("boundary cell unreachable", "cell", candidate.String())
			continue
		}

		solution.Exits = append(solution.Exits, candidate.Position())
	}

	solution.Count = len(solution.Exits)

	slog.Info("scan completed",
		"rows", grid.Rows(), "cols", grid.Cols(),
		"entrance", entrance.String(),
		"overlay", string(s.overlay),
		"exits", solution.Count,
	)

	return solution, nil
}

// BoundaryCells lists the edge cells of grid once each, in scan order.
func BoundaryCells(grid m.Grid) []m.Cell {
	rows, cols := grid.Rows(), grid.Cols()
	if rows == 0 || cols == 0 {
		return nil
	}

	cells := make([]m.Cell, 0, 2*rows+2*cols)

	for col := range cols {
		cells = append(cells, m.Cell{Row: 0, Col: col})
	}

	if rows > 1 {
		for col := range cols {
			cells = append(cells, m.Cell{Row: rows - 1, Col: col})
		}
	}

	for row := 1; row < rows-1; row++ {
		cells = append(cells, m.Cell{Row: row, Col: 0})
		if cols > 1 {
			cells = append(cells, m.Cell{Row: row, Col: cols - 1})
		}
	}

	return cells
}
