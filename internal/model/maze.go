package model

import "time"

// Path represents a file system path.
type Path string

// OverlayMode selects how visited marks are kept across searches of one scan.
type OverlayMode string

const (
	// OverlayPerSearch gives every candidate search a fresh overlay.
	OverlayPerSearch OverlayMode = "per-search"
	// OverlayShared reuses one overlay for the whole scan.
	// Marks left by earlier searches block later ones, so exits are undercounted.
	OverlayShared OverlayMode = "shared"
)

// SearchStrategy selects how the depth-first search is executed.
type SearchStrategy string

const (
	// StrategyIterative walks the grid with an explicit stack.
	StrategyIterative SearchStrategy = "iterative"
	// StrategyRecursive walks the grid with nested calls.
	// Its call depth grows with the open area of the maze.
	StrategyRecursive SearchStrategy = "recursive"
)

// Maze is a parsed maze file.
type Maze struct {
	Name  Path
	Lines []string
	Grid  Grid
}

// MazeStat summarises a maze file for listing.
type MazeStat struct {
	Name      Path
	Rows      int
	Cols      int
	OpenCells int
	Err       error
}

// Report is the persisted result of solving one maze.
type Report struct {
	ID       string         `yaml:"id"`
	Maze     Path           `yaml:"maze"`
	Rows     int            `yaml:"rows"`
	Cols     int            `yaml:"cols"`
	Entrance ExitRecord     `yaml:"entrance"`
	Overlay  OverlayMode    `yaml:"overlay"`
	Strategy SearchStrategy `yaml:"strategy"`
	Solution Solution       `yaml:"solution"`
	SolvedAt time.Time      `yaml:"solved_at"`
}
