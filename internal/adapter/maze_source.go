// Package adapter contains infrastructure adapters for the amaze CLI.
package adapter

import (
	"bufio"
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	m "amaze.dev/pkg/amaze/internal/model"
)

const (
	mazeFileExt = ".txt"
	wallRune    = '#'
)

// MazeSource loads maze files from storage so the domain layer never
// touches the disk directly.
type MazeSource interface {
	// ValidateFilename checks that name looks like a maze text file.
	ValidateFilename(name string) error

	// Load reads and parses the maze at path.
	Load(path m.Path) (m.Maze, error)

	// Stat summarises the maze at path without solving it.
	Stat(path m.Path) (m.MazeStat, error)
}

// LocalMazeSource reads maze files from the local filesystem.
type LocalMazeSource struct{}

// NewLocalMazeSource constructs a LocalMazeSource.
func NewLocalMazeSource() *LocalMazeSource {
	return &LocalMazeSource{}
}

// ValidateFilename requires more than four characters and a .txt suffix.
func (a *LocalMazeSource) ValidateFilename(name string) error {
	if len(name) > len(mazeFileExt) && strings.HasSuffix(name, mazeFileExt) {
		return nil
	}

	return fmt.Errorf("%w: %q must end with %s", m.ErrInvalidFilename, name, mazeFileExt)
}

// Load reads the file at path and parses it with ParseMaze.
func (a *LocalMazeSource) Load(path m.Path) (m.Maze, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		slog.Error("failed to read maze", "path", path, "error", err)
		return m.Maze{}, fmt.Errorf("read maze %s: %w", path, err)
	}

	maze, err := ParseMaze(content)
	if err != nil {
		return m.Maze{}, fmt.Errorf("parse maze %s: %w", path, err)
	}

	maze.Name = path
	slog.Debug("loaded maze", "path", path, "rows", maze.Grid.Rows(), "cols", maze.Grid.Cols())

	return maze, nil
}

// Stat loads the maze at path and reports its size and open area.
func (a *LocalMazeSource) Stat(path m.Path) (m.MazeStat, error) {
	maze, err := a.Load(path)
	if err != nil {
		return m.MazeStat{Name: path, Err: err}, err
	}

	return m.MazeStat{
		Name:      path,
		Rows:      maze.Grid.Rows(),
		Cols:      maze.Grid.Cols(),
		OpenCells: maze.Grid.OpenCells(),
	}, nil
}

// ParseMaze parses maze text. The first line holds "rows cols"; each
// following line is one row where '#' is a wall and anything else is open.
// Short or missing rows are padded with open cells.
func ParseMaze(content []byte) (m.Maze, error) {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), len(content)+1)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return m.Maze{}, err
		}

		return m.Maze{}, fmt.Errorf("%w: missing dimensions line", m.ErrInvalidDimensions)
	}

	rows, cols, err := ParseDimensions(scanner.Text())
	if err != nil {
		return m.Maze{}, err
	}

	cells := make([][]m.CellState, rows)
	for r := range cells {
		cells[r] = make([]m.CellState, cols)
	}

	lines := make([]string, 0, rows)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(lines) == rows {
			if strings.TrimSpace(line) == "" {
				continue
			}

			return m.Maze{}, fmt.Errorf("%w: more than %d rows", m.ErrInvalidGrid, rows)
		}

		if err := translateRow(cells[len(lines)], line); err != nil {
			return m.Maze{}, fmt.Errorf("row %d: %w", len(lines)+1, err)
		}

		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return m.Maze{}, err
	}

	if len(lines) < rows {
		slog.Warn("maze has fewer rows than declared, padding with open cells", "declared", rows, "found", len(lines))
	}

	grid, err := m.NewGrid(cells)
	if err != nil {
		return m.Maze{}, err
	}

	return m.Maze{Lines: lines, Grid: grid}, nil
}

// ParseDimensions reads the leading "rows cols" pair of a maze file.
func ParseDimensions(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: %q needs rows and cols", m.ErrInvalidDimensions, line)
	}

	rows, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: rows %q: %w", m.ErrInvalidDimensions, fields[0], err)
	}

	cols, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: cols %q: %w", m.ErrInvalidDimensions, fields[1], err)
	}

	if rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("%w: %dx%d", m.ErrInvalidDimensions, rows, cols)
	}

	return rows, cols, nil
}

func translateRow(row []m.CellState, line string) error {
	runes := []rune(line)
	if len(runes) > len(row) {
		return fmt.Errorf("%w: %d cells, want at most %d", m.ErrInvalidGrid, len(runes), len(row))
	}

	for i, r := range runes {
		if r == wallRune {
			row[i] = m.Blocked
		}
	}

	return nil
}
