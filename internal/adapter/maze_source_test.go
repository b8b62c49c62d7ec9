package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	m "amaze.dev/pkg/amaze/internal/model"
)

func examplePath(t *testing.T, name string) m.Path {
	t.Helper()

	path := filepath.Join("..", "..", "examples", name)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("example %s not found: %v", name, err)
	}

	return m.Path(path)
}

func writeMaze(t *testing.T, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "maze.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write maze: %v", err)
	}

	return m.Path(path)
}

func TestLocalMazeSource_ValidateFilename(t *testing.T) {
	source := NewLocalMazeSource()

	tests := []struct {
		name  string
		valid bool
	}{
		{"maze.txt", true},
		{"a.txt", true},
		{"dir/maze.txt", true},
		{".txt", false},
		{"txt", false},
		{"", false},
		{"maze.md", false},
		{"maze.txt.bak", false},
		{"maze.TXT", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := source.ValidateFilename(tt.name)
			if tt.valid && err != nil {
				t.Fatalf("ValidateFilename(%q) error = %v", tt.name, err)
			}

			if !tt.valid && !errors.Is(err, m.ErrInvalidFilename) {
				t.Fatalf("ValidateFilename(%q) error = %v, want ErrInvalidFilename", tt.name, err)
			}
		})
	}
}

func TestParseMaze(t *testing.T) {
	maze, err := ParseMaze([]byte("3 4\n#  #\r\n#\n"))
	if err != nil {
		t.Fatalf("ParseMaze() error = %v", err)
	}

	if maze.Grid.Rows() != 3 || maze.Grid.Cols() != 4 {
		t.Fatalf("ParseMaze() size = %dx%d, want 3x4", maze.Grid.Rows(), maze.Grid.Cols())
	}

	want := [][]m.CellState{
		{m.Blocked, m.Open, m.Open, m.Blocked},
		{m.Blocked, m.Open, m.Open, m.Open},
		{m.Open, m.Open, m.Open, m.Open},
	}

	for r, row := range want {
		for c, state := range row {
			if got := maze.Grid.At(m.Cell{Row: r, Col: c}); got != state {
				t.Errorf("cell (%d,%d) = %s, want %s", r, c, got, state)
			}
		}
	}

	if len(maze.Lines) != 2 || maze.Lines[0] != "#  #" {
		t.Errorf("ParseMaze() lines = %q, want the two rows without carriage returns", maze.Lines)
	}
}

func TestParseMaze_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"empty", "", m.ErrInvalidDimensions},
		{"one number", "3\n###\n", m.ErrInvalidDimensions},
		{"not a number", "three 3\n", m.ErrInvalidDimensions},
		{"zero rows", "0 3\n", m.ErrInvalidDimensions},
		{"negative cols", "2 -1\n", m.ErrInvalidDimensions},
		{"row too long", "2 2\n###\n##\n", m.ErrInvalidGrid},
		{"too many rows", "1 2\n##\n##\n", m.ErrInvalidGrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseMaze([]byte(tt.content)); !errors.Is(err, tt.want) {
				t.Fatalf("ParseMaze() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseMaze_IgnoresTrailingBlankLines(t *testing.T) {
	maze, err := ParseMaze([]byte("1 3\n# #\n\n  \n"))
	if err != nil {
		t.Fatalf("ParseMaze() error = %v", err)
	}

	if maze.Grid.OpenCells() != 1 {
		t.Fatalf("OpenCells() = %d, want 1", maze.Grid.OpenCells())
	}
}

func TestParseDimensions(t *testing.T) {
	rows, cols, err := ParseDimensions("  7\t9 extra")
	if err != nil {
		t.Fatalf("ParseDimensions() error = %v", err)
	}

	if rows != 7 || cols != 9 {
		t.Fatalf("ParseDimensions() = %d,%d, want 7,9", rows, cols)
	}
}

func TestLocalMazeSource_Load(t *testing.T) {
	source := NewLocalMazeSource()

	t.Run("example maze", func(t *testing.T) {
		path := examplePath(t, "sample.txt")

		maze, err := source.Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if maze.Name != path {
			t.Errorf("Load() name = %s, want %s", maze.Name, path)
		}

		if maze.Grid.Rows() != 7 || maze.Grid.Cols() != 9 {
			t.Errorf("Load() size = %dx%d, want 7x9", maze.Grid.Rows(), maze.Grid.Cols())
		}

		if len(maze.Lines) != 7 {
			t.Errorf("Load() lines = %d, want 7", len(maze.Lines))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := source.Load(m.Path(filepath.Join(t.TempDir(), "nope.txt")))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("Load() error = %v, want not exist", err)
		}
	})

	t.Run("invalid content", func(t *testing.T) {
		_, err := source.Load(writeMaze(t, "x y\n"))
		if !errors.Is(err, m.ErrInvalidDimensions) {
			t.Fatalf("Load() error = %v, want ErrInvalidDimensions", err)
		}
	})
}

func TestLocalMazeSource_Stat(t *testing.T) {
	source := NewLocalMazeSource()

	stat, err := source.Stat(examplePath(t, "sample.txt"))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}

	if stat.Rows != 7 || stat.Cols != 9 || stat.OpenCells != 28 {
		t.Fatalf("Stat() = %+v, want 7x9 with 28 open cells", stat)
	}

	stat, err = source.Stat(writeMaze(t, "2 2\n###\n"))
	if err == nil || stat.Err == nil {
		t.Fatalf("Stat() expected error for invalid maze, got %+v", stat)
	}
}
