// Package controller provides output adapters for displaying maze results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "amaze.dev/pkg/amaze/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSolve StartMode = iota
	ModeList
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithSolveMode sets the UI to solve mode.
func WithSolveMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSolve
	}
}

// WithListMode sets the UI to listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithViewMode sets the UI to report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func applyStartOptions(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeSolve}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how the workflows talk to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	PromptFilename(ctx context.Context, validate func(string) error) (string, error)
	DisplayMaze(ctx context.Context, maze m.Maze)
	DisplaySolution(ctx context.Context, maze m.Maze, entrance m.Cell, solution m.Solution) error
	DisplayMazeError(ctx context.Context, path m.Path, err error)
	DisplayStats(ctx context.Context, stats []m.MazeStat) error
	DisplayReports(ctx context.Context, reports []m.Report) error
}

// NewUI returns a TUI when useTTY is set and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
