package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "amaze.dev/pkg/amaze/internal/model"
)

const (
	wallGlyph     = "#"
	openGlyph     = " "
	exitGlyph     = "E"
	entranceGlyph = "S"

	// Header box (3) + blank + summary block + footer help.
	reservedLines = 8
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	wallStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	exitStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	entranceStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	failStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
	boxStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 2)
)

// TUI implements UI with styled output; mazes taller than the terminal
// open in a scrollable Bubble Tea viewport.
type TUI struct {
	*SimpleUI
	output io.Writer
	height int
	width  int
}

// NewTUI creates a new TUI writing to cmd's output.
func NewTUI(cmd *cobra.Command) *TUI {
	t := &TUI{SimpleUI: NewSimpleUI(cmd), output: cmd.OutOrStdout()}

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			t.width, t.height = width, height
		}
	}

	return t
}

// Start greets the user with a styled banner when solving.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mode = applyStartOptions(options).mode
	if t.mode == ModeSolve {
		_, _ = fmt.Fprintln(t.output, boxStyle.Render(titleStyle.Render(greeting)))
	}

	return nil
}

// DisplayMaze is a no-op; the maze is drawn with its solution.
func (t *TUI) DisplayMaze(_ context.Context, _ m.Maze) {}

// DisplaySolution draws the maze with entrance and exits highlighted.
func (t *TUI) DisplaySolution(ctx context.Context, maze m.Maze, entrance m.Cell, solution m.Solution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newSolutionModel(maze, entrance, solution)
	model.width, model.height = t.width, t.height

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayMazeError reports a failed maze in the error style.
func (t *TUI) DisplayMazeError(ctx context.Context, path m.Path, err error) {
	if ctx.Err() != nil {
		return
	}

	_, _ = fmt.Fprintf(t.output, "\n%s %s: %v\n", failStyle.Render("✗"), path, err)
}

// solutionModel is the Bubble Tea model for one solved maze.
type solutionModel struct {
	title    string
	summary  []string
	rows     []string
	viewport viewport.Model
	ready    bool
	height   int
	width    int
	quitting bool
}

func newSolutionModel(maze m.Maze, entrance m.Cell, solution m.Solution) solutionModel {
	return solutionModel{
		title:   fmt.Sprintf("%s (%dx%d)", maze.Name, maze.Grid.Rows(), maze.Grid.Cols()),
		summary: summaryLines(solution),
		rows:    renderGrid(maze.Grid, entrance, solution),
	}
}

func summaryLines(solution m.Solution) []string {
	if !solution.Solved() {
		return []string{failStyle.Render(unsolvableLabel)}
	}

	positions := make([]string, 0, len(solution.Exits))
	for _, exit := range solution.Exits {
		positions = append(positions, "("+exit.String()+")")
	}

	return []string{
		exitStyle.Render(foundExitsLine(solution)),
		"  " + strings.Join(positions, " "),
	}
}

// renderGrid draws each grid row, marking the entrance and exits.
func renderGrid(grid m.Grid, entrance m.Cell, solution m.Solution) []string {
	exits := make(map[m.Cell]bool, len(solution.Exits))
	for _, exit := range solution.Exits {
		exits[exit.Cell()] = true
	}

	rows := make([]string, 0, grid.Rows())

	for r := range grid.Rows() {
		var b strings.Builder

		for c := range grid.Cols() {
			cell := m.Cell{Row: r, Col: c}

			switch {
			case cell == entrance:
				b.WriteString(entranceStyle.Render(entranceGlyph))
			case exits[cell]:
				b.WriteString(exitStyle.Render(exitGlyph))
			case grid.IsOpen(cell):
				b.WriteString(openGlyph)
			default:
				b.WriteString(wallStyle.Render(wallGlyph))
			}
		}

		rows = append(rows, b.String())
	}

	return rows
}

func (sm solutionModel) Init() tea.Cmd {
	return nil
}

func (sm solutionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width, sm.height = msg.Width, msg.Height

		if !sm.ready {
			sm.viewport = viewport.New(msg.Width, sm.viewportHeight())
			sm.viewport.SetContent(strings.Join(sm.rows, "\n"))
			sm.ready = true
		} else {
			sm.viewport.Width = msg.Width
			sm.viewport.Height = sm.viewportHeight()
		}

		return sm, nil

	case tea.KeyMsg:
		//nolint:exhaustive // Only quit keys are handled here.
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			sm.quitting = true
			return sm, tea.Quit
		default:
		}

		if msg.String() == "q" {
			sm.quitting = true
			return sm, tea.Quit
		}
	}

	var cmd tea.Cmd

	sm.viewport, cmd = sm.viewport.Update(msg)

	return sm, cmd
}

func (sm solutionModel) viewportHeight() int {
	available := sm.height - reservedLines - len(sm.summary)
	if available < 1 {
		return 1
	}

	return available
}

// needsPagination reports whether the maze is taller than the terminal.
func (sm solutionModel) needsPagination() bool {
	if sm.height == 0 {
		return false
	}

	return len(sm.rows) > sm.viewportHeight()
}

func (sm solutionModel) View() string {
	if sm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n" + titleStyle.Render(sm.title) + "\n\n")

	if sm.ready {
		b.WriteString(sm.viewport.View())
	} else {
		b.WriteString(strings.Join(sm.rows, "\n"))
	}

	b.WriteString("\n\n")

	for _, line := range sm.summary {
		b.WriteString(line + "\n")
	}

	if sm.ready {
		fmt.Fprintf(&b, "\n%s\n", helpStyle.Render(fmt.Sprintf(
			"%3.f%% | ↑/k: up | ↓/j: down | pgup/pgdown | q: quit", sm.viewport.ScrollPercent()*100)))
	}

	return b.String()
}
