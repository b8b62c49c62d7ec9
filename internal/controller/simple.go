package controller

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "amaze.dev/pkg/amaze/internal/model"
)

const (
	greeting        = "Hello! Welcome to the A-MAZE-ING Maze Solver!"
	farewell        = "Bye! Have an A-MAZE-ING day! n_n"
	unsolvableLabel = "Unsolvable!"
)

// ErrNoInput is returned when the input stream ends before a valid filename.
var ErrNoInput = errors.New("no filename entered")

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd    *cobra.Command
	reader *bufio.Reader
	mode   StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start greets the user when solving.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mode = applyStartOptions(options).mode
	if s.mode == ModeSolve {
		s.printf("\n%s\n", greeting)
	}

	return nil
}

// Close says goodbye after solving.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	if s.mode == ModeSolve {
		s.printf("\n%s\n", farewell)
	}
}

// PromptFilename asks for a filename until validate accepts one.
func (s *SimpleUI) PromptFilename(ctx context.Context, validate func(string) error) (string, error) {
	if s.reader == nil {
		s.reader = bufio.NewReader(s.cmd.InOrStdin())
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		s.printf("Please enter the maze filename: \n")

		line, err := s.reader.ReadString('\n')
		name := strings.TrimSpace(line)

		if name != "" && validate(name) == nil {
			s.printf("\nYou entered: %s\n", name)
			return name, nil
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrNoInput
			}

			return "", err
		}

		s.printf("\nPlease check the filename and try again!\n")
	}
}

// DisplayMaze echoes the maze text.
func (s *SimpleUI) DisplayMaze(ctx context.Context, maze m.Maze) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\nPrepare to be A-MAZED...\n\n")

	for _, line := range maze.Lines {
		s.printf("%s\n", line)
	}
}

// DisplaySolution prints the exit count and positions, or Unsolvable!.
func (s *SimpleUI) DisplaySolution(ctx context.Context, _ m.Maze, _ m.Cell, solution m.Solution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !solution.Solved() {
		s.printf("\n%s\n", unsolvableLabel)
		return nil
	}

	s.printf("\n%s\n", foundExitsLine(solution))
	s.printf("%s", renderExitsTable(solution))

	return nil
}

// DisplayMazeError reports a maze that could not be read or solved.
func (s *SimpleUI) DisplayMazeError(ctx context.Context, path m.Path, err error) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\nSorry, we hit a roadblock with %s: %v\nPlease check the filename and try again.\n", path, err)
}

// DisplayStats prints a table of maze sizes.
func (s *SimpleUI) DisplayStats(ctx context.Context, stats []m.MazeStat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderStatsTable(stats))

	return nil
}

// DisplayReports prints a table of saved reports.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		s.printf("No reports found\n")
		return nil
	}

	s.printf("\n%s", renderReportsTable(reports))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func foundExitsLine(solution m.Solution) string {
	return fmt.Sprintf("Found %d exit(s) at the following positions:", solution.Count)
}

func renderExitsTable(solution m.Solution) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Row", "Col"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	for _, exit := range solution.Exits {
		table.Append([]string{fmt.Sprintf("%d", exit.Row), fmt.Sprintf("%d", exit.Col)})
	}

	table.Render()

	return tableBuffer.String()
}

func renderStatsTable(stats []m.MazeStat) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Maze", "Rows", "Cols", "Open"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	valid := 0

	for _, stat := range stats {
		if stat.Err != nil {
			table.Append([]string{string(stat.Name), "-", "-", stat.Err.Error()})
			continue
		}

		valid++

		table.Append([]string{
			string(stat.Name),
			fmt.Sprintf("%d", stat.Rows),
			fmt.Sprintf("%d", stat.Cols),
			fmt.Sprintf("%d", stat.OpenCells),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Mazes %d", valid), "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func renderReportsTable(reports []m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Maze", "Size", "Entrance", "Overlay", "Exits", "Positions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, report := range reports {
		positions := make([]string, 0, len(report.Solution.Exits))
		for _, exit := range report.Solution.Exits {
			positions = append(positions, "("+exit.String()+")")
		}

		table.Append([]string{
			string(report.Maze),
			fmt.Sprintf("%dx%d", report.Rows, report.Cols),
			report.Entrance.String(),
			string(report.Overlay),
			fmt.Sprintf("%d", report.Solution.Count),
			strings.Join(positions, " "),
		})
	}

	table.Render()

	return tableBuffer.String()
}
