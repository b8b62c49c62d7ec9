package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"amaze.dev/pkg/amaze/internal/adapter"
	"amaze.dev/pkg/amaze/internal/controller"
	m "amaze.dev/pkg/amaze/internal/model"
)

// SolveArgs contains the arguments for solving mazes.
type SolveArgs struct {
	Paths    []m.Path
	Entrance m.Cell
	Options  ScanOptions
	Threads  int
	Save     bool
	Reports  m.Path
}

// ListArgs contains the arguments for listing mazes.
type ListArgs struct {
	Paths []m.Path
}

// ViewArgs contains the arguments for viewing saved reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the use cases exposed to the CLI.
type Workflow interface {
	Solve(ctx context.Context, args SolveArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.MazeSource
	adapter.ReportStore
	controller.UI
	now func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	source adapter.MazeSource,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		MazeSource:  source,
		ReportStore: reportStore,
		UI:          ui,
		now:         time.Now,
	}
}

// solved is the outcome of one maze of a Solve call.
type solved struct {
	maze     m.Maze
	solution m.Solution
	err      error
}

func (w *workflow) Solve(ctx context.Context, args SolveArgs) error {
	if err := w.Start(ctx, controller.WithSolveMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	paths := args.Paths
	if len(paths) == 0 {
		name, err := w.PromptFilename(ctx, w.ValidateFilename)
		if err != nil {
			return fmt.Errorf("prompt filename: %w", err)
		}

		paths = []m.Path{m.Path(name)}
	}

	results, err := w.solveAll(ctx, paths, args)
	if err != nil {
		return err
	}

	var errs []error

	for i, result := range results {
		if result.err != nil {
			w.DisplayMazeError(ctx, paths[i], result.err)
			errs = append(errs, fmt.Errorf("%s: %w", paths[i], result.err))

			continue
		}

		w.DisplayMaze(ctx, result.maze)

		if err := w.DisplaySolution(ctx, result.maze, args.Entrance, result.solution); err != nil {
			return fmt.Errorf("display solution: %w", err)
		}

		if args.Save {
			if err := w.saveReport(args, result); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

// solveAll scans every maze, at most threads at a time. Results keep the
// order of paths.
func (w *workflow) solveAll(ctx context.Context, paths []m.Path, args SolveArgs) ([]solved, error) {
	results := make([]solved, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	for i, path := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			results[i] = w.solveOne(path, args)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (w *workflow) solveOne(path m.Path, args SolveArgs) solved {
	if err := w.ValidateFilename(string(path)); err != nil {
		return solved{err: err}
	}

	maze, err := w.Load(path)
	if err != nil {
		return solved{err: err}
	}

	solution, err := NewScanner(args.Options).FindExits(maze.Grid, args.Entrance)
	if err != nil {
		return solved{maze: maze, err: err}
	}

	slog.Info("maze solved", "path", path, "exits", solution.Count)

	return solved{maze: maze, solution: solution}
}

func (w *workflow) saveReport(args SolveArgs, result solved) error {
	report := m.Report{
		ID:       uuid.NewString(),
		Maze:     result.maze.Name,
		Rows:     result.maze.Grid.Rows(),
		Cols:     result.maze.Grid.Cols(),
		Entrance: args.Entrance.Position(),
		Overlay:  args.Options.Overlay,
		Strategy: args.Options.Strategy,
		Solution: result.solution,
		SolvedAt: w.now().UTC(),
	}

	if _, err := w.SaveReport(args.Reports, report); err != nil {
		return fmt.Errorf("save report for %s: %w", result.maze.Name, err)
	}

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	stats := make([]m.MazeStat, 0, len(args.Paths))

	for _, path := range args.Paths {
		if err := w.ValidateFilename(string(path)); err != nil {
			stats = append(stats, m.MazeStat{Name: path, Err: err})
			continue
		}

		stat, err := w.Stat(path)
		if err != nil {
			slog.Warn("failed to stat maze", "path", path, "error", err)
		}

		stats = append(stats, stat)
	}

	return w.DisplayStats(ctx, stats)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	reports, err := w.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	return w.DisplayReports(ctx, reports)
}
