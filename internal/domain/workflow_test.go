package domain_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"amaze.dev/pkg/amaze/internal/adapter"
	adaptermocks "amaze.dev/pkg/amaze/internal/adapter/mocks"
	controllermocks "amaze.dev/pkg/amaze/internal/controller/mocks"
	"amaze.dev/pkg/amaze/internal/domain"
	m "amaze.dev/pkg/amaze/internal/model"
)

var entrance = m.Cell{Row: 0, Col: 1}

func corridorMaze(t *testing.T, name m.Path) m.Maze {
	t.Helper()

	lines := []string{"# #", "# #", "# #"}

	return m.Maze{Name: name, Lines: lines, Grid: gridFromRows(t, lines...)}
}

func expectSession(ui *controllermocks.MockUI) {
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	ui.EXPECT().Close(mock.Anything).Return().Once()
}

func TestWorkflow_Solve_DisplaysSolution(t *testing.T) {
	source := adaptermocks.NewMockMazeSource(t)
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	maze := corridorMaze(t, "corridor.txt")

	expectSession(ui)
	source.EXPECT().ValidateFilename("corridor.txt").Return(nil).Once()
	source.EXPECT().Load(m.Path("corridor.txt")).Return(maze, nil).Once()
	ui.EXPECT().DisplayMaze(mock.Anything, maze).Return().Once()
	ui.EXPECT().DisplaySolution(mock.Anything, maze, entrance, m.Solution{
		Count: 1,
		Exits: []m.ExitRecord{{Row: 3, Col: 2}},
	}).Return(nil).Once()

	wf := domain.NewWorkflow(source, store, ui)
	err := wf.Solve(context.Background(), domain.SolveArgs{
		Paths:    []m.Path{"corridor.txt"},
		Entrance: entrance,
		Options:  domain.DefaultScanOptions(),
		Threads:  1,
	})

	require.NoError(t, err)
}

func TestWorkflow_Solve_SavesReport(t *testing.T) {
	source := adaptermocks.NewMockMazeSource(t)
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	maze := corridorMaze(t, "corridor.txt")
	opts := domain.ScanOptions{Overlay: m.OverlayShared, Strategy: m.StrategyRecursive}

	expectSession(ui)
	source.EXPECT().ValidateFilename(mock.Anything).Return(nil)
	source.EXPECT().Load(mock.Anything).Return(maze, nil)
	ui.EXPECT().DisplayMaze(mock.Anything, mock.Anything).Return()
	ui.EXPECT().DisplaySolution(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	store.EXPECT().SaveReport(m.Path("reports"), mock.MatchedBy(func(r m.Report) bool {
		_, idErr := uuid.Parse(r.ID)

		return idErr == nil &&
			r.Maze == "corridor.txt" &&
			r.Rows == 3 && r.Cols == 3 &&
			r.Entrance == (m.ExitRecord{Row: 1, Col: 2}) &&
			r.Overlay == m.OverlayShared &&
			r.Strategy == m.StrategyRecursive &&
			r.Solution.Count == 1 &&
			!r.SolvedAt.IsZero()
	})).Return("reports/corridor.yaml", nil).Once()

	wf := domain.NewWorkflow(source, store, ui)
	err := wf.Solve(context.Background(), domain.SolveArgs{
		Paths:    []m.Path{"corridor.txt"},
		Entrance: entrance,
		Options:  opts,
		Save:     true,
		Reports:  "reports",
	})

	require.NoError(t, err)
}

func TestWorkflow_Solve_JoinsPerFileErrors(t *testing.T) {
	source := adaptermocks.NewMockMazeSource(t)
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	maze := corridorMaze(t, "good.txt")
	loadErr := errors.New("disk on fire")

	expectSession(ui)
	source.EXPECT().ValidateFilename("bad.md").Return(m.ErrInvalidFilename).Once()
	source.EXPECT().ValidateFilename("missing.txt").Return(nil).Once()
	source.EXPECT().ValidateFilename("good.txt").Return(nil).Once()
	source.EXPECT().Load(m.Path("missing.txt")).Return(m.Maze{}, loadErr).Once()
	source.EXPECT().Load(m.Path("good.txt")).Return(maze, nil).Once()
	ui.EXPECT().DisplayMazeError(mock.Anything, m.Path("bad.md"), m.ErrInvalidFilename).Return().Once()
	ui.EXPECT().DisplayMazeError(mock.Anything, m.Path("missing.txt"), loadErr).Return().Once()
	ui.EXPECT().DisplayMaze(mock.Anything, maze).Return().Once()
	ui.EXPECT().DisplaySolution(mock.Anything, maze, entrance, mock.Anything).Return(nil).Once()

	wf := domain.NewWorkflow(source, store, ui)
	err := wf.Solve(context.Background(), domain.SolveArgs{
		Paths:    []m.Path{"bad.md", "missing.txt", "good.txt"},
		Entrance: entrance,
		Options:  domain.DefaultScanOptions(),
		Threads:  2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrInvalidFilename)
	assert.ErrorIs(t, err, loadErr)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestWorkflow_Solve_ReportsEntranceOutsideGrid(t *testing.T) {
	source := adaptermocks.NewMockMazeSource(t)
	ui := controllermocks.NewMockUI(t)

	maze := corridorMaze(t, "corridor.txt")

	expectSession(ui)
	source.EXPECT().ValidateFilename(mock.Anything).Return(nil)
	source.EXPECT().Load(mock.Anything).Return(maze, nil)
	ui.EXPECT().DisplayMazeError(mock.Anything, m.Path("corridor.txt"), mock.Anything).Return().Once()

	wf := domain.NewWorkflow(source, adaptermocks.NewMockReportStore(t), ui)
	err := wf.Solve(context.Background(), domain.SolveArgs{
		Paths:    []m.Path{"corridor.txt"},
		Entrance: m.Cell{Row: 9, Col: 9},
		Options:  domain.DefaultScanOptions(),
	})

	require.ErrorIs(t, err, m.ErrInvalidCoordinate)
}

func TestWorkflow_Solve_PromptsWhenNoPaths(t *testing.T) {
	source := adaptermocks.NewMockMazeSource(t)
	ui := controllermocks.NewMockUI(t)

	maze := corridorMaze(t, "typed.txt")

	expectSession(ui)
	ui.EXPECT().PromptFilename(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, validate func(string) error) (string, error) {
			require.NoError(t, validate("typed.txt"))

			return "typed.txt", nil
		}).Once()
	source.EXPECT().ValidateFilename("typed.txt").Return(nil)
	source.EXPECT().Load(m.Path("typed.txt")).Return(maze, nil).Once()
	ui.EXPECT().DisplayMaze(mock.Anything, maze).Return().Once()
	ui.EXPECT().DisplaySolution(mock.Anything, maze, entrance, mock.Anything).Return(nil).Once()

	wf := domain.NewWorkflow(source, adaptermocks.NewMockReportStore(t), ui)
	err := wf.Solve(context.Background(), domain.SolveArgs{
		Entrance: entrance,
		Options:  domain.DefaultScanOptions(),
	})

	require.NoError(t, err)
}

func TestWorkflow_Solve_PromptError(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	promptErr := errors.New("eof")

	expectSession(ui)
	ui.EXPECT().PromptFilename(mock.Anything, mock.Anything).Return("", promptErr).Once()

	wf := domain.NewWorkflow(adaptermocks.NewMockMazeSource(t), adaptermocks.NewMockReportStore(t), ui)
	err := wf.Solve(context.Background(), domain.SolveArgs{Entrance: entrance})

	require.ErrorIs(t, err, promptErr)
}

func TestWorkflow_Solve_StartError(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	startErr := errors.New("no terminal")

	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(startErr).Once()

	wf := domain.NewWorkflow(adaptermocks.NewMockMazeSource(t), adaptermocks.NewMockReportStore(t), ui)
	err := wf.Solve(context.Background(), domain.SolveArgs{Paths: []m.Path{"a.txt"}})

	require.ErrorIs(t, err, startErr)
}

func TestWorkflow_Solve_KeepsInputOrderAcrossThreads(t *testing.T) {
	source := adaptermocks.NewMockMazeSource(t)
	ui := controllermocks.NewMockUI(t)

	paths := []m.Path{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"}

	var (
		mu        sync.Mutex
		displayed []m.Path
	)

	expectSession(ui)
	source.EXPECT().ValidateFilename(mock.Anything).Return(nil)
	source.EXPECT().Load(mock.Anything).RunAndReturn(func(path m.Path) (m.Maze, error) {
		return corridorMaze(t, path), nil
	})
	ui.EXPECT().DisplayMaze(mock.Anything, mock.Anything).Run(func(_ context.Context, maze m.Maze) {
		mu.Lock()
		defer mu.Unlock()

		displayed = append(displayed, maze.Name)
	}).Return()
	ui.EXPECT().DisplaySolution(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	wf := domain.NewWorkflow(source, adaptermocks.NewMockReportStore(t), ui)
	err := wf.Solve(context.Background(), domain.SolveArgs{
		Paths:    paths,
		Entrance: entrance,
		Options:  domain.DefaultScanOptions(),
		Threads:  4,
	})

	require.NoError(t, err)
	assert.Equal(t, paths, displayed)
}

func TestWorkflow_Solve_WithLocalMazeSource(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	path := m.Path(filepath.Join("..", "..", "examples", "sample.txt"))

	var got m.Solution

	expectSession(ui)
	ui.EXPECT().DisplayMaze(mock.Anything, mock.Anything).Return().Once()
	ui.EXPECT().DisplaySolution(mock.Anything, mock.Anything, entrance, mock.Anything).
		Run(func(_ context.Context, _ m.Maze, _ m.Cell, solution m.Solution) {
			got = solution
		}).Return(nil).Once()

	wf := domain.NewWorkflow(adapter.NewLocalMazeSource(), adapter.NewReportStore(), ui)
	err := wf.Solve(context.Background(), domain.SolveArgs{
		Paths:    []m.Path{path},
		Entrance: entrance,
		Options:  domain.DefaultScanOptions(),
	})

	require.NoError(t, err)
	assert.Equal(t, []m.ExitRecord{{Row: 7, Col: 5}, {Row: 3, Col: 9}, {Row: 4, Col: 1}, {Row: 6, Col: 9}}, got.Exits)
}

func TestWorkflow_List(t *testing.T) {
	source := adaptermocks.NewMockMazeSource(t)
	ui := controllermocks.NewMockUI(t)

	statErr := errors.New("gone")
	good := m.MazeStat{Name: "a.txt", Rows: 3, Cols: 3, OpenCells: 3}

	expectSession(ui)
	source.EXPECT().ValidateFilename("a.txt").Return(nil).Once()
	source.EXPECT().ValidateFilename("b.txt").Return(nil).Once()
	source.EXPECT().ValidateFilename("c.png").Return(m.ErrInvalidFilename).Once()
	source.EXPECT().Stat(m.Path("a.txt")).Return(good, nil).Once()
	source.EXPECT().Stat(m.Path("b.txt")).Return(m.MazeStat{Name: "b.txt", Err: statErr}, statErr).Once()
	ui.EXPECT().DisplayStats(mock.Anything, []m.MazeStat{
		good,
		{Name: "b.txt", Err: statErr},
		{Name: "c.png", Err: m.ErrInvalidFilename},
	}).Return(nil).Once()

	wf := domain.NewWorkflow(source, adaptermocks.NewMockReportStore(t), ui)
	err := wf.List(context.Background(), domain.ListArgs{Paths: []m.Path{"a.txt", "b.txt", "c.png"}})

	require.NoError(t, err)
}

func TestWorkflow_View(t *testing.T) {
	t.Run("displays stored reports", func(t *testing.T) {
		store := adaptermocks.NewMockReportStore(t)
		ui := controllermocks.NewMockUI(t)

		reports := []m.Report{{Maze: "a.txt"}, {Maze: "b.txt"}}

		expectSession(ui)
		store.EXPECT().LoadReports(m.Path("reports")).Return(reports, nil).Once()
		ui.EXPECT().DisplayReports(mock.Anything, reports).Return(nil).Once()

		wf := domain.NewWorkflow(adaptermocks.NewMockMazeSource(t), store, ui)
		require.NoError(t, wf.View(context.Background(), domain.ViewArgs{Reports: "reports"}))
	})

	t.Run("load error", func(t *testing.T) {
		store := adaptermocks.NewMockReportStore(t)
		ui := controllermocks.NewMockUI(t)

		loadErr := errors.New("bad yaml")

		expectSession(ui)
		store.EXPECT().LoadReports(m.Path("reports")).Return(nil, loadErr).Once()

		wf := domain.NewWorkflow(adaptermocks.NewMockMazeSource(t), store, ui)
		err := wf.View(context.Background(), domain.ViewArgs{Reports: "reports"})

		require.ErrorIs(t, err, loadErr)
	})
}
