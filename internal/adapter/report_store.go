package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "amaze.dev/pkg/amaze/internal/model"
)

const reportExt = ".yaml"

// ReportStore persists solve reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.Report) (m.Path, error)
	LoadReports(dir m.Path) ([]m.Report, error)
}

// YAMLReportStore writes one YAML file per solved maze.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes report to dir/<maze name>.yaml and returns the file path.
func (s *YAMLReportStore) SaveReport(dir m.Path, report m.Report) (m.Path, error) {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	target := filepath.Join(string(dir), reportFileName(report.Maze))
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	slog.Debug("saved report", "path", target, "exits", report.Solution.Count)

	return m.Path(target), nil
}

// LoadReports reads every report in dir, ordered by file name.
// A missing dir yields no reports.
func (s *YAMLReportStore) LoadReports(dir m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != reportExt {
			continue
		}

		names = append(names, entry.Name())
	}

	sort.Strings(names)

	reports := make([]m.Report, 0, len(names))

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(string(dir), name))
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", name, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", name, err)
		}

		reports = append(reports, report)
	}

	return reports, nil
}

func reportFileName(maze m.Path) string {
	base := strings.TrimSuffix(filepath.Base(string(maze)), filepath.Ext(string(maze)))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "maze"
	}

	return base + reportExt
}
