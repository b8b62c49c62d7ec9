package model

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// ExitRecord is a reachable boundary cell in 1-indexed (row, col) form.
type ExitRecord struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Cell converts the record back to its 0-indexed cell.
func (e ExitRecord) Cell() Cell {
	return Cell{Row: e.Row - 1, Col: e.Col - 1}
}

// Compare orders records by row, then column.
func (e ExitRecord) Compare(other ExitRecord) int {
	if c := cmp.Compare(e.Row, other.Row); c != 0 {
		return c
	}

	return cmp.Compare(e.Col, other.Col)
}

func (e ExitRecord) String() string {
	return fmt.Sprintf("%d,%d", e.Row, e.Col)
}

// ParseExitRecord parses a "row,col" pair of 1-indexed positions.
func ParseExitRecord(value string) (ExitRecord, error) {
	rowText, colText, found := strings.Cut(strings.TrimSpace(value), ",")
	if !found {
		return ExitRecord{}, fmt.Errorf("%w: %q is not in ROW,COL form", ErrInvalidCoordinate, value)
	}

	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return ExitRecord{}, fmt.Errorf("%w: row %q: %w", ErrInvalidCoordinate, rowText, err)
	}

	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return ExitRecord{}, fmt.Errorf("%w: col %q: %w", ErrInvalidCoordinate, colText, err)
	}

	if row < 1 || col < 1 {
		return ExitRecord{}, fmt.Errorf("%w: %q must be 1-indexed", ErrInvalidCoordinate, value)
	}

	return ExitRecord{Row: row, Col: col}, nil
}

// Solution is the result of scanning a maze for exits.
type Solution struct {
	Count int          `yaml:"count"`
	Exits []ExitRecord `yaml:"exits"`
}

// Solved reports whether at least one exit was found.
func (s Solution) Solved() bool {
	return s.Count > 0
}
