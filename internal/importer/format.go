package importer

import (
	"fmt"
	"strings"
)

// Format describes the fixed column convention of a WBS CSV export.
// It is configuration for one observed file layout; the loader never
// infers it from the data.
type Format struct {
	// SkipRows is the number of header/metadata records before task data.
	SkipRows int `toml:"skip_rows"`
	// MarkerColumn is empty on phase rows and holds the task ID on task rows.
	MarkerColumn int `toml:"marker_column"`
	// NameColumn holds the phase or task name.
	NameColumn int `toml:"name_column"`
	// PhasePrefix starts every phase name (compared case-insensitively).
	PhasePrefix string `toml:"phase_prefix"`
}

// DefaultFormat returns the layout of the project schedule Gantt export:
// seven header rows, IDs in column A, names in column B, and phase rows
// named "Phase ...".
func DefaultFormat() Format {
	return Format{
		SkipRows:     7,
		MarkerColumn: 0,
		NameColumn:   1,
		PhasePrefix:  "phase",
	}
}

// ValidateFormat checks a format for errors before it is used.
// Returns a slice of all validation errors found.
func ValidateFormat(f Format) []error {
	var errs []error

	if f.SkipRows < 0 {
		errs = append(errs, fmt.Errorf("skip_rows must not be negative (got %d)", f.SkipRows))
	}
	if f.MarkerColumn < 0 {
		errs = append(errs, fmt.Errorf("marker_column must not be negative (got %d)", f.MarkerColumn))
	}
	if f.NameColumn < 0 {
		errs = append(errs, fmt.Errorf("name_column must not be negative (got %d)", f.NameColumn))
	}
	if f.MarkerColumn == f.NameColumn {
		errs = append(errs, fmt.Errorf("marker_column and name_column must differ (both %d)", f.NameColumn))
	}
	if strings.TrimSpace(f.PhasePrefix) == "" {
		errs = append(errs, fmt.Errorf("phase_prefix is required"))
	}

	return errs
}

// width is the minimum number of fields a record needs to carry both the
// marker and the name column.
func (f Format) width() int {
	return max(f.MarkerColumn, f.NameColumn) + 1
}

func (f Format) isPhaseName(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), strings.ToLower(strings.TrimSpace(f.PhasePrefix)))
}
