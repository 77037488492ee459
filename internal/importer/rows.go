package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RowKind classifies a data record of the CSV.
type RowKind int

const (
	RowIgnored RowKind = iota
	RowPhase
	RowTask
)

func (k RowKind) String() string {
	switch k {
	case RowPhase:
		return "phase"
	case RowTask:
		return "task"
	default:
		return "ignored"
	}
}

// Row is one non-blank data record after the header rows.
type Row struct {
	Line   int
	Marker string
	Name   string
	Kind   RowKind
}

// ReadRows scans the CSV, skips the header rows and blank records, and
// classifies each remaining record according to f.
func ReadRows(r io.Reader, f Format) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // Gantt exports are ragged
	cr.LazyQuotes = true

	var (
		rows    []Row
		records int
		wide    bool
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				line = csvErr.Line
			}
			return nil, &ParseError{Row: line, Msg: "malformed csv", Err: err}
		}
		records++
		if records == 1 {
			rec[0] = strings.TrimPrefix(rec[0], "\ufeff")
		}
		if records <= f.SkipRows || isBlank(rec) {
			continue
		}

		line, _ := cr.FieldPos(0)
		if len(rec) >= f.width() {
			wide = true
		}
		marker := field(rec, f.MarkerColumn)
		name := field(rec, f.NameColumn)
		rows = append(rows, Row{
			Line:   line,
			Marker: marker,
			Name:   name,
			Kind:   classify(f, marker, name),
		})
	}

	if records < f.SkipRows {
		return nil, &ParseError{Msg: fmt.Sprintf("expected %d header rows, file has %d records", f.SkipRows, records)}
	}
	if len(rows) > 0 && !wide {
		return nil, &ParseError{Msg: fmt.Sprintf("no data row has both marker column %d and name column %d", f.MarkerColumn, f.NameColumn)}
	}
	return rows, nil
}

// classify applies the phase/task convention. A phase row has an empty
// marker and a name starting with the phase prefix; any other named row
// is a task. Marked rows that look like phases are ignored.
func classify(f Format, marker, name string) RowKind {
	switch {
	case name == "":
		return RowIgnored
	case f.isPhaseName(name):
		if marker == "" {
			return RowPhase
		}
		return RowIgnored
	default:
		return RowTask
	}
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func isBlank(rec []string) bool {
	for _, s := range rec {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}
