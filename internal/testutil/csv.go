package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/alexanderramin/wbs/internal/domain"
)

// ganttHeader mirrors the seven metadata rows of the project schedule export.
var ganttHeader = [][]string{
	{"Project Schedule", "", "", ""},
	{"Test District Cooling System", "", "", ""},
	{"Revision", "26 Mar 2025", "", ""},
	{"Prepared by", "Project Controls", "", ""},
	{"", "", "", ""},
	{"Legend", "Planned", "Actual", ""},
	{"ID", "Task Name", "Duration", "% Complete"},
}

// GanttCSV renders phases in the default export layout: phase rows have an
// empty ID column, task rows a numeric ID. Completion is not exported.
func GanttCSV(phases ...*domain.Phase) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.WriteAll(ganttHeader)

	id := 0
	for _, p := range phases {
		_ = w.Write([]string{"", p.Name, "", ""})
		for _, t := range p.Tasks {
			id++
			_ = w.Write([]string{strconv.Itoa(id), t.Name, "1 day", "0%"})
		}
	}
	w.Flush()
	return b.String()
}

// WriteCSV writes content to a file in a per-test temp dir and returns its path.
func WriteCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wbs.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing csv fixture: %v", err)
	}
	return path
}

// WriteGanttCSV writes GanttCSV(phases...) and returns its path.
func WriteGanttCSV(t *testing.T, phases ...*domain.Phase) string {
	t.Helper()
	return WriteCSV(t, GanttCSV(phases...))
}
