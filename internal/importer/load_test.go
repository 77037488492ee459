package importer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTitle = "WBS Test"

// header is seven metadata records, matching DefaultFormat().SkipRows.
const header = "Title,,\nClient,,\nRevision,,\nBy,,\n,,\nLegend,,\nID,Task Name,Duration\n"

func TestLoad_GanttSample(t *testing.T) {
	wbs, err := Load(filepath.Join("testdata", "gantt_sample.csv"), DefaultFormat(), testTitle)
	require.NoError(t, err)

	assert.Equal(t, testTitle, wbs.Title)
	require.Len(t, wbs.Phases, 3)

	assert.Equal(t, "Phase 1: Design & Engineering", wbs.Phases[0].Name)
	require.Len(t, wbs.Phases[0].Tasks, 3)
	assert.Equal(t, "Site survey", wbs.Phases[0].Tasks[0].Name)
	assert.Equal(t, "Chiller plant layout, rev A", wbs.Phases[0].Tasks[1].Name)
	assert.Equal(t, "Authority submission", wbs.Phases[0].Tasks[2].Name)

	assert.Equal(t, "PHASE 2: Procurement", wbs.Phases[1].Name)
	require.Len(t, wbs.Phases[1].Tasks, 2)

	assert.Equal(t, "Phase 3: Installation", wbs.Phases[2].Name)
	assert.Empty(t, wbs.Phases[2].Tasks)

	for _, p := range wbs.Phases {
		assert.False(t, p.Completed(), p.Name)
		assert.NotEmpty(t, p.ID)
		for _, task := range p.Tasks {
			assert.False(t, task.Completed, task.Name)
		}
	}
	assert.Equal(t, 0.0, wbs.OverallProgress())
}

func TestLoad_MissingMarkerColumn(t *testing.T) {
	wbs, err := Load(filepath.Join("testdata", "missing_marker.csv"), DefaultFormat(), testTitle)
	require.Error(t, err)
	assert.Nil(t, wbs)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, filepath.Join("testdata", "missing_marker.csv"), pe.Path)
	assert.Contains(t, pe.Error(), "marker column 0")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), DefaultFormat(), testTitle)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	var pe *ParseError
	assert.False(t, errors.As(err, &pe), "missing file is not a parse error")
}

func TestLoad_InvalidFormat(t *testing.T) {
	f := DefaultFormat()
	f.NameColumn = f.MarkerColumn

	path := filepath.Join(t.TempDir(), "wbs.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+",Phase 1,\n"), 0o644))

	_, err := Load(path, f, testTitle)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}

func TestParse_ShortFile(t *testing.T) {
	_, err := Parse(strings.NewReader("a,b\nc,d\n"), DefaultFormat(), testTitle)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Msg, "expected 7 header rows")
}

func TestParse_NoPhaseRows(t *testing.T) {
	_, err := Parse(strings.NewReader(header+"1,Site survey,5 days\n2,Layout,3 days\n"), DefaultFormat(), testTitle)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "no phase rows found", pe.Msg)
}

func TestParse_HeaderOnly(t *testing.T) {
	_, err := Parse(strings.NewReader(header), DefaultFormat(), testTitle)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "no phase rows found", pe.Msg)
}

func TestParse_TasksBeforeFirstPhaseAreDropped(t *testing.T) {
	in := header + "0,Mobilisation,1 day\n,Phase 1,\n1,Survey,2 days\n"
	wbs, err := Parse(strings.NewReader(in), DefaultFormat(), testTitle)
	require.NoError(t, err)

	require.Len(t, wbs.Phases, 1)
	require.Len(t, wbs.Phases[0].Tasks, 1)
	assert.Equal(t, "Survey", wbs.Phases[0].Tasks[0].Name)
}

func TestParse_StripsBOM(t *testing.T) {
	f := DefaultFormat()
	f.SkipRows = 0
	wbs, err := Parse(strings.NewReader("\ufeff,Phase A,\n1,Task,\n"), f, testTitle)
	require.NoError(t, err)

	require.Len(t, wbs.Phases, 1)
	assert.Equal(t, "Phase A", wbs.Phases[0].Name)
}

func TestParse_CustomFormat(t *testing.T) {
	f := Format{SkipRows: 1, MarkerColumn: 2, NameColumn: 0, PhasePrefix: "Stage"}
	in := "Name,Duration,WBS\nStage One,10d,\nDig,2d,1.1\nStage Two,5d,\nPour,3d,2.1\n"

	wbs, err := Parse(strings.NewReader(in), f, testTitle)
	require.NoError(t, err)

	require.Len(t, wbs.Phases, 2)
	assert.Equal(t, "Stage One", wbs.Phases[0].Name)
	assert.Equal(t, "Dig", wbs.Phases[0].Tasks[0].Name)
	assert.Equal(t, "Pour", wbs.Phases[1].Tasks[0].Name)
}

func TestParseError_Message(t *testing.T) {
	inner := errors.New("boom")
	err := &ParseError{Path: "x.csv", Row: 9, Msg: "malformed csv", Err: inner}

	assert.Equal(t, "x.csv: row 9: malformed csv: boom", err.Error())
	assert.ErrorIs(t, err, inner)
}
