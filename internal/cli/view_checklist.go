package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wbs/internal/cli/formatter"
	"github.com/alexanderramin/wbs/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// checklistRow is one visible line of the checklist. Task is -1 on phase rows.
type checklistRow struct {
	phase int
	task  int
}

func (r checklistRow) isPhase() bool { return r.task < 0 }

const (
	phaseBarWidth = 10

	// Cells a row spends around the name: cursor, indicator, checkbox,
	// and on phase rows the bar and fraction.
	phaseRowChrome = 2 + 2 + 4 + 2 + phaseBarWidth + 10
	taskRowChrome  = 2 + 4 + 4
)

// checklistView shows every phase as a collapsible section of task
// checkboxes. It is the bottom of the view stack.
type checklistView struct {
	state     *SharedState
	snap      service.Snapshot
	cursor    int
	collapsed map[string]bool // phase ID -> collapsed
	vp        viewport.Model
}

func newChecklistView(state *SharedState) *checklistView {
	vp := viewport.New(0, 0)
	// Scrolling follows the cursor; the viewport takes no keys of its own.
	vp.KeyMap = viewport.KeyMap{}
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &checklistView{
		state:     state,
		snap:      state.Checklist().Snapshot(),
		collapsed: make(map[string]bool),
		vp:        vp,
	}
}

func (v *checklistView) ID() ViewID    { return ViewChecklist }
func (v *checklistView) Title() string { return v.snap.Title }

func (v *checklistView) ShortHelp() []key.Binding {
	if v.state.Checklist().LoadErr() != nil {
		return nil
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "check")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "collapse")),
		key.NewBinding(key.WithKeys("E", "C"), key.WithHelp("E/C", "expand/collapse all")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "add phase")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
	}
}

func (v *checklistView) Init() tea.Cmd {
	return nil
}

func (v *checklistView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.refresh()
		return v, nil

	case tea.WindowSizeMsg:
		v.syncViewport()
		return v, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if v.state.Checklist().LoadErr() != nil {
			switch msg.String() {
			case "p", "a":
				return v, outputCmd(formatter.Error(errNothingLoaded))
			}
			return v, nil
		}
		cmd := v.handleKey(msg)
		v.syncViewport()
		return v, cmd
	}
	return v, nil
}

func (v *checklistView) handleKey(msg tea.KeyMsg) tea.Cmd {
	visible := v.visibleRows()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(visible)-1 {
			v.cursor++
		}
	case "home", "g":
		v.cursor = 0
	case "end", "G":
		v.cursor = max(len(visible)-1, 0)
	case "enter":
		if row, ok := v.current(visible); ok {
			// On a task, enter folds its phase and moves onto it.
			v.toggleCollapsed(row.phase)
			v.cursor = v.phaseRowIndex(row.phase)
		}
	case " ", "space", "x":
		if row, ok := v.current(visible); ok {
			cmd := applyAction(v.state, v.checkAction(row))
			v.refresh()
			return cmd
		}
	case "E":
		v.collapsed = make(map[string]bool)
		if row, ok := v.current(visible); ok {
			v.cursor = v.rowIndex(row)
		}
	case "C":
		row, ok := v.current(visible)
		for _, p := range v.snap.Phases {
			v.collapsed[p.ID] = true
		}
		if ok {
			v.cursor = v.phaseRowIndex(row.phase)
		}
	case "p":
		return startAddPhase(v.state)
	case "a":
		phase := 0
		if row, ok := v.current(visible); ok {
			phase = row.phase
		}
		return startAddTask(v.state, phase)
	}
	return nil
}

// checkAction maps the check key to an action. A task flips; a phase sets
// all of its tasks to the opposite of its derived state.
func (v *checklistView) checkAction(row checklistRow) service.Action {
	if row.isPhase() {
		return service.SetPhaseAction{
			Phase: row.phase,
			Value: !v.snap.Phases[row.phase].Completed,
		}
	}
	return service.ToggleTaskAction{Phase: row.phase, Task: row.task}
}

func (v *checklistView) toggleCollapsed(phase int) {
	id := v.snap.Phases[phase].ID
	v.collapsed[id] = !v.collapsed[id]
}

func (v *checklistView) current(visible []checklistRow) (checklistRow, bool) {
	if v.cursor < 0 || v.cursor >= len(visible) {
		return checklistRow{}, false
	}
	return visible[v.cursor], true
}

// visibleRows flattens the snapshot, skipping tasks of collapsed phases.
func (v *checklistView) visibleRows() []checklistRow {
	var rows []checklistRow
	for pi, p := range v.snap.Phases {
		rows = append(rows, checklistRow{phase: pi, task: -1})
		if v.collapsed[p.ID] {
			continue
		}
		for ti := range p.Tasks {
			rows = append(rows, checklistRow{phase: pi, task: ti})
		}
	}
	return rows
}

func (v *checklistView) rowIndex(target checklistRow) int {
	for i, r := range v.visibleRows() {
		if r == target {
			return i
		}
	}
	return 0
}

func (v *checklistView) phaseRowIndex(phase int) int {
	return v.rowIndex(checklistRow{phase: phase, task: -1})
}

// refresh re-reads the session so the rows match the tree.
func (v *checklistView) refresh() {
	v.snap = v.state.Checklist().Snapshot()
	v.clampCursor()
	v.syncViewport()
}

func (v *checklistView) clampCursor() {
	n := len(v.visibleRows())
	if v.cursor >= n {
		v.cursor = max(n-1, 0)
	}
}

// syncViewport renders the rows into the viewport and scrolls so the
// cursor stays on screen.
func (v *checklistView) syncViewport() {
	if v.state.Height == 0 {
		return
	}
	v.vp.Width = v.state.Width
	v.vp.Height = v.state.ContentHeight()
	v.vp.SetContent(strings.Join(v.renderRows(), "\n"))

	switch {
	case v.cursor < v.vp.YOffset:
		v.vp.SetYOffset(v.cursor)
	case v.cursor >= v.vp.YOffset+v.vp.Height:
		v.vp.SetYOffset(v.cursor - v.vp.Height + 1)
	}
}

func (v *checklistView) View() string {
	if err := v.state.Checklist().LoadErr(); err != nil {
		return v.renderError(err)
	}
	if len(v.snap.Phases) == 0 {
		return "\n  " + formatter.Dim("No phases yet. Press p to add one.")
	}
	if v.state.Height == 0 {
		return strings.Join(v.renderRows(), "\n")
	}
	return v.vp.View()
}

func (v *checklistView) renderError(err error) string {
	body := formatter.StyleRed.Render(err.Error()) + "\n\n" +
		formatter.Dim("Fix the CSV file or the format settings and restart.")
	if v.state.Width > 0 {
		body = lipgloss.NewStyle().Width(max(v.state.Width-8, 20)).Render(body)
	}
	return "\n" + formatter.RenderErrorBox("Could not load WBS", body)
}

func (v *checklistView) renderRows() []string {
	visible := v.visibleRows()
	lines := make([]string, 0, len(visible))
	for i, row := range visible {
		lines = append(lines, v.renderRow(row, i == v.cursor))
	}
	return lines
}

func (v *checklistView) renderRow(row checklistRow, isCursor bool) string {
	cursor := "  "
	if isCursor {
		cursor = formatter.StyleGreen.Render("▸ ")
	}

	p := v.snap.Phases[row.phase]
	if row.isPhase() {
		indicator := "▾ "
		if v.collapsed[p.ID] {
			indicator = "▸ "
		}
		progress := formatter.Dim("no tasks")
		if p.Total > 0 {
			progress = formatter.RenderCompactBar(formatter.Ratio(p.Done, p.Total), phaseBarWidth, v.collapsed[p.ID]) +
				" " + formatter.Fraction(p.Done, p.Total)
		}
		return fmt.Sprintf("%s%s%s %s  %s",
			cursor,
			formatter.Dim(indicator),
			formatter.Checkbox(p.Completed),
			formatter.Bold(v.fit(p.Name, phaseRowChrome)),
			progress,
		)
	}

	t := p.Tasks[row.task]
	name := v.fit(t.Name, taskRowChrome)
	if t.Completed {
		name = formatter.Dim(name)
	}
	return fmt.Sprintf("%s    %s %s", cursor, formatter.Checkbox(t.Completed), name)
}

// fit truncates a name so its row, with chrome cells of decoration,
// stays within the terminal width.
func (v *checklistView) fit(name string, chrome int) string {
	if v.state.Width == 0 {
		return name
	}
	return formatter.Truncate(name, max(v.state.Width-chrome, 10))
}
