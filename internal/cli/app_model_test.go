package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/wbs/internal/domain"
	"github.com/alexanderramin/wbs/internal/service"
	"github.com/alexanderramin/wbs/internal/teatest"
	"github.com/alexanderramin/wbs/internal/testutil"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires an App around an in-memory WBS.
func testApp(t *testing.T, w *domain.WBS) *App {
	t.Helper()
	if w == nil {
		w = testutil.NewFoundationWBS()
	}
	return &App{Checklist: service.NewChecklistService(w)}
}

// failedApp wires an App whose load failed.
func failedApp(t *testing.T, err error) *App {
	t.Helper()
	return &App{Checklist: service.NewFailedChecklistService("Broken WBS", err)}
}

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	shortHelp  []key.Binding
	initCmd    tea.Cmd
	updateCmd  tea.Cmd
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return v.initCmd }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, v.updateCmd
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return v.shortHelp }
func (v *stubView) Title() string            { return v.title }
func newStubView(id ViewID, title, text string) *stubView {
	return &stubView{id: id, title: title, viewText: text}
}

func TestNewAppModelStartsAtChecklist(t *testing.T) {
	m := newAppModel(testApp(t, nil))

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewChecklist, m.activeView().ID())
}

func TestAppModel_PushAndEscPop(t *testing.T) {
	m := newAppModel(testApp(t, nil))
	v2 := newStubView(ViewChecklist, "Other", "other view")
	v2.initCmd = outputCmd("pushed")

	model, cmd := m.Update(pushViewMsg{view: v2})
	m = model.(appModel)
	require.NotNil(t, cmd)
	assert.Equal(t, cmdOutputMsg{output: "pushed"}, cmd())
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v2, m.activeView())

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewChecklist, m.activeView().ID())

	// The bottom view is never popped.
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 1)
}

func TestAppModel_WindowResizeReachesEveryView(t *testing.T) {
	m := newAppModel(testApp(t, nil))
	bottom := newStubView(ViewChecklist, "", "bottom")
	top := newStubView(ViewForm, "Form", "top")
	m.viewStack = []View{bottom, top}

	model, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)
	require.Nil(t, cmd)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	assert.Equal(t, 24, m.state.ContentHeight())
	for _, v := range []*stubView{bottom, top} {
		require.Len(t, v.updateSeen, 1)
		assert.IsType(t, tea.WindowSizeMsg{}, v.updateSeen[0])
	}
}

func TestAppModel_KeyHandling_GlobalAndCaptured(t *testing.T) {
	t.Run("q quits on the checklist", func(t *testing.T) {
		m := newAppModel(testApp(t, nil))

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.View())
	})

	t.Run("form receives q and does not quit", func(t *testing.T) {
		m := newAppModel(testApp(t, nil))
		v := newStubView(ViewForm, "Add Phase", "form")
		m.viewStack = append(m.viewStack, v)

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.Nil(t, cmd)
		assert.False(t, m.quitting)
		require.Len(t, v.updateSeen, 1)
		assert.Equal(t, "q", v.updateSeen[0].(tea.KeyMsg).String())
	})

	t.Run("ctrl+c quits even inside a form", func(t *testing.T) {
		m := newAppModel(testApp(t, nil))
		m.viewStack = append(m.viewStack, newStubView(ViewForm, "Add Phase", "form"))

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
	})

	t.Run("esc pops a non-capturing view and clears the message", func(t *testing.T) {
		m := newAppModel(testApp(t, nil))
		m.viewStack = append(m.viewStack, newStubView(ViewChecklist, "Other", "other"))
		m.message = "stale"

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = model.(appModel)
		require.Nil(t, cmd)
		require.Len(t, m.viewStack, 1)
		assert.Empty(t, m.message)
	})
}

func TestAppModel_WizardCompleteAndOutput(t *testing.T) {
	m := newAppModel(testApp(t, nil))
	bottom := newStubView(ViewChecklist, "", "bottom")
	m.viewStack = []View{bottom, newStubView(ViewForm, "Wizard", "wizard")}

	next := func() tea.Msg { return cmdOutputMsg{output: "done"} }

	model, cmd := m.Update(wizardCompleteMsg{nextCmd: next})
	m = model.(appModel)
	require.NotNil(t, cmd)
	require.Len(t, m.viewStack, 1)

	// The view underneath hears the refresh inside the same Update.
	assert.Equal(t, []tea.Msg{refreshViewMsg{}}, bottom.updateSeen)
	assert.Contains(t, flattenCmd(cmd), cmdOutputMsg{output: "done"})

	model, cmd = m.Update(cmdOutputMsg{output: "hello"})
	m = model.(appModel)
	require.Nil(t, cmd)
	assert.Contains(t, m.View(), "hello")
}

func TestAppModel_CheckIsRenderedBeforeCmdsRun(t *testing.T) {
	var model tea.Model = newAppModel(testApp(t, nil))
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	view := teatest.StripANSI(model.View())
	assert.Contains(t, view, "(1/2 tasks)")
	assert.Contains(t, lineWith(view, "Excavate"), "[x]")
	assert.Contains(t, lineWith(view, "Pour concrete"), "[ ]")
}

func TestAppModel_RepeatedPhaseCheckUsesFreshState(t *testing.T) {
	app := testApp(t, nil)
	var model tea.Model = newAppModel(app)
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	model, _ = model.Update(space)
	for _, task := range app.Checklist.Snapshot().Phases[0].Tasks {
		assert.True(t, task.Completed, task.Name)
	}
	assert.Contains(t, lineWith(teatest.StripANSI(model.View()), "Foundation"), "[x]")

	model, _ = model.Update(space)
	for _, task := range app.Checklist.Snapshot().Phases[0].Tasks {
		assert.False(t, task.Completed, task.Name)
	}
	assert.Contains(t, lineWith(teatest.StripANSI(model.View()), "Foundation"), "[ ]")
}

func TestAppModel_FormMutationShownWhenFormCloses(t *testing.T) {
	app := testApp(t, nil)
	m := newAppModel(app)
	m.viewStack = append(m.viewStack, newStubView(ViewForm, "Add Phase", "form"))

	_, err := app.Checklist.Apply(t.Context(), service.AddPhaseAction{Name: "Electrical"})
	require.NoError(t, err)

	model, _ := m.Update(wizardCompleteMsg{})
	assert.Contains(t, teatest.StripANSI(model.View()), "Electrical")
}

func TestAppModel_HeaderShowsTitleAndProgress(t *testing.T) {
	w := testutil.NewTestWBS(
		testutil.WithTitle("KLIA DCS"),
		testutil.WithPhases(testutil.NewTestPhase("Phase 1", testutil.WithDoneTasks("A"), testutil.WithTasks("B", "C", "D"))),
	)
	m := newAppModel(testApp(t, w))

	header := m.renderHeader()
	assert.Contains(t, header, "KLIA DCS")
	assert.Contains(t, header, "25%")
	assert.Contains(t, header, "(1/4 tasks)")
}

func TestAppModel_HeaderInErrorState(t *testing.T) {
	m := newAppModel(failedApp(t, errors.New("boom")))

	header := m.renderHeader()
	assert.Contains(t, header, "Broken WBS")
	assert.Contains(t, header, "No checklist loaded")
}

func TestViewCapturesInput(t *testing.T) {
	assert.False(t, viewCapturesInput(nil))
	assert.True(t, viewCapturesInput(newStubView(ViewForm, "Form", "")))
	assert.False(t, viewCapturesInput(newStubView(ViewChecklist, "Checklist", "")))
}

func lineWith(view, s string) string {
	for _, l := range strings.Split(view, "\n") {
		if strings.Contains(l, s) {
			return l
		}
	}
	return ""
}

// flattenCmd runs cmd and any batch it expands to, collecting the messages.
func flattenCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, flattenCmd(c)...)
	}
	return msgs
}
