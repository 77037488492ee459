package cli

import (
	"strings"

	"github.com/alexanderramin/wbs/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// headerBarWidth is the width of the overall progress bar in the header.
const headerBarWidth = 30

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack with the checklist at the bottom.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Result of the last action, shown until the next key press.
	message string
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	return appModel{
		state:     state,
		viewStack: []View{newChecklistView(state)},
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		// Every view sizes itself from SharedState, so all of them hear it.
		return m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case cmdOutputMsg:
		m.message = msg.output
		return m, nil

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		// The form has already mutated the session; the view underneath
		// re-reads it before the next frame.
		model, refreshCmd := m.broadcast(refreshViewMsg{})
		return model, tea.Batch(msg.nextCmd, refreshCmd)
	}

	// Forward other messages (cursor blink, form internals) to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// A key press dismisses the previous message.
	m.message = ""

	// Forms receive every key, including 'q'. Esc is handled by the form
	// itself so it can report the cancellation.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.message, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	snap := m.state.Checklist().Snapshot()
	title := formatter.StylePurple.Render("wbs") + " " + formatter.Dim("›") + " " + formatter.Bold(snap.Title)

	var crumbs []string
	for _, v := range m.viewStack[min(1, len(m.viewStack)):] {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	if len(crumbs) > 0 {
		title += " " + formatter.Dim("› "+strings.Join(crumbs, " › "))
	}

	progress := formatter.Dim("No checklist loaded")
	if m.state.Checklist().LoadErr() == nil {
		progress = formatter.OverallLine(snap, headerBarWidth)
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return title + "\n" + progress + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		if !viewCapturesInput(v) {
			hints = append(hints, formatter.Dim("q: quit"))
		}
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

// viewCapturesInput returns true if the active view has its own text input
// and should receive all key events (bypassing global keybindings like q/Esc).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	return v.ID() == ViewForm
}
