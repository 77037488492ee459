package cli

import (
	"github.com/alexanderramin/wbs/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// wizardView wraps a huh.Form as a View on the navigation stack.
// When the form completes, it sends a wizardCompleteMsg with the
// done callback's result.
type wizardView struct {
	state    *SharedState
	form     *huh.Form
	titleStr string
	done     func() tea.Cmd

	// submitted is set once done has run; the view ignores everything
	// until wizardCompleteMsg pops it.
	submitted bool
}

func newWizardView(state *SharedState, title string, form *huh.Form, done func() tea.Cmd) *wizardView {
	return &wizardView{
		state:    state,
		form:     form,
		titleStr: title,
		done:     done,
	}
}

func (v *wizardView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.submitted {
		return v, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Escape cancels the wizard.
		if msg.Type == tea.KeyEsc {
			return v, func() tea.Msg { return wizardCompleteOutput(formatter.Dim("Cancelled.")) }
		}
	case refreshViewMsg:
		return v, nil
	case tea.WindowSizeMsg:
		v.form = v.form.WithWidth(min(msg.Width, 80))
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		// done runs here, inside Update, so the mutation lands before
		// the next render.
		v.submitted = true
		var doneCmd tea.Cmd
		if v.done != nil {
			doneCmd = v.done()
		}
		return v, func() tea.Msg {
			return wizardCompleteMsg{nextCmd: tea.Batch(cmd, doneCmd)}
		}
	}

	return v, cmd
}

func (v *wizardView) View() string {
	return "\n" + v.form.View()
}

func (v *wizardView) ID() ViewID    { return ViewForm }
func (v *wizardView) Title() string { return v.titleStr }
func (v *wizardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next/submit")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// startWizardCmd is a helper that creates a tea.Cmd to push a wizardView.
func startWizardCmd(state *SharedState, title string, form *huh.Form, done func() tea.Cmd) tea.Cmd {
	return pushView(newWizardView(state, title, form, done))
}
