package cli

import (
	"context"
	"errors"

	"github.com/alexanderramin/wbs/internal/cli/formatter"
	"github.com/alexanderramin/wbs/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	errNothingLoaded = errors.New("no checklist loaded, adding is disabled")
	errNoPhases      = errors.New("add a phase before adding tasks")
)

// applyAction runs a on the session synchronously. It must be called from
// Update, and the caller re-reads the snapshot before returning so the next
// frame shows the new state. The returned Cmd only reports the outcome.
func applyAction(state *SharedState, a service.Action) tea.Cmd {
	res, err := state.Checklist().Apply(context.Background(), a)
	if err != nil {
		return outputCmd(formatter.Error(err))
	}
	return outputCmd(formatter.StyleGreen.Render("✔ ") + res.Message)
}

// startAddPhase opens the Add Phase form.
func startAddPhase(state *SharedState) tea.Cmd {
	if state.Checklist().LoadErr() != nil {
		return outputCmd(formatter.Error(errNothingLoaded))
	}
	var name string
	return startWizardCmd(state, "Add Phase", wizardAddPhase(&name), func() tea.Cmd {
		return applyAction(state, service.AddPhaseAction{Name: name})
	})
}

// startAddTask opens the Add Task form with phase preselected.
func startAddTask(state *SharedState, phase int) tea.Cmd {
	if state.Checklist().LoadErr() != nil {
		return outputCmd(formatter.Error(errNothingLoaded))
	}
	options := state.Checklist().PhaseOptions()
	if len(options) == 0 {
		return outputCmd(formatter.Error(errNoPhases))
	}
	if phase < 0 || phase >= len(options) {
		phase = 0
	}

	var name string
	target := options[phase].Index
	return startWizardCmd(state, "Add Task", wizardAddTask(options, &target, &name), func() tea.Cmd {
		return applyAction(state, service.AddTaskAction{Phase: target, Name: name})
	})
}
