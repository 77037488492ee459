package cli

import (
	"testing"

	"github.com/alexanderramin/wbs/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedForm() *huh.Form {
	var name string
	form := huh.NewForm(huh.NewGroup(huh.NewInput().Title("Name").Value(&name)))
	form.State = huh.StateCompleted
	return form
}

func TestWizardView_DoneRunsOnce(t *testing.T) {
	calls := 0
	v := newWizardView(&SharedState{}, "Add Phase", completedForm(), func() tea.Cmd {
		calls++
		return nil
	})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, wizardCompleteMsg{}, cmd())
	assert.Equal(t, 1, calls)

	// Messages that arrive before the view is popped are dropped.
	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEsc},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}},
	} {
		_, cmd = v.Update(msg)
		assert.Nil(t, cmd)
	}
	assert.Equal(t, 1, calls)
}

func TestWizardView_SecondEnterAddsNoSecondPhase(t *testing.T) {
	app := testApp(t, nil)
	state := &SharedState{App: app}
	v := newWizardView(state, "Add Phase", completedForm(), func() tea.Cmd {
		return applyAction(state, service.AddPhaseAction{Name: "Electrical"})
	})

	// The completion message is held back, as when the runtime has not
	// delivered it yet.
	_, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	var names []string
	for _, p := range app.Checklist.Snapshot().Phases {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Foundation", "Electrical"}, names)
}
