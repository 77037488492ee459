package service

import (
	"fmt"

	"github.com/alexanderramin/wbs/internal/domain"
)

// Action is one user-triggered transition of the WBS.
type Action interface {
	// UseCase identifies the action in observer events.
	UseCase() string
	apply(w *domain.WBS) (string, error)
	fields() map[string]any
}

// ToggleTaskAction flips one task.
type ToggleTaskAction struct {
	Phase int
	Task  int
}

// SetTaskAction sets one task to Value.
type SetTaskAction struct {
	Phase int
	Task  int
	Value bool
}

// SetPhaseAction sets every task of a phase to Value.
type SetPhaseAction struct {
	Phase int
	Value bool
}

// AddPhaseAction appends a phase.
type AddPhaseAction struct {
	Name string
}

// AddTaskAction appends a task to a phase.
type AddTaskAction struct {
	Phase int
	Name  string
}

func (ToggleTaskAction) UseCase() string { return "toggle-task" }
func (SetTaskAction) UseCase() string    { return "set-task" }
func (SetPhaseAction) UseCase() string   { return "set-phase" }
func (AddPhaseAction) UseCase() string   { return "add-phase" }
func (AddTaskAction) UseCase() string    { return "add-task" }

func (a ToggleTaskAction) apply(w *domain.WBS) (string, error) {
	if err := w.ToggleTask(a.Phase, a.Task); err != nil {
		return "", err
	}
	t := w.Phases[a.Phase].Tasks[a.Task]
	return checkedMessage(t.Name, t.Completed), nil
}

func (a SetTaskAction) apply(w *domain.WBS) (string, error) {
	if err := w.SetTask(a.Phase, a.Task, a.Value); err != nil {
		return "", err
	}
	return checkedMessage(w.Phases[a.Phase].Tasks[a.Task].Name, a.Value), nil
}

func (a SetPhaseAction) apply(w *domain.WBS) (string, error) {
	if err := w.TogglePhase(a.Phase, a.Value); err != nil {
		return "", err
	}
	p := w.Phases[a.Phase]
	if len(p.Tasks) == 0 {
		return fmt.Sprintf("%s has no tasks yet", p.Name), nil
	}
	verb := "Checked"
	if !a.Value {
		verb = "Unchecked"
	}
	return fmt.Sprintf("%s all %d task(s) in %s", verb, len(p.Tasks), p.Name), nil
}

func (a AddPhaseAction) apply(w *domain.WBS) (string, error) {
	p, err := w.AddPhase(a.Name)
	if err != nil {
		return "", err
	}
	return "Added phase: " + p.Name, nil
}

func (a AddTaskAction) apply(w *domain.WBS) (string, error) {
	t, err := w.AddTask(a.Phase, a.Name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Added task: %s (to %s)", t.Name, w.Phases[a.Phase].Name), nil
}

func (a ToggleTaskAction) fields() map[string]any {
	return map[string]any{"phase": a.Phase, "task": a.Task}
}

func (a SetTaskAction) fields() map[string]any {
	return map[string]any{"phase": a.Phase, "task": a.Task, "value": a.Value}
}

func (a SetPhaseAction) fields() map[string]any {
	return map[string]any{"phase": a.Phase, "value": a.Value}
}

func (a AddPhaseAction) fields() map[string]any {
	return map[string]any{"name": a.Name}
}

func (a AddTaskAction) fields() map[string]any {
	return map[string]any{"phase": a.Phase, "name": a.Name}
}

func checkedMessage(name string, done bool) string {
	if done {
		return "Checked: " + name
	}
	return "Unchecked: " + name
}
