package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Task is a leaf unit of work. Completed is authoritative and user-set.
type Task struct {
	ID        string
	Name      string
	Completed bool
}

// Phase groups tasks. Its completion is always derived from its tasks.
type Phase struct {
	ID    string
	Name  string
	Tasks []*Task
}

// WBS is a two-level work breakdown structure. Phase order is display order.
type WBS struct {
	Title  string
	Phases []*Phase
}

// NewPhase returns an empty phase with a fresh ID.
func NewPhase(name string) *Phase {
	return &Phase{ID: uuid.New().String(), Name: name}
}

// NewTask returns an incomplete task with a fresh ID.
func NewTask(name string) *Task {
	return &Task{ID: uuid.New().String(), Name: name}
}

// Completed reports whether the phase has at least one task and every task
// is completed. A childless phase is never complete.
func (p *Phase) Completed() bool {
	if len(p.Tasks) == 0 {
		return false
	}
	for _, t := range p.Tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}

// Progress returns the completed and total task counts of the phase.
func (p *Phase) Progress() (done, total int) {
	for _, t := range p.Tasks {
		if t.Completed {
			done++
		}
	}
	return done, len(p.Tasks)
}

// ToggleTask flips the completion of one task.
func (w *WBS) ToggleTask(phaseIndex, taskIndex int) error {
	t, err := w.task(phaseIndex, taskIndex)
	if err != nil {
		return err
	}
	t.Completed = !t.Completed
	return nil
}

// SetTask sets the completion of one task. Setting the current value is a no-op.
func (w *WBS) SetTask(phaseIndex, taskIndex int, value bool) error {
	t, err := w.task(phaseIndex, taskIndex)
	if err != nil {
		return err
	}
	t.Completed = value
	return nil
}

// TogglePhase sets every task of the phase to value. On a phase without
// tasks nothing changes and the phase stays incomplete.
func (w *WBS) TogglePhase(phaseIndex int, value bool) error {
	p, err := w.phase(phaseIndex)
	if err != nil {
		return err
	}
	for _, t := range p.Tasks {
		t.Completed = value
	}
	return nil
}

// AddPhase appends an empty phase.
func (w *WBS) AddPhase(name string) (*Phase, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("adding phase: %w", ErrEmptyName)
	}
	p := NewPhase(name)
	w.Phases = append(w.Phases, p)
	return p, nil
}

// AddTask appends an incomplete task to the phase at phaseIndex.
func (w *WBS) AddTask(phaseIndex int, name string) (*Task, error) {
	p, err := w.phase(phaseIndex)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("adding task to %q: %w", p.Name, ErrEmptyName)
	}
	t := NewTask(name)
	p.Tasks = append(p.Tasks, t)
	return t, nil
}

// Counts returns the completed and total task counts across all phases.
func (w *WBS) Counts() (done, total int) {
	for _, p := range w.Phases {
		d, n := p.Progress()
		done += d
		total += n
	}
	return done, total
}

// OverallProgress returns the fraction of completed tasks, or 0 when the
// WBS has no tasks.
func (w *WBS) OverallProgress() float64 {
	done, total := w.Counts()
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}

// Clone returns a deep copy of the WBS. IDs are preserved.
func (w *WBS) Clone() *WBS {
	c := &WBS{Title: w.Title, Phases: make([]*Phase, 0, len(w.Phases))}
	for _, p := range w.Phases {
		cp := &Phase{ID: p.ID, Name: p.Name, Tasks: make([]*Task, 0, len(p.Tasks))}
		for _, t := range p.Tasks {
			ct := *t
			cp.Tasks = append(cp.Tasks, &ct)
		}
		c.Phases = append(c.Phases, cp)
	}
	return c
}

func (w *WBS) phase(i int) (*Phase, error) {
	if i < 0 || i >= len(w.Phases) {
		return nil, fmt.Errorf("phase index %d (have %d): %w", i, len(w.Phases), ErrInvalidTarget)
	}
	return w.Phases[i], nil
}

func (w *WBS) task(phaseIndex, taskIndex int) (*Task, error) {
	p, err := w.phase(phaseIndex)
	if err != nil {
		return nil, err
	}
	if taskIndex < 0 || taskIndex >= len(p.Tasks) {
		return nil, fmt.Errorf("task index %d in %q (have %d): %w", taskIndex, p.Name, len(p.Tasks), ErrInvalidTarget)
	}
	return p.Tasks[taskIndex], nil
}
