package testutil

import (
	"github.com/alexanderramin/wbs/internal/domain"
)

// DefaultTitle is the title given to WBS fixtures.
const DefaultTitle = "Test WBS"

// Phase options
type PhaseOption func(*domain.Phase)

// WithTasks appends incomplete tasks.
func WithTasks(names ...string) PhaseOption {
	return func(p *domain.Phase) {
		for _, n := range names {
			p.Tasks = append(p.Tasks, domain.NewTask(n))
		}
	}
}

// WithDoneTasks appends completed tasks.
func WithDoneTasks(names ...string) PhaseOption {
	return func(p *domain.Phase) {
		for _, n := range names {
			t := domain.NewTask(n)
			t.Completed = true
			p.Tasks = append(p.Tasks, t)
		}
	}
}

func NewTestPhase(name string, opts ...PhaseOption) *domain.Phase {
	p := domain.NewPhase(name)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WBS options
type WBSOption func(*domain.WBS)

func WithTitle(title string) WBSOption {
	return func(w *domain.WBS) {
		w.Title = title
	}
}

func WithPhases(phases ...*domain.Phase) WBSOption {
	return func(w *domain.WBS) {
		w.Phases = append(w.Phases, phases...)
	}
}

func NewTestWBS(opts ...WBSOption) *domain.WBS {
	w := &domain.WBS{Title: DefaultTitle}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewFoundationWBS returns one phase "Foundation" with the open tasks
// "Excavate" and "Pour concrete".
func NewFoundationWBS() *domain.WBS {
	return NewTestWBS(WithPhases(
		NewTestPhase("Foundation", WithTasks("Excavate", "Pour concrete")),
	))
}
