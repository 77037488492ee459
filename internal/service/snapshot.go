package service

import "github.com/alexanderramin/wbs/internal/domain"

// Snapshot is the read-only render state of a WBS, with every derived
// value (phase completion, counts, progress) already computed.
type Snapshot struct {
	Title    string
	Phases   []PhaseSnapshot
	Done     int
	Total    int
	Progress float64
}

// PhaseSnapshot is one phase with its derived completion.
type PhaseSnapshot struct {
	Index     int
	ID        string
	Name      string
	Completed bool
	Done      int
	Total     int
	Tasks     []TaskSnapshot
}

// TaskSnapshot is one task.
type TaskSnapshot struct {
	Index     int
	ID        string
	Name      string
	Completed bool
}

// PhaseOption is a valid target for a new task.
type PhaseOption struct {
	Index int
	Name  string
}

func newSnapshot(w *domain.WBS) Snapshot {
	done, total := w.Counts()
	s := Snapshot{
		Title:    w.Title,
		Phases:   make([]PhaseSnapshot, 0, len(w.Phases)),
		Done:     done,
		Total:    total,
		Progress: w.OverallProgress(),
	}
	for pi, p := range w.Phases {
		pd, pt := p.Progress()
		ps := PhaseSnapshot{
			Index:     pi,
			ID:        p.ID,
			Name:      p.Name,
			Completed: p.Completed(),
			Done:      pd,
			Total:     pt,
			Tasks:     make([]TaskSnapshot, 0, len(p.Tasks)),
		}
		for ti, t := range p.Tasks {
			ps.Tasks = append(ps.Tasks, TaskSnapshot{
				Index:     ti,
				ID:        t.ID,
				Name:      t.Name,
				Completed: t.Completed,
			})
		}
		s.Phases = append(s.Phases, ps)
	}
	return s
}
