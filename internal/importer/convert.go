package importer

import (
	"github.com/alexanderramin/wbs/internal/domain"
)

// Convert assembles classified rows into a WBS. Tasks attach to the most
// recent phase; tasks that appear before any phase are dropped.
// Returns a ParseError when no phase row exists.
func Convert(rows []Row, title string) (*domain.WBS, error) {
	wbs := &domain.WBS{Title: title}

	var current *domain.Phase
	for _, r := range rows {
		switch r.Kind {
		case RowPhase:
			current = domain.NewPhase(r.Name)
			wbs.Phases = append(wbs.Phases, current)
		case RowTask:
			if current == nil {
				continue
			}
			current.Tasks = append(current.Tasks, domain.NewTask(r.Name))
		}
	}

	if len(wbs.Phases) == 0 {
		return nil, &ParseError{Msg: "no phase rows found"}
	}
	return wbs, nil
}
