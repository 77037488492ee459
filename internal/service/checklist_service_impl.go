package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/wbs/internal/domain"
	"github.com/alexanderramin/wbs/internal/importer"
)

// ErrNotLoaded is returned by Apply when the session has no WBS because
// loading failed.
var ErrNotLoaded = errors.New("no wbs loaded")

// Result is the outcome of an applied action. Snapshot is taken after the
// mutation has been fully applied.
type Result struct {
	Message  string
	Snapshot Snapshot
}

// LoadRequest names the CSV to load and how to read it.
type LoadRequest struct {
	Path   string
	Format importer.Format
	Title  string
}

type checklistService struct {
	title    string
	wbs      *domain.WBS
	loadErr  error
	observer UseCaseObserver
}

// NewChecklistService wraps an already-loaded WBS.
func NewChecklistService(w *domain.WBS, observers ...UseCaseObserver) ChecklistService {
	return &checklistService{
		title:    w.Title,
		wbs:      w,
		observer: useCaseObserverOrNoop(observers),
	}
}

// NewFailedChecklistService returns a session in the error state.
func NewFailedChecklistService(title string, loadErr error, observers ...UseCaseObserver) ChecklistService {
	return &checklistService{
		title:    title,
		loadErr:  loadErr,
		observer: useCaseObserverOrNoop(observers),
	}
}

// LoadChecklist loads the CSV once and returns a session. A load failure
// does not abort: the session carries it and reports it through LoadErr.
func LoadChecklist(ctx context.Context, req LoadRequest, observers ...UseCaseObserver) ChecklistService {
	observer := useCaseObserverOrNoop(observers)
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": req.Path}

	w, err := importer.Load(req.Path, req.Format, req.Title)
	if err == nil {
		done, total := w.Counts()
		fields["phases"] = len(w.Phases)
		fields["tasks"] = total
		fields["done"] = done
	} else {
		err = fmt.Errorf("loading wbs: %w", err)
	}

	observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "load-wbs",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})

	if err != nil {
		return NewFailedChecklistService(req.Title, err, observer)
	}
	return NewChecklistService(w, observer)
}

func (s *checklistService) Apply(ctx context.Context, a Action) (res *Result, err error) {
	if a == nil {
		return nil, fmt.Errorf("applying action: nil action")
	}
	startedAt := time.Now().UTC()
	fields := a.fields()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      a.UseCase(),
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if s.loadErr != nil {
		return nil, fmt.Errorf("%s: %w", a.UseCase(), ErrNotLoaded)
	}

	var msg string
	msg, err = a.apply(s.wbs)
	if err != nil {
		return nil, err
	}

	snap := newSnapshot(s.wbs)
	fields["done"] = snap.Done
	fields["total"] = snap.Total
	return &Result{Message: msg, Snapshot: snap}, nil
}

func (s *checklistService) Snapshot() Snapshot {
	if s.wbs == nil {
		return Snapshot{Title: s.title}
	}
	return newSnapshot(s.wbs)
}

func (s *checklistService) PhaseOptions() []PhaseOption {
	if s.wbs == nil {
		return nil
	}
	opts := make([]PhaseOption, 0, len(s.wbs.Phases))
	for i, p := range s.wbs.Phases {
		opts = append(opts, PhaseOption{Index: i, Name: p.Name})
	}
	return opts
}

func (s *checklistService) LoadErr() error { return s.loadErr }
