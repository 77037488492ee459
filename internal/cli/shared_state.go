package cli

import "github.com/alexanderramin/wbs/internal/service"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// Checklist returns the session every view reads from and mutates.
func (s *SharedState) Checklist() service.ChecklistService {
	return s.App.Checklist
}

// ContentHeight returns the available height for view content,
// accounting for header (3 lines: title, overall progress, separator),
// the message line, and status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 6
	if h < 1 {
		return 1
	}
	return h
}
