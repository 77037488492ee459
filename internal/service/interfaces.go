package service

import (
	"context"
)

// ChecklistService owns one WBS for the lifetime of a session. All
// mutations go through Apply; all reads go through Snapshot.
type ChecklistService interface {
	// Apply runs one action to completion. A rejected action returns an
	// error and leaves the WBS unchanged.
	Apply(ctx context.Context, a Action) (*Result, error)
	// Snapshot returns the derived render state of the current WBS.
	Snapshot() Snapshot
	// PhaseOptions lists the phases a new task may be added to.
	PhaseOptions() []PhaseOption
	// LoadErr is the startup load failure, if any. While set, Snapshot is
	// empty and every Apply fails with ErrNotLoaded.
	LoadErr() error
}
