package cli

import (
	"testing"

	"github.com/alexanderramin/wbs/internal/service"
	"github.com/alexanderramin/wbs/internal/teatest"
)

// TestDriver wraps teatest.Driver with inspection of appModel internals
// (view stack, message line, session) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App at 100x30.
func NewTestDriver(t *testing.T, app *App, opts ...teatest.Option) *TestDriver {
	t.Helper()

	if len(opts) == 0 {
		opts = []teatest.Option{teatest.WithSize(100, 30)}
	}
	d := teatest.New(t, newAppModel(app), opts...)
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// AddPhase opens the Add Phase form, types name and submits.
func (d *TestDriver) AddPhase(name string) {
	d.T.Helper()
	d.PressKey('p')
	d.Type(name)
	d.PressEnter()
}

// AddTask opens the Add Task form on the phase under the cursor, types
// name and submits both fields.
func (d *TestDriver) AddTask(name string) {
	d.T.Helper()
	d.PressKey('a')
	d.Type(name)
	d.PressEnter() // to the phase select
	d.PressEnter() // submit
}

// ── Inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Snapshot returns the session's current render state.
func (d *TestDriver) Snapshot() service.Snapshot {
	return d.appModel().state.Checklist().Snapshot()
}

// Cursor returns the checklist cursor position.
func (d *TestDriver) Cursor() int {
	return d.checklist().cursor
}

// Message returns the plain text of the message line.
func (d *TestDriver) Message() string {
	return teatest.StripANSI(d.appModel().message)
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

func (d *TestDriver) checklist() *checklistView {
	return d.appModel().viewStack[0].(*checklistView)
}
