// Package teatest provides a synchronous test driver for bubbletea models.
//
// It replaces tea.Program in tests by calling Update() directly and
// synchronously draining returned Cmds, so a key press and every message
// it causes are fully processed before the call returns.
//
// Cursor blink Cmds (which block on timer channels) are executed with a
// short timeout and skipped if they don't return promptly.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// MaxDrainDepth is the safety limit for command draining to prevent infinite loops.
const MaxDrainDepth = 100

// cmdTimeout is how long to wait for a Cmd to return before skipping it.
// Message factories complete in microseconds; cursor blink Cmds block for
// ~530ms, so 10ms separates the two.
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is seen during drain.
	// tea.QuitMsg is normally intercepted by the bubbletea runtime,
	// so the model may not handle it; the driver detects it explicitly.
	Quitting bool
}

// Option configures the Driver during construction.
type Option func(*Driver)

// New creates a Driver for the given model and applies options.
// Call DrainInit() after construction to process the model's Init() command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize sends an initial WindowSizeMsg before any other processing.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		d.Resize(w, h)
	}
}

// DrainInit executes the model's Init() command and drains all resulting messages.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// ── Core send methods ────────────────────────────────────────────────────────

// Send dispatches a message through Update and drains all resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// Resize sends a WindowSizeMsg.
func (d *Driver) Resize(w, h int) {
	d.T.Helper()
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
}

// ── Key event helpers ────────────────────────────────────────────────────────

// SendKey sends a tea.KeyMsg through the model.
func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

// PressKey sends a character key (rune).
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressKeys sends each rune of keys as its own key press, for command
// sequences such as "jjx".
func (d *Driver) PressKeys(keys string) {
	d.T.Helper()
	for _, r := range keys {
		d.PressKey(r)
	}
}

// PressSpace sends the space bar.
func (d *Driver) PressSpace() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

// PressEnter sends the Enter key.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyEnter})
}

// PressEsc sends the Escape key.
func (d *Driver) PressEsc() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyEsc})
}

// PressCtrlC sends Ctrl+C.
func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyCtrlC})
}

// PressUp sends the Up arrow key.
func (d *Driver) PressUp() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyUp})
}

// PressDown sends the Down arrow key.
func (d *Driver) PressDown() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyDown})
}

// Type sends a string character by character as individual key events.
// Spaces are sent as the space key, as a real terminal does.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		if r == ' ' {
			d.PressSpace()
			continue
		}
		d.PressKey(r)
	}
}

// ── Rendering ────────────────────────────────────────────────────────────────

// View returns the full rendered output of the model.
func (d *Driver) View() string {
	return d.Model.View()
}

// PlainView returns View with ANSI escape sequences removed.
func (d *Driver) PlainView() string {
	return StripANSI(d.View())
}

// ViewContains reports whether the plain view contains s.
func (d *Driver) ViewContains(s string) bool {
	return strings.Contains(d.PlainView(), s)
}

// Line returns the first plain view line containing s, or "".
func (d *Driver) Line(s string) string {
	for _, l := range strings.Split(d.PlainView(), "\n") {
		if strings.Contains(l, s) {
			return l
		}
	}
	return ""
}

// StripANSI removes ANSI escape sequences.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// ── Command draining ─────────────────────────────────────────────────────────

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := execCmdWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, subCmd := range msg {
			d.drainCmd(subCmd, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, nextCmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(nextCmd, depth+1)
}

// execCmdWithTimeout runs a tea.Cmd in a goroutine with a timeout.
// Returns nil if the Cmd doesn't complete within cmdTimeout.
func execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink detects cursor blink messages from the bubbles/cursor package.
// These are unexported types (initialBlinkMsg, BlinkMsg) that can chain
// into blocking timer Cmds when processed.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
