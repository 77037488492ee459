package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// refreshViewMsg is delivered synchronously to every view on the stack
// once a form closes, so each one re-reads the checklist before the next
// frame.
type refreshViewMsg struct{}

// cmdOutputMsg carries a one-line status message (action result or
// error) shown above the key hints until the next key press.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// outputCmd returns a tea.Cmd that shows s in the message line.
func outputCmd(s string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

// wizardCompleteOutput returns a wizardCompleteMsg that displays a message string.
func wizardCompleteOutput(msg string) tea.Msg {
	return wizardCompleteMsg{nextCmd: outputCmd(msg)}
}
