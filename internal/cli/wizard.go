package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wbs/internal/cli/formatter"
	"github.com/alexanderramin/wbs/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// wbsHuhTheme returns a custom huh theme using the Gruvbox palette.
func wbsHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed).SetString(" *")

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateName rejects blank and whitespace-only names.
func validateName(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s name is required", what)
		}
		return nil
	}
}

// wizardAddPhase creates the Add Phase form: a single required name.
func wizardAddPhase(name *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Phase name").
				Placeholder("Phase 4: Testing & Commissioning").
				Value(name).
				Validate(validateName("phase")),
		),
	).WithTheme(wbsHuhTheme()).WithShowHelp(false)
}

// wizardAddTask creates the Add Task form: a required name and the target
// phase. Only phases from options can be chosen; phase must already hold
// the preselected index.
func wizardAddTask(options []service.PhaseOption, phase *int, name *string) *huh.Form {
	opts := make([]huh.Option[int], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Name, o.Index))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task name").
				Placeholder("Install chiller #3").
				Value(name).
				Validate(validateName("task")),
			huh.NewSelect[int]().
				Title("Add to phase").
				Options(opts...).
				Value(phase),
		),
	).WithTheme(wbsHuhTheme()).WithShowHelp(false)
}
