package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/wbs/internal/config"
	"github.com/alexanderramin/wbs/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the session shared by every command. Checklist is filled in by
// the root command's pre-run hook unless a caller (tests) already set it.
type App struct {
	Checklist service.ChecklistService
	Observer  service.UseCaseObserver

	// IsInteractive reports whether the root command may take over the
	// terminal. Nil means never.
	IsInteractive func() bool

	// RunTUI runs the interactive program. Nil uses a full-screen
	// bubbletea program.
	RunTUI func(m tea.Model) error

	closers []io.Closer
}

// Close releases resources opened during startup, such as the log file.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// NewRootCmd creates the top-level "wbs" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "wbs [csv-file]",
		Short: "Interactive WBS progress checklist",
		Long: `Load a Work Breakdown Structure (phases and tasks) from a Gantt CSV
export and tick off progress in a collapsible checklist.

Without a terminal the checklist is printed instead.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.prepare(cmd.Context(), cmd, args, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return printChecklist(cmd.OutOrStdout(), app, false)
			}
			return app.runTUI()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
	}

	flags.bind(root.PersistentFlags())

	root.AddCommand(
		newShowCmd(app),
		newStatusCmd(app),
	)

	return root
}

// prepare resolves configuration (defaults, file, env, flags, positional
// file argument), opens the log and loads the checklist once.
func (a *App) prepare(ctx context.Context, cmd *cobra.Command, args []string, flags *rootFlags) error {
	if a.Checklist != nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	flags.apply(cmd.Flags(), cfg)
	if len(args) > 0 {
		cfg.File = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if a.Observer == nil {
		obs, closer, err := openLogObserver(cfg.Log)
		if err != nil {
			return err
		}
		a.Observer = obs
		if closer != nil {
			a.closers = append(a.closers, closer)
		}
	}

	a.Checklist = service.LoadChecklist(ctx, service.LoadRequest{
		Path:   cfg.File,
		Format: cfg.Format,
		Title:  cfg.Title,
	}, a.Observer)
	return nil
}

func (a *App) runTUI() error {
	m := newAppModel(a)
	if a.RunTUI != nil {
		return a.RunTUI(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// openLogObserver opens the use-case log named in cfg. The terminal
// belongs to the UI, so there is no stderr fallback: no file, no log.
func openLogObserver(cfg config.LogConfig) (service.UseCaseObserver, io.Closer, error) {
	if cfg.File == "" {
		return service.NoopUseCaseObserver{}, nil, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return service.NewLogUseCaseObserver(f, service.LogOptions{
		Level:  cfg.Level,
		Format: cfg.Format,
	}), f, nil
}
