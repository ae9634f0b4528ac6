package cli

import (
	"errors"
	"time"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/app"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/source"
	"github.com/spf13/cobra"
)

// App holds the use cases and settings shared by every command.
type App struct {
	Dashboard app.DashboardUseCase
	Convert   app.ConvertUseCase

	// LoadErr is the error from the initial load, if any. Plain commands
	// fail with it; the TUI shows it above an empty dashboard.
	LoadErr error

	// Output is the format used when --output is not given.
	Output string

	// Changes delivers source change notifications while watching.
	// Nil disables live reload in the TUI.
	Changes <-chan source.Change

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// Now is the clock used for relative timestamps. Nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// loaded returns the current view, or an error when no snapshot is loaded.
func (a *App) loaded(view app.DashboardView) error {
	if view.Loaded {
		return nil
	}
	if a.LoadErr != nil {
		return a.LoadErr
	}
	return errors.New("no dashboard data loaded")
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "tracker" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	filters := newFilterFlags()

	root := &cobra.Command{
		Use:   "tracker",
		Short: "Project portfolio dashboard",
		Long: `Show the project portfolio dashboard: KPIs, status overview,
lifecycle stages and the project list, narrowed by filters.

With a terminal attached, "tracker" opens the interactive dashboard.
Otherwise it prints the dashboard once.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				view, err := filters.apply(cmd, app.Dashboard)
				if err != nil {
					return err
				}
				return runTUI(cmd, app, view)
			}
			return runDashboard(cmd, app, filters)
		},
	}

	registerGlobalFlags(root.PersistentFlags())
	filters.register(root)

	root.AddCommand(
		newDashboardCmd(app, filters),
		newKPIsCmd(app, filters),
		newStatusCmd(app, filters),
		newStagesCmd(app, filters),
		newProjectsCmd(app, filters),
		newProjectCmd(app),
		newFiltersCmd(app, filters),
		newNameCmd(app),
		newConvertCmd(app),
	)

	return root
}
