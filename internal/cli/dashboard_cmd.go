package cli

import (
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/app"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// dashboardOutput is the structured form of the whole dashboard.
type dashboardOutput struct {
	app.DashboardView `yaml:",inline"`
	Projects          []app.ProjectRow `json:"projects" yaml:"projects"`
}

func newDashboardCmd(app *App, filters *filterFlags) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show KPIs, status overview, lifecycle stages and projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				view, err := filters.apply(cmd, app.Dashboard)
				if err != nil {
					return err
				}
				return runTUI(cmd, app, view)
			}
			return runDashboard(cmd, app, filters)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "open the interactive dashboard")
	return cmd
}

func runDashboard(cmd *cobra.Command, a *App, filters *filterFlags) error {
	view, err := filters.apply(cmd, a.Dashboard)
	if err != nil {
		return err
	}
	if err := a.loaded(view); err != nil {
		return err
	}
	out := dashboardOutput{DashboardView: view, Projects: app.NewProjectRows(view.TabProjects)}
	return render(cmd, a, out, func() string {
		return formatter.FormatDashboard(view, a.now())
	})
}
