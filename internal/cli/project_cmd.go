package cli

import (
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/app"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/cli/formatter"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectsCmd(a *App, filters *filterFlags) *cobra.Command {
	var tab string

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List the filtered projects, optionally narrowed by a tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := filters.apply(cmd, a.Dashboard)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("tab") {
				if view, err = a.Dashboard.SetTab(cmd.Context(), tab); err != nil {
					return err
				}
			}
			if err := a.loaded(view); err != nil {
				return err
			}
			return render(cmd, a, app.NewProjectRows(view.TabProjects), func() string {
				return formatter.FormatTabs(view.Tab) + "\n\n" + formatter.FormatProjectTable(view.TabProjects)
			})
		},
	}

	cmd.Flags().StringVar(&tab, "tab", string(domain.TabAll), "project tab: All, OnHold, Delayed, OnTrack or Closing")
	return cmd
}

func newProjectCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "project <id>",
		Short: "Show the full detail of one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loaded(a.Dashboard.View()); err != nil {
				return err
			}
			p, err := a.Dashboard.Project(args[0])
			if err != nil {
				return err
			}
			detail := domain.ProjectDetail(*p)
			return render(cmd, a, detail, func() string {
				return formatter.FormatProjectDetail(detail)
			})
		},
	}
}
