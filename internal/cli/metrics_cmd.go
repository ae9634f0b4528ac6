package cli

import (
	"fmt"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/cli/formatter"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/telemetry"
	"github.com/spf13/cobra"
)

const chartWidth = 40

func newKPIsCmd(app *App, filters *filterFlags) *cobra.Command {
	var textfile string

	cmd := &cobra.Command{
		Use:   "kpis",
		Short: "Show the KPI cards for the filtered projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := filters.apply(cmd, app.Dashboard)
			if err != nil {
				return err
			}
			if err := app.loaded(view); err != nil {
				return err
			}
			if textfile != "" {
				if err := telemetry.WriteTextfile(textfile, view); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote metrics to %s\n", textfile)
			}
			return render(cmd, app, view.Metrics.KPIs, func() string {
				return formatter.FormatKPICards(view.Metrics.KPIs, 0) + "\n"
			})
		},
	}

	cmd.Flags().StringVar(&textfile, "prom-textfile", "", "also write the metrics in Prometheus textfile format to this path")
	return cmd
}

func newStatusCmd(app *App, filters *filterFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the status overview for the filtered projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := filters.apply(cmd, app.Dashboard)
			if err != nil {
				return err
			}
			if err := app.loaded(view); err != nil {
				return err
			}
			return render(cmd, app, view.Metrics.StatusOverview, func() string {
				return formatter.FormatStatusOverview(view.Metrics.StatusOverview, chartWidth)
			})
		},
	}
}

func newStagesCmd(app *App, filters *filterFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stages",
		Short: "Show the lifecycle stage histogram for the filtered projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := filters.apply(cmd, app.Dashboard)
			if err != nil {
				return err
			}
			if err := app.loaded(view); err != nil {
				return err
			}
			return render(cmd, app, view.Metrics.LifecycleStages, func() string {
				return formatter.FormatLifecycleChart(view.Metrics.LifecycleStages, chartWidth)
			})
		},
	}
}
