package cli

import (
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newFiltersCmd(app *App, filters *filterFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List every filter with its options and current selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := filters.apply(cmd, app.Dashboard)
			if err != nil {
				return err
			}
			if err := app.loaded(view); err != nil {
				return err
			}
			return render(cmd, app, view.Filters, func() string {
				return formatter.FormatFilterOptions(view.Filters)
			})
		},
	}
}
