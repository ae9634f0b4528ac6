package cli

import (
	"fmt"
	"strings"

	appcore "github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/app"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newConvertCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "convert <tracker-export.csv>",
		Short: "Convert a tracker CSV export into a dashboard data file",
		Long: `Convert a "BE Projects Tracker" CSV export into dashboard data.

The output format follows the extension of --out: .json writes a dashboard
document, .db or .sqlite writes a snapshot database. Without --out the
document is written next to the input with a .json extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Convert == nil {
				return fmt.Errorf("convert is not available")
			}
			res, err := app.Convert.Convert(cmd.Context(), appcore.ConvertRequest{Input: args[0], Output: out})
			if err != nil {
				return err
			}
			return render(cmd, app, res, func() string {
				var b strings.Builder
				fmt.Fprintf(&b, "%s %s projects to %s (%s)\n",
					formatter.StyleGreen.Render("Wrote"), formatter.FormatCount(res.Projects), res.Output, res.Format)
				for _, w := range res.Warnings {
					b.WriteString(formatter.StyleYellow.Render("  WARNING: "+w) + "\n")
				}
				return b.String()
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.json, .db or .sqlite)")
	return cmd
}
