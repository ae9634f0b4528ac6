package cli

import (
	"strings"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/spf13/cobra"
)

type formattedName struct {
	Identifier string `json:"identifier" yaml:"identifier"`
	Name       string `json:"name" yaml:"name"`
}

func newNameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "name <identifier>...",
		Short: "Format account identifiers as display names",
		Example: `  tracker name inayatullahm@Maaden.com.sa
  tracker name ChakraborttyG@x.com "Jane Doe"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]formattedName, 0, len(args))
			for _, id := range args {
				names = append(names, formattedName{Identifier: id, Name: domain.FormatManagerName(id)})
			}
			return render(cmd, app, names, func() string {
				var b strings.Builder
				for _, n := range names {
					b.WriteString(n.Name + "\n")
				}
				return b.String()
			})
		},
	}
}
