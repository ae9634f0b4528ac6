package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/app"
	"github.com/spf13/cobra"
)

// runTUI opens the interactive dashboard in the alternate screen and
// blocks until the user quits or the command context ends.
func runTUI(cmd *cobra.Command, a *App, view app.DashboardView) error {
	ctx := cmd.Context()
	p := tea.NewProgram(
		newAppModel(ctx, a, view),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
