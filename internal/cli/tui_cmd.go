package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive planner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}
}

// runTUI loads the catalog, starts a session and hands the terminal to
// the planner until the user quits.
func runTUI(cmd *cobra.Command, app *App) error {
	cat, err := loadCatalog(cmd, app)
	if err != nil {
		return err
	}
	planner, err := app.NewPlanner(cmd.Context())
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		newAppModel(app, cat, planner),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err = p.Run()
	return err
}
