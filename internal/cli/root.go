package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/courseplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings shared by all CLI commands.
type App struct {
	Catalog service.CatalogService

	// Observer receives use-case events from planner sessions.
	Observer service.UseCaseObserver

	// Source names where the catalog is loaded from, for display.
	Source string
	// DBPath is the SQLite store written by "catalog import".
	DBPath string
	// Concentration preselects a concentration in every new session.
	Concentration string

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

// NewPlanner starts an empty planning session over the loaded catalog,
// applying the configured default concentration.
func (a *App) NewPlanner(ctx context.Context) (service.PlannerService, error) {
	cat, err := a.Catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	p := service.NewPlannerService(cat, a.Observer)
	if a.Concentration != "" {
		if _, err := p.SetConcentration(ctx, a.Concentration); err != nil {
			return nil, fmt.Errorf("default concentration: %w", err)
		}
	}
	return p, nil
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "courseplan" command and registers all
// subcommands against the provided App. Run without arguments on a terminal
// it opens the planner TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "courseplan",
		Short: "Plan a course schedule against degree requirements",
		Long: `courseplan assigns catalog courses to the slots of a degree plan:
one Area, Tech, Econ and Core course, up to three concentration electives
and up to three general electives.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newCoursesCmd(app),
		newPlanCmd(app),
		newCatalogCmd(app),
		newTUICmd(app),
	)

	return root
}
