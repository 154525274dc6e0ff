package cli

import (
	"fmt"

	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCoursesCmd(app *App) *cobra.Command {
	var tags []string
	var text string

	cmd := &cobra.Command{
		Use:   "courses [NUMBER]",
		Short: "List catalog courses, or show one course",
		Example: `  courseplan courses --tag intel --tag is
  courseplan courses -q security
  courseplan courses NS3041`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadCatalog(cmd, app); err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				course, err := app.Catalog.Lookup(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatCourseDetail(*course))
				return nil
			}

			courses, err := app.Catalog.Search(ctx, buildQuery(tags, text))
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatCourseTable(courses, nil))
			return nil
		},
	}

	addQueryFlags(cmd.Flags(), &tags, &text)

	return cmd
}
