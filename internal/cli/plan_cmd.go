package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	"github.com/alexanderramin/courseplan/internal/service"
	"github.com/spf13/cobra"
)

func newPlanCmd(a *App) *cobra.Command {
	var concentration string
	var steps []planStep

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Assign courses in one session and print the schedule",
		Long: `Run a single in-memory planning session. Steps from --assign and --auto
run in the order given. A rejected step is reported and the session
continues; the final schedule is always printed.`,
		Example: `  courseplan plan -c intel -a NS3000:AREA -a NS3041:CORE --auto NS3042
  courseplan plan --auto CS3600 --auto IS3010`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadCatalog(cmd, a); err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			planner, err := a.NewPlanner(ctx)
			if err != nil {
				return err
			}
			if concentration != "" {
				if _, err := planner.SetConcentration(ctx, concentration); err != nil {
					return err
				}
			}

			for _, step := range steps {
				var resp *app.AssignResponse
				if step.Designation == "" {
					resp, err = planner.AutoAssign(ctx, step.Course)
				} else {
					resp, err = planner.Assign(ctx, app.AssignRequest{
						CourseNumber: step.Course,
						Designation:  step.Designation,
					})
				}
				switch {
				case err == nil:
					fmt.Fprint(out, formatter.FormatAssignResult(resp))
				case formatter.IsRejection(err), errors.Is(err, service.ErrCourseNotFound):
					fmt.Fprint(out, formatter.FormatRejection(err))
				default:
					return err
				}
			}

			if len(steps) > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, formatter.FormatSchedule(planner.View()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&concentration, "concentration", "c", "", "Concentration for this session (TECH, INTEL, IS, MILOPS, TSV, USNP)")
	addStepFlags(cmd.Flags(), &steps)

	return cmd
}
