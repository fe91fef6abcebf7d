package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/danicpp/course-advisor/internal/cli/formatter"
	"github.com/danicpp/course-advisor/internal/domain"
)

func newRoadmapCmd(app *App) *cobra.Command {
	var student, strategy string
	var courseList []string
	var accept int

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Generate a degree roadmap",
		Long: `Generate a semester-by-semester degree roadmap from the student's
passed courses and current selection. Semesters from the generated plan
can be registered directly with --accept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			sess, err := newSession(ctx, app, student)
			if err != nil {
				return err
			}

			if len(courseList) > 0 {
				courses, err := resolveCourses(ctx, app, courseList)
				if err != nil {
					return err
				}
				for _, c := range courses {
					if err := sess.AddCourse(c); err != nil {
						return fmt.Errorf("building current selection: %s", sess.LastError())
					}
				}
			}

			if strategy == "" && app.IsInteractive != nil && app.IsInteractive() {
				if err := strategyForm(&strategy).Run(); err != nil {
					return err
				}
			}
			if strategy != "" {
				if !domain.ValidStrategies[strategy] {
					return fmt.Errorf("unknown strategy %q (want balanced, aggressive, or relaxed)", strategy)
				}
				sess.SetStrategy(domain.Strategy(strategy))
			}

			sp := formatter.NewSpinner("Generating roadmap...")
			sp.Start()
			err = sess.GenerateRoadmap(ctx)
			sp.Stop()
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatRoadmap(sess.Plan()))

			if accept > 0 {
				if err := sess.AcceptSemester(ctx, accept-1); err != nil {
					return err
				}
				fmt.Println(formatter.StyleGreen.Render(fmt.Sprintf("Semester %d registered.", accept)))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&student, "student", "", "Student roll number")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Roadmap strategy (balanced, aggressive, relaxed)")
	cmd.Flags().StringSliceVar(&courseList, "courses", nil, "Course IDs already selected this semester")
	cmd.Flags().IntVar(&accept, "accept", 0, "Register the Nth semester of the generated plan")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}

// strategyForm returns a themed single-field form for picking a strategy.
func strategyForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Roadmap strategy").
				Options(
					huh.NewOption("Balanced: steady credit load", string(domain.StrategyBalanced)),
					huh.NewOption("Aggressive: front-load the hard courses", string(domain.StrategyAggressive)),
					huh.NewOption("Relaxed: lighter semesters", string(domain.StrategyRelaxed)),
				).
				Value(value),
		),
	).WithTheme(advisorHuhTheme()).WithShowHelp(false)
}
