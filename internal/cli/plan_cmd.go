package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/danicpp/course-advisor/internal/cli/formatter"
	"github.com/danicpp/course-advisor/internal/domain"
	"github.com/danicpp/course-advisor/internal/planner"
	"github.com/danicpp/course-advisor/internal/report"
	"github.com/danicpp/course-advisor/internal/session"
)

// newSession loads a student's record and opens a planning session.
func newSession(ctx context.Context, app *App, rollNumber string) (*session.PlanningSession, error) {
	profile, err := app.Catalog.Profile(ctx, rollNumber)
	if err != nil {
		return nil, err
	}
	passed, err := app.Catalog.PassedCourseIDs(ctx, rollNumber)
	if err != nil {
		return nil, err
	}
	return session.New(*profile, passed, app.Generator, app.Registrar), nil
}

// resolveCourses maps course IDs to catalog entries, case-insensitively.
func resolveCourses(ctx context.Context, app *App, ids []string) ([]*domain.Course, error) {
	all, err := app.Catalog.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Course, len(all))
	for _, c := range all {
		byID[strings.ToUpper(c.ID)] = c
	}

	courses := make([]*domain.Course, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[strings.ToUpper(strings.TrimSpace(id))]
		if !ok {
			return nil, fmt.Errorf("course not found in catalog: %q", id)
		}
		courses = append(courses, c)
	}
	return courses, nil
}

func newPlanCmd(app *App) *cobra.Command {
	var student, strategy, reportPath string
	var courseList []string
	var confirm, showTimetable bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a semester schedule",
		Long: `Build a semester schedule for a student.

With a terminal and no --courses flag, opens the interactive planner.
Otherwise adds the given courses one by one, reporting each conflict
or credit-limit rejection, and prints the resulting selection.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			sess, err := newSession(ctx, app, student)
			if err != nil {
				return err
			}
			if strategy != "" {
				sess.SetStrategy(domain.Strategy(strategy))
			}

			if len(courseList) == 0 && app.IsInteractive != nil && app.IsInteractive() {
				courses, err := app.Catalog.ListCourses(ctx)
				if err != nil {
					return err
				}
				model := newPlannerModel(app, sess, courses)
				_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
				return err
			}

			courses, err := resolveCourses(ctx, app, courseList)
			if err != nil {
				return err
			}

			for _, c := range courses {
				if err := sess.AddCourse(c); err != nil {
					fmt.Println(formatter.StyleRed.Render("✗ " + sess.LastError()))
					sess.DismissError()
					continue
				}
				fmt.Println(formatter.StyleGreen.Render("✓ " + c.ID + " added"))
			}

			fmt.Println(formatter.FormatDraft(sess.Draft()))
			if showTimetable {
				fmt.Println(formatter.FormatTimetable(sess.Blocks(app.Grid), app.Grid))
			}

			if confirm {
				sp := formatter.NewSpinner("Submitting registration...")
				sp.Start()
				err := sess.Confirm(ctx)
				sp.Stop()
				if err != nil {
					return err
				}
				fmt.Println(formatter.StyleGreen.Render("Schedule locked and registered."))
			}

			if reportPath != "" {
				f, err := os.Create(reportPath)
				if err != nil {
					return fmt.Errorf("creating report file: %w", err)
				}
				defer f.Close()
				if err := report.WriteSchedule(f, sess.Draft()); err != nil {
					return err
				}
				fmt.Printf("Report written to %s\n", reportPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&student, "student", "", "Student roll number")
	cmd.Flags().StringSliceVar(&courseList, "courses", nil, "Course IDs to add, in order")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Roadmap strategy (balanced, aggressive, relaxed)")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "Submit the selection for registration")
	cmd.Flags().BoolVar(&showTimetable, "timetable", false, "Print the weekly timetable grid")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write the selection as a CSV report to this file")
	_ = cmd.MarkFlagRequired("student")

	cmd.AddCommand(newPlanCheckCmd(app))

	return cmd
}

func newPlanCheckCmd(app *App) *cobra.Command {
	var against []string
	var remote bool

	cmd := &cobra.Command{
		Use:   "check COURSE",
		Short: "Check whether a course fits a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resolved, err := resolveCourses(ctx, app, append([]string{args[0]}, against...))
			if err != nil {
				return err
			}
			candidate, schedule := resolved[0], resolved[1:]

			if remote {
				if app.Conflicts == nil {
					return fmt.Errorf("no university endpoint configured")
				}
				result, err := app.Conflicts.CheckConflict(ctx, candidate, schedule)
				if err != nil {
					return err
				}
				if result.Conflict {
					fmt.Println(formatter.StyleRed.Render("✗ " + result.Message))
				} else {
					fmt.Println(formatter.StyleGreen.Render("✓ no conflict"))
				}
				return nil
			}

			draft := domain.NewDraftSchedule()
			for _, c := range schedule {
				if err := draft.Add(c); err != nil {
					return fmt.Errorf("schedule does not fit together: %w", err)
				}
			}

			decision := planner.CheckAdd(candidate, draft)
			if decision.Accepted {
				fmt.Println(formatter.StyleGreen.Render("✓ " + candidate.ID + " fits"))
				return nil
			}
			fmt.Println(formatter.StyleRed.Render("✗ " + decision.Message))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&against, "against", nil, "Course IDs already on the schedule")
	cmd.Flags().BoolVar(&remote, "remote", false, "Ask the university backend instead of checking locally")

	return cmd
}
