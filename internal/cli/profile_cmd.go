package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danicpp/course-advisor/internal/cli/formatter"
)

func newProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile ROLL_NUMBER",
		Short: "Show a student profile with passed courses and registrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			roll := args[0]

			p, err := app.Catalog.Profile(ctx, roll)
			if err != nil {
				return err
			}
			passed, err := app.Catalog.PassedCourseIDs(ctx, roll)
			if err != nil {
				return err
			}
			regs, err := app.Catalog.Registrations(ctx, roll)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatProfile(p, passed, regs))
			return nil
		},
	}
}
