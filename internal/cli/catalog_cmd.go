package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danicpp/course-advisor/internal/catalog"
	"github.com/danicpp/course-advisor/internal/cli/formatter"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse and manage the course catalog",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogLoadCmd(app),
	)

	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog courses by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Catalog.ListCourses(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatCourseList(courses))
			return nil
		},
	}
}

func newCatalogLoadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "load FILE",
		Short: "Replace the catalog from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := catalog.LoadFile(args[0])
			if err != nil {
				return err
			}
			if errs := catalog.ValidateFile(f); len(errs) > 0 {
				for _, e := range errs {
					fmt.Println(formatter.StyleRed.Render("✗ " + e.Error()))
				}
				return fmt.Errorf("catalog file has %d problem(s)", len(errs))
			}
			if err := app.CatalogAdmin.ReplaceCatalog(context.Background(), f); err != nil {
				return err
			}
			fmt.Printf("Loaded %d courses and %d students from %s\n", len(f.Courses), len(f.Students), args[0])
			return nil
		},
	}
}
