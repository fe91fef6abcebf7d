package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/danicpp/course-advisor/internal/catalog"
	"github.com/danicpp/course-advisor/internal/domain"
	"github.com/danicpp/course-advisor/internal/session"
	"github.com/danicpp/course-advisor/internal/timetable"
	"github.com/danicpp/course-advisor/internal/university"
)

// CatalogAdmin is the write side of the catalog, used by catalog load.
type CatalogAdmin interface {
	ReplaceCatalog(ctx context.Context, f *catalog.File) error
}

// RemoteConflictChecker asks the university backend for a second opinion
// on a candidate course. Optional; nil when no endpoint is configured.
type RemoteConflictChecker interface {
	CheckConflict(ctx context.Context, candidate *domain.Course, schedule []*domain.Course) (*university.ConflictCheck, error)
}

// App holds references to everything CLI commands need.
type App struct {
	Catalog      catalog.Repository
	CatalogAdmin CatalogAdmin
	Generator    session.RoadmapGenerator
	Registrar    session.Registrar
	Conflicts    RemoteConflictChecker

	Grid timetable.Config

	// IsInteractive reports whether stdin is a terminal; it gates the
	// planner TUI and interactive forms.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "advisor" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "advisor",
		Short: "Semester planner and degree roadmap advisor",
	}

	root.AddCommand(
		newCatalogCmd(app),
		newPlanCmd(app),
		newRoadmapCmd(app),
		newProfileCmd(app),
	)

	return root
}
