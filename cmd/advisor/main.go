package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/danicpp/course-advisor/internal/catalog"
	"github.com/danicpp/course-advisor/internal/cli"
	"github.com/danicpp/course-advisor/internal/config"
	"github.com/danicpp/course-advisor/internal/db"
	"github.com/danicpp/course-advisor/internal/session"
	"github.com/danicpp/course-advisor/internal/timetable"
	"github.com/danicpp/course-advisor/internal/university"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	dbPath := cfg.DBPath
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".advisor", "advisor.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	repo := catalog.NewSQLiteRepository(database)

	app := &cli.App{
		Catalog:      repo,
		CatalogAdmin: repo,
		Grid: timetable.Config{
			UnitsPerHour: cfg.GridUnitsPerHour,
			DayStart:     cfg.GridDayStart,
			DayEnd:       cfg.GridDayEnd,
		},
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire the university backend when an endpoint is configured;
	// otherwise registrations are recorded locally and no roadmap
	// generator is available.
	if cfg.Endpoint != "" {
		var observer university.Observer = university.NoopObserver{}
		if cfg.LogCalls {
			observer = university.NewLogObserver(os.Stderr)
		}
		client := university.NewClient(university.Config{
			Endpoint:  cfg.Endpoint,
			TimeoutMs: cfg.TimeoutMs,
		}, observer)

		app.Generator = client
		app.Registrar = client
		app.Conflicts = client
	} else {
		app.Registrar = catalog.NewLocalRegistrar(repo)
		app.Generator = unavailableGenerator{}
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// unavailableGenerator stands in when no backend endpoint is configured.
type unavailableGenerator struct{}

func (unavailableGenerator) GeneratePath(_ context.Context, _ university.PathRequest) (*university.Plan, error) {
	return nil, fmt.Errorf("roadmap generation needs a university endpoint (set ADVISOR_ENDPOINT): %w", university.ErrUnavailable)
}

var _ session.RoadmapGenerator = unavailableGenerator{}
