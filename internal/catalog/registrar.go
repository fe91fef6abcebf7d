package catalog

import (
	"context"
	"fmt"

	"github.com/danicpp/course-advisor/internal/university"
)

// LocalRegistrar records registrations in the local database instead of
// submitting them to the university backend. It is used when no backend
// endpoint is configured.
type LocalRegistrar struct {
	repo *SQLiteRepository
}

// NewLocalRegistrar creates a LocalRegistrar backed by repo.
func NewLocalRegistrar(repo *SQLiteRepository) *LocalRegistrar {
	return &LocalRegistrar{repo: repo}
}

func (r *LocalRegistrar) Register(ctx context.Context, reg university.Registration) error {
	if err := r.repo.RecordRegistration(ctx, reg.RollNumber, reg.CourseIDs, reg.SemesterLabel); err != nil {
		return fmt.Errorf("recording registration locally: %w", err)
	}
	return nil
}
