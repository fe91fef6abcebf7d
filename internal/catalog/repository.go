// Package catalog provides read access to the university course catalog
// and student records, backed by SQLite.
package catalog

import (
	"context"
	"errors"

	"github.com/danicpp/course-advisor/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// Repository is the read-side catalog contract the planner consumes.
type Repository interface {
	// ListCourses returns every catalog course with its meeting slots
	// and prerequisites, ordered by course ID.
	ListCourses(ctx context.Context) ([]*domain.Course, error)

	// GetCourse returns one course by ID, or ErrNotFound.
	GetCourse(ctx context.Context, id string) (*domain.Course, error)

	// Profile returns the student profile for a roll number, or
	// ErrNotFound.
	Profile(ctx context.Context, rollNumber string) (*domain.StudentProfile, error)

	// PassedCourseIDs returns the IDs of all courses the student has
	// passed, ordered by course ID.
	PassedCourseIDs(ctx context.Context, rollNumber string) ([]string, error)

	// Registrations returns the student's registration rows in
	// insertion order.
	Registrations(ctx context.Context, rollNumber string) ([]*domain.Registration, error)
}
