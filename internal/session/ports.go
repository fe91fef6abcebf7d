package session

import (
	"context"

	"github.com/danicpp/course-advisor/internal/university"
)

// RoadmapGenerator produces a multi-semester plan for a student. The
// generation algorithm is an external collaborator; the session consumes
// its output opaquely.
type RoadmapGenerator interface {
	GeneratePath(ctx context.Context, req university.PathRequest) (*university.Plan, error)
}

// Registrar records a set of courses against a student under a semester
// label. A nil error means the registration was accepted.
type Registrar interface {
	Register(ctx context.Context, reg university.Registration) error
}
