package session

import "errors"

var (
	// ErrEmptyDraft indicates a confirm attempt on a draft with no
	// selected courses.
	ErrEmptyDraft = errors.New("draft schedule is empty")

	// ErrNoPlan indicates a roadmap operation while no generated plan
	// is held by the session.
	ErrNoPlan = errors.New("no roadmap plan available")

	// ErrNoSuchSemester indicates an accept of a semester index outside
	// the held plan.
	ErrNoSuchSemester = errors.New("no such semester in roadmap plan")
)

// RejectedAddError carries the conflict checker's rejection of an add.
type RejectedAddError struct {
	Message string
}

func (e *RejectedAddError) Error() string {
	return e.Message
}
