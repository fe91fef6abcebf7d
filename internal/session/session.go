// Package session holds the planning state machine: one PlanningSession
// per logged-in student, walking planning -> roadmap review -> back, or
// planning -> locked on a confirmed registration.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/danicpp/course-advisor/internal/domain"
	"github.com/danicpp/course-advisor/internal/planner"
	"github.com/danicpp/course-advisor/internal/timetable"
	"github.com/danicpp/course-advisor/internal/university"
	"github.com/google/uuid"
)

// currentSelectionLabel is the semester label for a directly confirmed
// draft, as opposed to an accepted roadmap semester.
const currentSelectionLabel = "Current Selection"

// PlanningSession owns one student's draft schedule and drives all state
// transitions. It is created at login, destroyed at logout, and carries
// nothing across sessions.
//
// A session is single-threaded by construction: callers process one user
// action to completion before starting the next. It is not safe for
// concurrent use, and it does not deduplicate overlapping actions; the
// surrounding UI disables controls while a collaborator call is in flight.
type PlanningSession struct {
	id      string
	profile domain.StudentProfile
	passed  []string

	state    domain.SessionState
	draft    *domain.DraftSchedule
	strategy domain.Strategy
	lastErr  string
	plan     *university.Plan

	generator RoadmapGenerator
	registrar Registrar
}

// New creates a session in the planning state with an empty draft and the
// default balanced strategy.
func New(profile domain.StudentProfile, passed []string, generator RoadmapGenerator, registrar Registrar) *PlanningSession {
	return &PlanningSession{
		id:        uuid.New().String(),
		profile:   profile,
		passed:    passed,
		state:     domain.StatePlanning,
		draft:     domain.NewDraftSchedule(),
		strategy:  domain.StrategyBalanced,
		generator: generator,
		registrar: registrar,
	}
}

// ID returns the session identifier.
func (s *PlanningSession) ID() string { return s.id }

// Profile returns the student profile the session plans for.
func (s *PlanningSession) Profile() domain.StudentProfile { return s.profile }

// State returns the current view state.
func (s *PlanningSession) State() domain.SessionState { return s.state }

// Locked reports whether the session has been confirmed and frozen.
func (s *PlanningSession) Locked() bool { return s.state == domain.StateLocked }

// Draft returns the session's draft schedule.
func (s *PlanningSession) Draft() *domain.DraftSchedule { return s.draft }

// Strategy returns the chosen roadmap generation strategy.
func (s *PlanningSession) Strategy() domain.Strategy { return s.strategy }

// SetStrategy changes the generation strategy. Unknown values fall back
// to balanced.
func (s *PlanningSession) SetStrategy(strategy domain.Strategy) {
	if !domain.ValidStrategies[string(strategy)] {
		strategy = domain.StrategyBalanced
	}
	s.strategy = strategy
}

// LastError returns the user-visible message of the most recent failure,
// or "" when none is pending.
func (s *PlanningSession) LastError() string { return s.lastErr }

// DismissError clears the pending error without retrying anything.
func (s *PlanningSession) DismissError() { s.lastErr = "" }

// Plan returns the roadmap held while in review, or nil.
func (s *PlanningSession) Plan() *university.Plan { return s.plan }

// CheckAdd runs the conflict checker against the current draft without
// mutating anything.
func (s *PlanningSession) CheckAdd(c *domain.Course) planner.Decision {
	return planner.CheckAdd(c, s.draft)
}

// AddCourse runs the candidate through the conflict checker and, on
// accept, mutates the draft. Rejections surface as the session error and
// a RejectedAddError.
func (s *PlanningSession) AddCourse(c *domain.Course) error {
	if s.Locked() {
		return s.fail(domain.ErrSessionLocked)
	}

	dec := planner.CheckAdd(c, s.draft)
	if !dec.Accepted {
		s.lastErr = dec.Message
		return &RejectedAddError{Message: dec.Message}
	}
	if dec.AlreadyPresent {
		return nil
	}
	if err := s.draft.Add(c); err != nil {
		return s.fail(err)
	}
	s.lastErr = ""
	return nil
}

// RemoveCourse drops a course from the draft and clears any pending
// error, matching the selection UI behavior.
func (s *PlanningSession) RemoveCourse(courseID string) error {
	if s.Locked() {
		return s.fail(domain.ErrSessionLocked)
	}
	if err := s.draft.Remove(courseID); err != nil {
		return s.fail(err)
	}
	s.lastErr = ""
	return nil
}

// Blocks lays the draft schedule out on the weekly grid.
func (s *PlanningSession) Blocks(cfg timetable.Config) []timetable.PositionedBlock {
	return timetable.Layout(s.draft.Courses(), cfg)
}

// Confirm submits the draft to the registrar and locks the session on
// success. Confirming an already locked session is a no-op: no
// collaborator call is made. A failed submission leaves the session in
// planning with the error surfaced.
func (s *PlanningSession) Confirm(ctx context.Context) error {
	if s.Locked() {
		return nil
	}
	if s.draft.Len() == 0 {
		return s.fail(ErrEmptyDraft)
	}

	err := s.registrar.Register(ctx, university.Registration{
		RollNumber:    s.profile.RollNumber,
		CourseIDs:     s.draft.CourseIDs(),
		SemesterLabel: currentSelectionLabel,
	})
	if err != nil {
		return s.fail(err)
	}

	s.draft.Freeze()
	s.state = domain.StateLocked
	s.lastErr = ""
	return nil
}

// GenerateRoadmap fetches a plan from the generator and moves the session
// into roadmap review. The request carries the passed courses plus the
// current draft, so the generator treats drafted courses as taken.
// Failures leave the state unchanged.
func (s *PlanningSession) GenerateRoadmap(ctx context.Context) error {
	if s.Locked() {
		return s.fail(domain.ErrSessionLocked)
	}

	plan, err := s.generator.GeneratePath(ctx, university.PathRequest{
		RollNumber:      s.profile.RollNumber,
		PassedCourseIDs: s.passed,
		Schedule:        s.draft.Courses(),
		Strategy:        s.strategy,
	})
	if err != nil {
		return s.fail(err)
	}

	s.plan = plan
	s.state = domain.StateRoadmapReview
	s.lastErr = ""
	return nil
}

// ReturnToPlanning leaves roadmap review without accepting anything and
// discards the held plan. A no-op outside review.
func (s *PlanningSession) ReturnToPlanning() {
	if s.state != domain.StateRoadmapReview {
		return
	}
	s.plan = nil
	s.state = domain.StatePlanning
}

// AcceptSemester registers the courses of one roadmap semester entry
// under an "AI Sem N" label. The generator already resolved conflicts, so
// this path deliberately bypasses the conflict checker and the credit cap
// and never touches the session's own draft or lock state.
func (s *PlanningSession) AcceptSemester(ctx context.Context, index int) error {
	if s.plan == nil {
		return s.fail(ErrNoPlan)
	}
	if index < 0 || index >= len(s.plan.Semesters) {
		return s.fail(ErrNoSuchSemester)
	}

	entry := s.plan.Semesters[index]
	err := s.registrar.Register(ctx, university.Registration{
		RollNumber:    s.profile.RollNumber,
		CourseIDs:     entry.CourseIDs(),
		SemesterLabel: fmt.Sprintf("AI Sem %d", entry.Semester),
	})
	if err != nil {
		return s.fail(err)
	}

	s.lastErr = ""
	return nil
}

// fail records err as the session's user-visible error and returns it.
func (s *PlanningSession) fail(err error) error {
	s.lastErr = userMessage(err)
	return err
}

// userMessage maps collaborator and domain errors onto the strings shown
// in the inline notification.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrSessionLocked):
		return "registration is locked for this session"
	case errors.Is(err, university.ErrUnavailable):
		return "university backend is unreachable"
	case errors.Is(err, university.ErrTimeout):
		return "university backend timed out"
	case errors.Is(err, ErrEmptyDraft):
		return "select at least one course before confirming"
	default:
		return err.Error()
	}
}
