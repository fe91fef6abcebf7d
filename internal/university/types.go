// Package university is the HTTP client for the university backend: the
// course catalog, the roadmap generator, and the registration service.
// The planner core never depends on this package directly; the session
// talks to it through ports.
package university

import "github.com/danicpp/course-advisor/internal/domain"

// slotPayload mirrors one CourseSchedule row on the wire.
type slotPayload struct {
	Day   string `json:"day"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// coursePayload mirrors one catalog entry on the wire.
type coursePayload struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Credits    int           `json:"credits"`
	Difficulty int           `json:"difficulty"`
	Prereqs    []string      `json:"prereqs,omitempty"`
	Schedule   []slotPayload `json:"schedule"`
}

func toCoursePayload(c *domain.Course) coursePayload {
	p := coursePayload{
		ID:         c.ID,
		Name:       c.Name,
		Credits:    c.Credits,
		Difficulty: c.Difficulty,
		Prereqs:    c.Prereqs,
		Schedule:   make([]slotPayload, 0, len(c.Slots)),
	}
	for _, s := range c.Slots {
		p.Schedule = append(p.Schedule, slotPayload{Day: string(s.Day), Start: s.Start, End: s.End})
	}
	return p
}

func (p coursePayload) toDomain() *domain.Course {
	c := &domain.Course{
		ID:         p.ID,
		Name:       p.Name,
		Credits:    p.Credits,
		Difficulty: p.Difficulty,
		Prereqs:    p.Prereqs,
	}
	for _, s := range p.Schedule {
		c.Slots = append(c.Slots, domain.MeetingSlot{
			Day: domain.Weekday(s.Day), Start: s.Start, End: s.End,
		})
	}
	return c
}

// PathRequest asks the roadmap generator for a multi-semester plan.
type PathRequest struct {
	RollNumber      string
	PassedCourseIDs []string
	Schedule        []*domain.Course
	Strategy        domain.Strategy
}

// PlanCourse is one (id, name) pair inside a roadmap semester entry.
type PlanCourse struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
}

// SemesterPlan is one semester entry of a generated roadmap. Produced and
// validated entirely by the generator; the core relays it opaquely.
type SemesterPlan struct {
	Semester     int          `json:"semester"`
	Reason       string       `json:"reason"`
	Courses      []PlanCourse `json:"courses"`
	TotalCredits int          `json:"total_credits"`
}

// Plan is the full roadmap: an ordered sequence of semester entries.
type Plan struct {
	Strategy  domain.Strategy
	Semesters []SemesterPlan
}

// CourseIDs returns the course IDs of one semester entry, in plan order.
func (s SemesterPlan) CourseIDs() []string {
	ids := make([]string, len(s.Courses))
	for i, c := range s.Courses {
		ids[i] = c.CourseID
	}
	return ids
}

// Registration submits a set of courses under a semester label.
type Registration struct {
	RollNumber    string
	CourseIDs     []string
	SemesterLabel string
}

// ConflictCheck is the server-side answer of the delegated conflict check.
type ConflictCheck struct {
	Conflict bool   `json:"conflict"`
	Message  string `json:"message"`
}
