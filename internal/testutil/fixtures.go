package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/danicpp/course-advisor/internal/domain"
)

var testCourseCounter atomic.Int64

// Course options
type CourseOption func(*domain.Course)

func WithCredits(n int) CourseOption {
	return func(c *domain.Course) {
		c.Credits = n
	}
}

func WithDifficulty(n int) CourseOption {
	return func(c *domain.Course) {
		c.Difficulty = n
	}
}

func WithPrereqs(ids ...string) CourseOption {
	return func(c *domain.Course) {
		c.Prereqs = ids
	}
}

func WithSlot(day domain.Weekday, start, end int) CourseOption {
	return func(c *domain.Course) {
		c.Slots = append(c.Slots, domain.MeetingSlot{Day: day, Start: start, End: end})
	}
}

// NewTestCourse builds a 3-credit course with a unique ID and no meeting
// slots. Pass WithSlot to give it a weekly schedule.
func NewTestCourse(name string, opts ...CourseOption) *domain.Course {
	n := testCourseCounter.Add(1)
	c := &domain.Course{
		ID:         fmt.Sprintf("CMPC-%03d", n),
		Name:       name,
		Credits:    3,
		Difficulty: 3,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTestProfile builds a mid-degree student profile.
func NewTestProfile(rollNumber string) *domain.StudentProfile {
	return &domain.StudentProfile{
		RollNumber:      rollNumber,
		FullName:        "Test Student",
		FatherName:      "Test Parent",
		GPA:             3.1,
		CGPA:            3.0,
		CurrentSemester: 5,
	}
}
