package domain

import "fmt"

// MeetingSlot is one weekly meeting of a course. Start and End are 24-hour
// clock times encoded as HHMM integers (900 = 09:00, 1430 = 14:30).
type MeetingSlot struct {
	Day   Weekday
	Start int
	End   int
}

// Valid reports whether the slot has a known day and a non-empty interval.
func (s MeetingSlot) Valid() bool {
	return ValidWeekdays[string(s.Day)] &&
		validClock(s.Start) && validClock(s.End) &&
		s.Start < s.End
}

// Overlaps reports whether two slots share a day and their [Start,End)
// intervals intersect.
func (s MeetingSlot) Overlaps(other MeetingSlot) bool {
	if s.Day != other.Day {
		return false
	}
	return s.Start < other.End && other.Start < s.End
}

func (s MeetingSlot) String() string {
	return fmt.Sprintf("%s %d-%d", s.Day, s.Start, s.End)
}

func validClock(hhmm int) bool {
	if hhmm < 0 || hhmm > 2359 {
		return false
	}
	return hhmm%100 < 60
}

// Course is a catalog entry. Courses are loaded once per session and
// treated as read-only thereafter.
type Course struct {
	ID         string
	Name       string
	Credits    int
	Difficulty int // 1 (easy) .. 5 (hard)

	// MinSemester is the earliest semester the course may be taken in.
	// Relayed to the roadmap generator; not enforced locally.
	MinSemester int

	// Prereqs lists prerequisite course IDs. Relayed to the roadmap
	// generator; not enforced locally.
	Prereqs []string

	// Slots holds the weekly meetings. An empty list means the course
	// schedule is TBA; TBA courses never conflict with anything.
	Slots []MeetingSlot
}

// Validate checks catalog-load invariants on a course.
func (c *Course) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("course: missing id")
	}
	if c.Name == "" {
		return fmt.Errorf("course %s: missing name", c.ID)
	}
	if c.Credits <= 0 {
		return fmt.Errorf("course %s: credits must be positive, got %d", c.ID, c.Credits)
	}
	if c.Difficulty < 1 || c.Difficulty > 5 {
		return fmt.Errorf("course %s: difficulty must be 1-5, got %d", c.ID, c.Difficulty)
	}
	for _, s := range c.Slots {
		if !s.Valid() {
			return fmt.Errorf("course %s: invalid meeting slot %s", c.ID, s)
		}
	}
	return nil
}
