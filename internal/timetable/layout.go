// Package timetable projects weekly meeting slots onto a 2-D display grid:
// a day column plus a vertical offset and height in scale-independent grid
// units.
//
// Layout assumes its input went through the conflict checker, so it never
// re-verifies overlap. Courses that bypassed the checker (the roadmap
// acceptance path) may produce overlapping blocks; that renders as stacked
// blocks but never fails.
package timetable

import (
	"fmt"

	"github.com/danicpp/course-advisor/internal/domain"
)

// Config holds the display parameters of the grid. These are presentation
// values, not domain invariants.
type Config struct {
	// UnitsPerHour scales minutes to grid units. The default layout
	// renders at 50 units per hour.
	UnitsPerHour float64

	// DayStart and DayEnd bound the visible window, as HHMM clock
	// values. Slots are clipped to the window; a slot entirely outside
	// it produces no block.
	DayStart int
	DayEnd   int
}

// DefaultConfig returns the standard 08:00-17:00 window at 50 units/hour.
func DefaultConfig() Config {
	return Config{UnitsPerHour: 50, DayStart: 800, DayEnd: 1700}
}

// GridHeight returns the total height of one day column in grid units.
func (c Config) GridHeight() float64 {
	return float64(minutesOf(c.DayEnd)-minutesOf(c.DayStart)) * c.UnitsPerHour / 60
}

// PositionedBlock is one rendered meeting: a course slot placed on the grid.
type PositionedBlock struct {
	CourseID string
	Day      domain.Weekday
	Offset   float64 // grid units from the top of the day column
	Height   float64 // grid units
	Label    string
}

// Layout emits one block per (course, slot) pair, in course order then slot
// order. A course with several weekly meetings yields several blocks
// carrying the same course ID.
func Layout(courses []*domain.Course, cfg Config) []PositionedBlock {
	if cfg.UnitsPerHour <= 0 || cfg.DayEnd <= cfg.DayStart {
		cfg = DefaultConfig()
	}

	var blocks []PositionedBlock
	for _, c := range courses {
		for _, slot := range c.Slots {
			if b, ok := place(c.ID, slot, cfg); ok {
				blocks = append(blocks, b)
			}
		}
	}
	return blocks
}

func place(courseID string, slot domain.MeetingSlot, cfg Config) (PositionedBlock, bool) {
	start := clampClock(slot.Start, cfg.DayStart, cfg.DayEnd)
	end := clampClock(slot.End, cfg.DayStart, cfg.DayEnd)
	if end <= start {
		return PositionedBlock{}, false
	}

	scale := cfg.UnitsPerHour / 60
	top := float64(minutesOf(start) - minutesOf(cfg.DayStart))
	height := float64(minutesOf(end) - minutesOf(start))

	return PositionedBlock{
		CourseID: courseID,
		Day:      slot.Day,
		Offset:   top * scale,
		Height:   height * scale,
		Label:    fmt.Sprintf("%s %d-%d", courseID, slot.Start, slot.End),
	}, true
}

// minutesOf converts an HHMM clock value to minutes since midnight.
func minutesOf(hhmm int) int {
	return (hhmm/100)*60 + hhmm%100
}

func clampClock(hhmm, lo, hi int) int {
	if hhmm < lo {
		return lo
	}
	if hhmm > hi {
		return hi
	}
	return hhmm
}
