package formatter

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/danicpp/course-advisor/internal/domain"
	"github.com/danicpp/course-advisor/internal/timetable"
)

// Terminal grid resolution: two rows per hour, one per half-hour slot.
const rowsPerHour = 2

const dayColWidth = 12

// FormatTimetable renders positioned blocks as a weekly grid, one column
// per teaching day with half-hour rows. Blocks shorter than half an hour
// still occupy one row.
func FormatTimetable(blocks []timetable.PositionedBlock, cfg timetable.Config) string {
	if cfg.UnitsPerHour <= 0 || cfg.DayEnd <= cfg.DayStart {
		cfg = timetable.DefaultConfig()
	}

	startHour := cfg.DayStart / 100
	endHour := (cfg.DayEnd + 99) / 100
	rowCount := (endHour - startHour) * rowsPerHour
	if rowCount <= 0 {
		return ""
	}

	// grid[day][row] holds the rendered cell, empty string for free slots.
	grid := make(map[domain.Weekday][]string)
	for _, day := range domain.Weekdays {
		grid[day] = make([]string, rowCount)
	}

	for _, b := range blocks {
		col, ok := grid[b.Day]
		if !ok {
			continue
		}
		top := int(b.Offset * rowsPerHour / cfg.UnitsPerHour)
		span := int(math.Ceil(b.Height * rowsPerHour / cfg.UnitsPerHour))
		if span < 1 {
			span = 1
		}
		style := CategoryStyle(domain.CategoryOf(b.CourseID))
		for r := top; r < top+span && r < rowCount; r++ {
			if r == top {
				col[r] = style.Render(fitCell(b.CourseID))
			} else {
				col[r] = style.Render(fitCell("·"))
			}
		}
	}

	var b strings.Builder

	b.WriteString(strings.Repeat(" ", 6))
	for _, day := range domain.Weekdays {
		b.WriteString(StyleHeader.Render(padCell(string(day))))
	}
	b.WriteString("\n")

	for r := 0; r < rowCount; r++ {
		minutes := (startHour*60 + r*60/rowsPerHour)
		label := "     "
		if r%rowsPerHour == 0 {
			label = Clock(minutes/60*100 + minutes%60)
		}
		b.WriteString(Dim(label) + " ")
		for _, day := range domain.Weekdays {
			cell := grid[day][r]
			if cell == "" {
				cell = Dim(padCell("·"))
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func fitCell(s string) string {
	if len(s) > dayColWidth-1 {
		s = s[:dayColWidth-1]
	}
	return padCell(s)
}

func padCell(s string) string {
	if pad := dayColWidth - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
