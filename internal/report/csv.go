// Package report renders a draft schedule as a downloadable CSV report.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/danicpp/course-advisor/internal/domain"
)

// scheduleHeader is the report column order. Keep it stable; advisors
// feed these files into spreadsheets.
var scheduleHeader = []string{
	"Course Code",
	"Course Name",
	"Credits",
	"Day",
	"Time",
}

// WriteSchedule writes the draft's courses as CSV, one row per weekly
// meeting. Courses without a schedule get a single TBA row. A summary
// row with the total credit count closes the report.
func WriteSchedule(w io.Writer, draft *domain.DraftSchedule) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(scheduleHeader); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}

	for _, c := range draft.Courses() {
		if len(c.Slots) == 0 {
			row := []string{c.ID, c.Name, strconv.Itoa(c.Credits), "TBA", "TBA"}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing report row for %s: %w", c.ID, err)
			}
			continue
		}
		for _, s := range c.Slots {
			row := []string{
				c.ID,
				c.Name,
				strconv.Itoa(c.Credits),
				string(s.Day),
				fmt.Sprintf("%s-%s", formatClock(s.Start), formatClock(s.End)),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing report row for %s: %w", c.ID, err)
			}
		}
	}

	total := []string{"", "Total Credits", strconv.Itoa(draft.TotalCredits()), "", ""}
	if err := cw.Write(total); err != nil {
		return fmt.Errorf("writing report summary: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

// formatClock renders an HHMM integer as HH:MM.
func formatClock(hhmm int) string {
	return fmt.Sprintf("%02d:%02d", hhmm/100, hhmm%100)
}
