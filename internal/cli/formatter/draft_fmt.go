package formatter

import (
	"fmt"
	"strconv"

	"github.com/danicpp/course-advisor/internal/domain"
)

// FormatDraft renders the current selection with its credit load.
func FormatDraft(draft *domain.DraftSchedule) string {
	if draft.Len() == 0 {
		return RenderBox("Current Selection", Dim("No courses selected yet."))
	}

	headers := []string{"CODE", "COURSE", "CR", "SCHEDULE"}
	rows := make([][]string, 0, draft.Len())
	for _, c := range draft.Courses() {
		rows = append(rows, []string{
			CategoryStyle(domain.CategoryOf(c.ID)).Render(c.ID),
			Bold(c.Name),
			strconv.Itoa(c.Credits),
			formatSlots(c.Slots),
		})
	}

	content := RenderTable(headers, rows) + "\n" + CreditGauge(draft.TotalCredits())
	return RenderBox("Current Selection", content)
}

// CreditGauge renders the credit load against the cap, colored by how
// close the draft is to full.
func CreditGauge(total int) string {
	text := fmt.Sprintf("%d / %d credits", total, domain.CreditCap)
	switch {
	case total >= domain.CreditCap:
		return StyleRed.Render(text)
	case total >= domain.CreditCap-3:
		return StyleYellow.Render(text)
	default:
		return StyleGreen.Render(text)
	}
}
