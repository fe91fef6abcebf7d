package formatter

import (
	"strconv"
	"strings"

	"github.com/danicpp/course-advisor/internal/domain"
)

// FormatCourseList renders the catalog grouped into category sections.
// Categories keep their display order; courses keep catalog order.
func FormatCourseList(courses []*domain.Course) string {
	grouped := make(map[domain.Category][]*domain.Course)
	for _, c := range courses {
		cat := domain.CategoryOf(c.ID)
		grouped[cat] = append(grouped[cat], c)
	}

	var sections []string
	for _, cat := range domain.Categories {
		group := grouped[cat]
		if len(group) == 0 {
			continue
		}

		headers := []string{"CODE", "COURSE", "CR", "DIFFICULTY", "SCHEDULE"}
		rows := make([][]string, 0, len(group))
		for _, c := range group {
			rows = append(rows, []string{
				CategoryStyle(cat).Render(c.ID),
				Bold(c.Name),
				strconv.Itoa(c.Credits),
				DifficultyDots(c.Difficulty),
				formatSlots(c.Slots),
			})
		}
		sections = append(sections, RenderBox(string(cat), RenderTable(headers, rows)))
	}

	if len(sections) == 0 {
		return Dim("The catalog is empty.")
	}
	return strings.Join(sections, "\n")
}

// formatSlots renders a compact weekly schedule such as "Mon/Wed 09:00-10:30".
// Slots with different times are listed separately.
func formatSlots(slots []domain.MeetingSlot) string {
	if len(slots) == 0 {
		return Dim("TBA")
	}

	type window struct{ start, end int }
	days := make(map[window][]string)
	var order []window
	for _, s := range slots {
		w := window{s.Start, s.End}
		if _, seen := days[w]; !seen {
			order = append(order, w)
		}
		days[w] = append(days[w], string(s.Day))
	}

	var parts []string
	for _, w := range order {
		parts = append(parts, strings.Join(days[w], "/")+" "+Clock(w.start)+"-"+Clock(w.end))
	}
	return strings.Join(parts, ", ")
}

// Clock renders an HHMM integer as HH:MM.
func Clock(hhmm int) string {
	h := hhmm / 100
	m := hhmm % 100
	return pad2(h) + ":" + pad2(m)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
