package formatter

import (
	"fmt"
	"strings"

	"github.com/danicpp/course-advisor/internal/domain"
	"github.com/danicpp/course-advisor/internal/university"
)

// FormatRoadmap renders a generated plan as one card per semester.
func FormatRoadmap(plan *university.Plan) string {
	if plan == nil || len(plan.Semesters) == 0 {
		return Dim("The roadmap came back empty.")
	}

	var cards []string
	for i, sem := range plan.Semesters {
		title := fmt.Sprintf("Semester %d", sem.Semester)

		var b strings.Builder
		if sem.Reason != "" {
			b.WriteString(StyleDim.Italic(true).Render(sem.Reason) + "\n\n")
		}
		for _, c := range sem.Courses {
			style := CategoryStyle(domain.CategoryOf(c.CourseID))
			b.WriteString(fmt.Sprintf("  %s  %s\n", style.Render(c.CourseID), StyleFg.Render(c.CourseName)))
		}
		b.WriteString("\n" + Dim(fmt.Sprintf("%d credits", sem.TotalCredits)))
		b.WriteString("  " + Dim(fmt.Sprintf("[accept with --accept %d]", i+1)))

		cards = append(cards, RenderBox(title, b.String()))
	}

	header := Header(fmt.Sprintf("Roadmap · %s strategy", plan.Strategy))
	return header + "\n" + strings.Join(cards, "\n")
}
