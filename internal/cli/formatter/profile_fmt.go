package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/danicpp/course-advisor/internal/domain"
)

// FormatProfile renders a student card with academic standing, passed
// courses, and recorded registrations.
func FormatProfile(p *domain.StudentProfile, passed []string, regs []*domain.Registration) string {
	var b strings.Builder

	b.WriteString(Bold(p.FullName) + "\n")
	b.WriteString(Dim(p.RollNumber) + "\n\n")
	if p.FatherName != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("GUARDIAN"), StyleFg.Render(p.FatherName)))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SEMESTER"), StyleFg.Render(fmt.Sprintf("%d", p.CurrentSemester))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("GPA     "), gradeStyle(p.GPA).Render(fmt.Sprintf("%.2f", p.GPA))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CGPA    "), gradeStyle(p.CGPA).Render(fmt.Sprintf("%.2f", p.CGPA))))

	b.WriteString("\n" + Header("Passed Courses") + "\n")
	if len(passed) == 0 {
		b.WriteString(Dim("None on record.") + "\n")
	}
	for _, id := range passed {
		b.WriteString("  " + CategoryStyle(domain.CategoryOf(id)).Render(id) + "\n")
	}

	if len(regs) > 0 {
		b.WriteString("\n" + Header("Registrations") + "\n")
		rows := make([][]string, 0, len(regs))
		for _, r := range regs {
			rows = append(rows, []string{
				CategoryStyle(domain.CategoryOf(r.CourseID)).Render(r.CourseID),
				StyleFg.Render(r.SemesterLabel),
				StyleGreen.Render(string(r.Status)),
			})
		}
		b.WriteString(RenderTable([]string{"CODE", "SEMESTER", "STATUS"}, rows))
	}

	return RenderBox("Student", b.String())
}

func gradeStyle(gpa float64) lipgloss.Style {
	switch {
	case gpa >= 3.0:
		return StyleGreen
	case gpa >= 2.0:
		return StyleYellow
	default:
		return StyleRed
	}
}
