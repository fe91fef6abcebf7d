package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/danicpp/course-advisor/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorOrange).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DifficultyStyle maps a 1-5 difficulty rating to a traffic-light style.
func DifficultyStyle(difficulty int) lipgloss.Style {
	switch {
	case difficulty <= 2:
		return StyleGreen
	case difficulty == 3:
		return StyleYellow
	default:
		return StyleRed
	}
}

// DifficultyDots renders a colored difficulty gauge such as "●●●○○".
func DifficultyDots(difficulty int) string {
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 5 {
		difficulty = 5
	}
	filled := strings.Repeat("●", difficulty)
	empty := strings.Repeat("○", 5-difficulty)
	return DifficultyStyle(difficulty).Render(filled) + StyleDim.Render(empty)
}

// CategoryStyle maps a catalog category to its accent color.
func CategoryStyle(cat domain.Category) lipgloss.Style {
	switch cat {
	case domain.CategoryCoreComputing:
		return StyleBlue
	case domain.CategoryDomainElectives:
		return StylePurple
	default:
		return StyleYellow
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
