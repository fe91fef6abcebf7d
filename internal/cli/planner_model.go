package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danicpp/course-advisor/internal/cli/formatter"
	"github.com/danicpp/course-advisor/internal/domain"
	"github.com/danicpp/course-advisor/internal/session"
)

type plannerMode int

const (
	modePlanning plannerMode = iota
	modeRoadmap
)

// Messages carrying results of backend calls back into the update loop.
type confirmDoneMsg struct{ err error }
type roadmapDoneMsg struct{ err error }
type acceptDoneMsg struct {
	index int
	err   error
}

// plannerModel is the interactive planner: a catalog list on the left, the
// current selection and timetable on the right, and a status line below.
type plannerModel struct {
	app     *App
	sess    *session.PlanningSession
	courses []*domain.Course

	mode   plannerMode
	cursor int

	// busy guards the single in-flight backend call; key handling is
	// suspended (except quit) until its done message arrives.
	busy bool
	spin spinner.Model

	status   string
	quitting bool
	width    int
	height   int
}

func newPlannerModel(app *App, sess *session.PlanningSession, courses []*domain.Course) plannerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple
	return plannerModel{
		app:     app,
		sess:    sess,
		courses: courses,
		spin:    sp,
	}
}

func (m plannerModel) Init() tea.Cmd {
	return nil
}

func (m plannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case confirmDoneMsg:
		m.busy = false
		if msg.err == nil {
			m.status = "Schedule locked and registered."
		}
		return m, nil

	case roadmapDoneMsg:
		m.busy = false
		if msg.err == nil {
			m.mode = modeRoadmap
			m.status = ""
		}
		return m, nil

	case acceptDoneMsg:
		m.busy = false
		if msg.err == nil {
			m.status = fmt.Sprintf("Semester %d registered.", msg.index+1)
		} else {
			m.status = msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m plannerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == "q" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.busy {
		return m, nil
	}

	if m.mode == modeRoadmap {
		return m.handleRoadmapKey(key)
	}

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.courses)-1 {
			m.cursor++
		}
	case "enter", "a":
		if c := m.selected(); c != nil {
			m.status = ""
			if err := m.sess.AddCourse(c); err == nil {
				m.status = c.ID + " added"
			}
		}
	case "x", "d":
		if c := m.selected(); c != nil {
			m.status = ""
			if err := m.sess.RemoveCourse(c.ID); err == nil {
				m.status = c.ID + " removed"
			}
		}
	case "e", "esc":
		m.sess.DismissError()
		m.status = ""
	case "s":
		m.sess.SetStrategy(nextStrategy(m.sess.Strategy()))
	case "c":
		m.busy = true
		m.status = "Submitting registration..."
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			return confirmDoneMsg{err: m.sess.Confirm(context.Background())}
		})
	case "g":
		m.busy = true
		m.status = "Generating roadmap..."
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			return roadmapDoneMsg{err: m.sess.GenerateRoadmap(context.Background())}
		})
	}

	return m, nil
}

func (m plannerModel) handleRoadmapKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "b":
		m.sess.ReturnToPlanning()
		m.mode = modePlanning
		m.status = ""
		return m, nil
	}

	// Digit keys accept the corresponding semester.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		index := int(key[0] - '1')
		if plan := m.sess.Plan(); plan != nil && index < len(plan.Semesters) {
			m.busy = true
			m.status = "Registering semester..."
			return m, tea.Batch(m.spin.Tick, func() tea.Msg {
				return acceptDoneMsg{index: index, err: m.sess.AcceptSemester(context.Background(), index)}
			})
		}
	}

	return m, nil
}

func (m plannerModel) selected() *domain.Course {
	if m.cursor < 0 || m.cursor >= len(m.courses) {
		return nil
	}
	return m.courses[m.cursor]
}

// nextStrategy cycles balanced -> aggressive -> relaxed -> balanced.
func nextStrategy(s domain.Strategy) domain.Strategy {
	switch s {
	case domain.StrategyBalanced:
		return domain.StrategyAggressive
	case domain.StrategyAggressive:
		return domain.StrategyRelaxed
	default:
		return domain.StrategyBalanced
	}
}

func (m plannerModel) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeRoadmap {
		return m.roadmapView()
	}
	return m.planningView()
}

func (m plannerModel) planningView() string {
	left := m.courseListView()
	right := formatter.FormatDraft(m.sess.Draft()) + "\n" +
		formatter.FormatTimetable(m.sess.Blocks(m.app.Grid), m.app.Grid)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return body + "\n" + m.statusLine() + "\n" + m.helpLine()
}

func (m plannerModel) courseListView() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Catalog") + "\n")

	for i, c := range m.courses {
		marker := "  "
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("> ")
		}

		line := fmt.Sprintf("%s %2dcr %s",
			formatter.CategoryStyle(domain.CategoryOf(c.ID)).Render(c.ID),
			c.Credits,
			formatter.DifficultyDots(c.Difficulty))
		if m.sess.Draft().Contains(c.ID) {
			line += " " + formatter.StyleGreen.Render("✓")
		}
		b.WriteString(marker + line + "\n")
	}

	b.WriteString("\n" + formatter.Dim(fmt.Sprintf("strategy: %s", m.sess.Strategy())))
	return b.String()
}

func (m plannerModel) roadmapView() string {
	view := formatter.FormatRoadmap(m.sess.Plan())
	hint := formatter.Dim("1-9 register semester · esc back to planning · q quit")
	return view + "\n" + m.statusLine() + "\n" + hint
}

func (m plannerModel) statusLine() string {
	if errMsg := m.sess.LastError(); errMsg != "" {
		return formatter.StyleRed.Render("✗ " + errMsg)
	}
	if m.busy {
		return m.spin.View() + formatter.Dim(m.status)
	}
	if m.status != "" {
		return formatter.StyleGreen.Render(m.status)
	}
	if m.sess.Locked() {
		return formatter.StyleYellow.Render("Schedule is locked; add and remove are disabled.")
	}
	return ""
}

func (m plannerModel) helpLine() string {
	return formatter.Dim("↑/↓ move · enter add · x remove · s strategy · g roadmap · c confirm · e dismiss · q quit")
}
