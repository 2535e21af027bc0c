package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/auraq/auraq-cli/internal/weekly"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case stateInput:
		content = m.viewInput()
	case stateSubmitting:
		content = fmt.Sprintf("%s Analyzing your entry...", m.spin.View())
	case stateResult:
		content = m.viewResult()
	case stateError:
		content = errorStyle.Render(m.errMsg)
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("AuraQ"),
		m.viewStatus(),
		panelStyle.Render(content),
		m.viewWeekly(),
		m.help.View(m.keys),
	)

	return ui
}

func (m Model) viewStatus() string {
	state := m.credits.State()
	return statusStyle.Render(fmt.Sprintf("%s | entries today: %d | free remaining: %d | rewards: %d",
		m.sess.Username, state.DailyCount, m.credits.FreeRemaining(), state.Rewards))
}

func (m Model) viewInput() string {
	return m.input.View()
}

func (m Model) viewResult() string {
	moodStyle := lipgloss.NewStyle().Bold(true).Foreground(weekly.MoodColor(m.result.Mood))
	return lipgloss.JoinVertical(
		lipgloss.Left,
		fmt.Sprintf("Mood: %s", moodStyle.Render(m.result.Mood)),
		feedbackStyle.Render(m.result.Feedback),
	)
}

func (m Model) viewWeekly() string {
	if !m.hasWeek {
		return statusStyle.Render("Loading weekly view...")
	}
	return weekly.Render(m.report)
}
