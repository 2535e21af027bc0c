package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/auraq/auraq-cli/internal/errors"
	"github.com/auraq/auraq-cli/internal/logger"
	"github.com/auraq/auraq-cli/internal/pipeline"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(min(msg.Width-4, 80))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			if m.state != stateInput {
				return m, nil
			}
			m.state = stateSubmitting
			m.errMsg = ""
			return m, tea.Batch(m.spin.Tick, m.submit(m.input.Value()))

		case key.Matches(msg, m.keys.New):
			if m.state == stateSubmitting {
				return m, nil
			}
			m.state = stateInput
			m.errMsg = ""
			m.input.Reset()
			m.input.Focus()
			return m, textarea.Blink

		case key.Matches(msg, m.keys.Refresh):
			return m, m.fetchWeekly()
		}

	case analysisMsg:
		if msg.err != nil {
			m.state = stateError
			m.errMsg = apperrors.Format(msg.err)
			// An expired session cannot recover inside the dashboard.
			if errors.Is(msg.err, pipeline.ErrAuthExpired) {
				if err := m.sessions.Clear(); err != nil {
					logger.Warn("Failed to clear expired session", "error", err)
				}
				m.errMsg = "Session expired. Quit and run 'auraq login' to continue."
			}
			return m, nil
		}
		m.state = stateResult
		m.result = msg.result
		return m, m.fetchWeekly()

	case weeklyMsg:
		if msg.err != nil {
			logger.Warn("Failed to refresh weekly view", "error", msg.err)
			return m, nil
		}
		m.report = msg.report
		m.hasWeek = true
		return m, nil

	case spinner.TickMsg:
		if m.state == stateSubmitting {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
