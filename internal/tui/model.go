// Package tui is the interactive dashboard: a journal entry editor, the
// analysis result, and the weekly mood overview.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/auraq/auraq-cli/internal/credit"
	"github.com/auraq/auraq-cli/internal/models"
	"github.com/auraq/auraq-cli/internal/pipeline"
	"github.com/auraq/auraq-cli/internal/session"
	"github.com/auraq/auraq-cli/internal/storage"
	"github.com/auraq/auraq-cli/internal/weekly"
)

type sessionState int

const (
	stateInput sessionState = iota
	stateSubmitting
	stateResult
	stateError
)

// analysisMsg carries the outcome of one submission back into the loop.
type analysisMsg struct {
	result models.AnalysisResult
	err    error
}

// weeklyMsg carries a refreshed weekly report.
type weeklyMsg struct {
	report weekly.Report
	err    error
}

type submitter interface {
	Submit(ctx context.Context, text string) (models.AnalysisResult, error)
}

type moodFetcher interface {
	WeeklyMood(ctx context.Context) ([]models.MoodEntry, error)
}

type Model struct {
	store    storage.Provider
	fetcher  moodFetcher
	sessions *session.Manager
	settings models.Settings
	sess     models.Session

	credits *credit.Controller
	pipe    submitter

	state    sessionState
	input    textarea.Model
	spin     spinner.Model
	keys     KeyMap
	help     help.Model
	result   models.AnalysisResult
	errMsg   string
	report   weekly.Report
	hasWeek  bool
	width    int
	height   int
	quitting bool
}

// Service is the remote dependency surface the dashboard needs.
type Service interface {
	pipeline.Service
	moodFetcher
}

func NewModel(store storage.Provider, svc Service, sessions *session.Manager, settings models.Settings, sess models.Session) Model {
	ta := textarea.New()
	ta.Placeholder = "How was your day?"
	ta.CharLimit = 0
	ta.SetHeight(6)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	credits := credit.New(credit.Config{
		FreeLimit:    settings.FreeLimit,
		PaidCost:     settings.PaidCost,
		RewardOnFree: settings.RewardOnFree,
	})
	if cached, err := store.GetCreditState(sess.Username); err == nil {
		credits.SyncFromServer(cached.DailyCount, cached.Rewards)
	}

	policy := pipeline.RetryPolicy{
		MaxAttempts:    settings.MaxAttempts,
		AttemptTimeout: time.Duration(settings.AttemptTimeoutSec) * time.Second,
		Backoff:        pipeline.LinearBackoff(time.Second),
	}

	return Model{
		store:    store,
		fetcher:  svc,
		sessions: sessions,
		settings: settings,
		sess:     sess,
		credits:  credits,
		pipe:     pipeline.New(svc, credits, store, sess.Username, policy),
		state:    stateInput,
		input:    ta,
		spin:     sp,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spin.Tick, m.fetchWeekly())
}

func (m Model) submit(text string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.pipe.Submit(context.Background(), text)
		return analysisMsg{result: result, err: err}
	}
}

func (m Model) fetchWeekly() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		entries, err := m.fetcher.WeeklyMood(ctx)
		if err != nil {
			return weeklyMsg{err: err}
		}
		return weeklyMsg{report: weekly.Build(entries, time.Now())}
	}
}
