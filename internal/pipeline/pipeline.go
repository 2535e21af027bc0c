// Package pipeline orchestrates one journal submission end-to-end:
// validation, credit gate, retried remote analysis, then credit accounting
// and result persistence. Credit state is never touched before the remote
// call has returned a confirmed, well-formed result.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/auraq/auraq-cli/internal/api"
	"github.com/auraq/auraq-cli/internal/credit"
	"github.com/auraq/auraq-cli/internal/logger"
	"github.com/auraq/auraq-cli/internal/models"
	"github.com/auraq/auraq-cli/internal/storage"
	"github.com/auraq/auraq-cli/internal/validation"
)

var (
	// ErrEmptyInput: the entry was empty after trimming; resolved locally.
	ErrEmptyInput = errors.New("story text is empty")
	// ErrNoCredits: no free slot and no rewards; resolved locally, no
	// network call is made.
	ErrNoCredits = errors.New("no credits left for today")
	// ErrTimeout: every attempt hit the per-attempt deadline.
	ErrTimeout = errors.New("analysis timed out")
	// ErrAuthExpired: the server rejected the token; retries stop
	// immediately and the caller must re-authenticate.
	ErrAuthExpired = errors.New("session expired, please log in again")
	// ErrNetwork: transport failures persisted through every attempt.
	ErrNetwork = errors.New("could not reach the analysis server")
	// ErrInvalidResponse: the server kept answering with malformed results.
	ErrInvalidResponse = errors.New("analysis server returned an invalid response")
	// ErrAlreadyInProgress: another submission is still in flight.
	ErrAlreadyInProgress = errors.New("a submission is already in progress")
)

// Service is the slice of the remote API the pipeline needs.
type Service interface {
	Analyze(ctx context.Context, story string) (models.AnalysisResult, error)
	IncrementDailyCount(ctx context.Context) (int, error)
	UpdateRewards(ctx context.Context, rewards int) error
	SaveWeeklyMood(ctx context.Context, entry models.MoodEntry) error
}

// RetryPolicy bounds the remote analysis attempts. Backoff receives the
// 1-based attempt number that just failed.
type RetryPolicy struct {
	MaxAttempts    int
	AttemptTimeout time.Duration
	Backoff        func(attempt int) time.Duration
}

// LinearBackoff waits attempt*step between attempts.
func LinearBackoff(step time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * step
	}
}

type Pipeline struct {
	svc      Service
	credits  *credit.Controller
	store    storage.Provider
	username string
	policy   RetryPolicy
	inFlight atomic.Bool
	sleep    func(time.Duration)
}

func New(svc Service, credits *credit.Controller, store storage.Provider, username string, policy RetryPolicy) *Pipeline {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.Backoff == nil {
		policy.Backoff = LinearBackoff(time.Second)
	}
	return &Pipeline{
		svc:      svc,
		credits:  credits,
		store:    store,
		username: username,
		policy:   policy,
		sleep:    time.Sleep,
	}
}

// Submit runs one submission. Exactly one submission may be in flight at a
// time; a second call is rejected immediately rather than queued.
func (p *Pipeline) Submit(ctx context.Context, text string) (models.AnalysisResult, error) {
	story, err := validation.Story(text)
	if err != nil {
		if strings.TrimSpace(text) == "" {
			return models.AnalysisResult{}, ErrEmptyInput
		}
		return models.AnalysisResult{}, err
	}

	if !p.inFlight.CompareAndSwap(false, true) {
		return models.AnalysisResult{}, ErrAlreadyInProgress
	}
	defer p.inFlight.Store(false)

	if !p.credits.CanSubmit() {
		return models.AnalysisResult{}, ErrNoCredits
	}

	// The free/paid decision is fixed before the remote call so a sync
	// racing in from another client cannot change what this submission
	// is charged as.
	wasPaid := p.credits.NextIsPaid()

	result, err := p.analyzeWithRetry(ctx, story)
	if err != nil {
		return models.AnalysisResult{}, err
	}

	p.credits.RecordSuccess(wasPaid)
	p.persistOutcome(ctx, result)

	return result, nil
}

func (p *Pipeline) analyzeWithRetry(ctx context.Context, story string) (models.AnalysisResult, error) {
	failure := ErrNetwork
	var lastErr error

	for attempt := 1; attempt <= p.policy.MaxAttempts; attempt++ {
		attemptCtx := ctx
		cancel := func() {}
		if p.policy.AttemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, p.policy.AttemptTimeout)
		}

		result, err := p.svc.Analyze(attemptCtx, story)
		cancel()

		if err == nil {
			return result, nil
		}

		// An authentication failure will not heal with a retry.
		if errors.Is(err, api.ErrUnauthorized) {
			return models.AnalysisResult{}, ErrAuthExpired
		}

		switch {
		case errors.Is(err, context.DeadlineExceeded):
			failure = ErrTimeout
		case errors.Is(err, api.ErrInvalidResponse):
			failure = ErrInvalidResponse
		default:
			failure = ErrNetwork
		}
		lastErr = err

		logger.Warn("Analysis attempt failed", "attempt", attempt, "error", err)

		if attempt < p.policy.MaxAttempts {
			p.sleep(p.policy.Backoff(attempt))
		}
	}

	return models.AnalysisResult{}, fmt.Errorf("%w: %v", failure, lastErr)
}

// persistOutcome records a confirmed success: the last-analysis cache, the
// server-side counters, and the weekly mood entry. These are secondary
// writes; failures are logged and never roll back the submission.
func (p *Pipeline) persistOutcome(ctx context.Context, result models.AnalysisResult) {
	if err := p.store.SaveLastAnalysis(p.username, result); err != nil {
		logger.Warn("Failed to cache analysis result", "error", err)
	}

	if count, err := p.svc.IncrementDailyCount(ctx); err != nil {
		logger.Warn("Failed to increment daily count on server", "error", err)
	} else {
		p.credits.SyncFromServer(count, p.credits.State().Rewards)
	}

	if err := p.svc.UpdateRewards(ctx, p.credits.State().Rewards); err != nil {
		logger.Warn("Failed to update rewards on server", "error", err)
	}

	now := time.Now()
	entry := models.MoodEntry{
		Mood:     result.Mood,
		Date:     now,
		DayName:  now.Format("Mon"),
		DayIndex: int(now.Weekday()),
	}
	if err := p.svc.SaveWeeklyMood(ctx, entry); err != nil {
		logger.Warn("Failed to save weekly mood entry", "error", err)
	}

	if err := p.store.SaveCreditState(p.username, p.credits.State()); err != nil {
		logger.Warn("Failed to cache credit state", "error", err)
	}
}
