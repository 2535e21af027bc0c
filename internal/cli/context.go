package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/auraq/auraq-cli/internal/api"
	"github.com/auraq/auraq-cli/internal/credit"
	"github.com/auraq/auraq-cli/internal/logger"
	"github.com/auraq/auraq-cli/internal/models"
	"github.com/auraq/auraq-cli/internal/pipeline"
	"github.com/auraq/auraq-cli/internal/session"
	"github.com/auraq/auraq-cli/internal/storage"
)

// Context carries the shared dependencies into every command.
type Context struct {
	Store    storage.Provider
	Client   *api.Client
	Sessions *session.Manager
	Settings models.Settings
}

// RequireSession resolves the active session, promoting a remembered one
// when needed, and arms the API client with its token. Commands that talk
// to authenticated endpoints call this first.
func (c *Context) RequireSession() (models.Session, error) {
	if _, err := c.Sessions.MigrateRemembered(); err != nil {
		logger.Warn("Failed to check remembered session", "error", err)
	}

	sess, err := c.Sessions.Current()
	if err != nil {
		return models.Session{}, err
	}

	c.Client.SetToken(sess.Token)
	return sess, nil
}

// CreditConfig builds the credit scheme from settings.
func (c *Context) CreditConfig() credit.Config {
	return credit.Config{
		FreeLimit:    c.Settings.FreeLimit,
		PaidCost:     c.Settings.PaidCost,
		RewardOnFree: c.Settings.RewardOnFree,
	}
}

// RetryPolicy builds the submission retry bounds from settings.
func (c *Context) RetryPolicy() pipeline.RetryPolicy {
	return pipeline.RetryPolicy{
		MaxAttempts:    c.Settings.MaxAttempts,
		AttemptTimeout: time.Duration(c.Settings.AttemptTimeoutSec) * time.Second,
		Backoff:        pipeline.LinearBackoff(time.Second),
	}
}

// SyncCredits returns a credit controller seeded from the server, falling
// back to the cached counters when the server is unreachable. The server
// values win whenever they are available.
func (c *Context) SyncCredits(ctx context.Context, username string) *credit.Controller {
	ctrl := credit.New(c.CreditConfig())

	remote, err := c.Client.Rewards(ctx)
	if err == nil {
		ctrl.SyncFromServer(remote.DailyCount, remote.Rewards)
		if err := c.Store.SaveCreditState(username, ctrl.State()); err != nil {
			logger.Warn("Failed to cache credit state", "error", err)
		}
		return ctrl
	}
	logger.Warn("Failed to sync credits from server, using cached state", "error", err)

	cached, cacheErr := c.Store.GetCreditState(username)
	if cacheErr != nil {
		return ctrl
	}
	ctrl.SyncFromServer(cached.DailyCount, cached.Rewards)
	return ctrl
}

// FormatCredits renders the counters for command output.
func FormatCredits(ctrl *credit.Controller) string {
	state := ctrl.State()
	return fmt.Sprintf("Submissions today: %d (free remaining: %d) | Reward points: %d",
		state.DailyCount, ctrl.FreeRemaining(), state.Rewards)
}
