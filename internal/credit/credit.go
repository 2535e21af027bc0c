// Package credit decides whether a submission is permitted and tracks the
// daily free-submission count and reward balance. All state here is a
// provisional cache; the server remains the system of record and every
// authoritative read overwrites it.
package credit

import "github.com/auraq/auraq-cli/internal/models"

// Config captures the credit scheme. The free limit and the reward granted
// after a free submission varied between deployments, so both are explicit
// configuration.
type Config struct {
	FreeLimit    int // free submissions per day
	PaidCost     int // reward points consumed past the free limit
	RewardOnFree int // reward points granted after a successful free submission
}

type Controller struct {
	cfg   Config
	state models.CreditState
}

func New(cfg Config) *Controller {
	if cfg.PaidCost < 1 {
		cfg.PaidCost = 1
	}
	return &Controller{cfg: cfg}
}

// State returns the current counters.
func (c *Controller) State() models.CreditState {
	return c.state
}

// CanSubmit reports whether a new submission is permitted: either a free
// slot remains today, or the user holds reward points to spend.
func (c *Controller) CanSubmit() bool {
	return c.state.DailyCount < c.cfg.FreeLimit || c.state.Rewards > 0
}

// NextIsPaid reports whether the next submission would consume rewards
// rather than a free daily slot.
func (c *Controller) NextIsPaid() bool {
	return c.state.DailyCount >= c.cfg.FreeLimit
}

// RecordSuccess applies the counter transition for one confirmed successful
// analysis. It must only be called after the remote call has returned a
// well-formed result; charging for a failed analysis is never acceptable.
// The daily count keeps growing past the free limit so the display stays
// truthful.
func (c *Controller) RecordSuccess(wasPaid bool) {
	c.state.DailyCount++
	if wasPaid {
		c.state.Rewards -= c.cfg.PaidCost
		if c.state.Rewards < 0 {
			c.state.Rewards = 0
		}
		return
	}
	c.state.Rewards += c.cfg.RewardOnFree
}

// SyncFromServer overwrites the local counters with the server's
// authoritative values.
func (c *Controller) SyncFromServer(dailyCount, rewards int) {
	c.state.DailyCount = dailyCount
	c.state.Rewards = rewards
}

// FreeRemaining returns how many free submissions are left today.
func (c *Controller) FreeRemaining() int {
	remaining := c.cfg.FreeLimit - c.state.DailyCount
	if remaining < 0 {
		return 0
	}
	return remaining
}
