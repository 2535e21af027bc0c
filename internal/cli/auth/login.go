// Package auth holds the account commands: login, logout, register, whoami.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/auraq/auraq-cli/internal/cli"
	"github.com/auraq/auraq-cli/internal/logger"
	"github.com/auraq/auraq-cli/internal/validation"
)

type LoginCmd struct {
	Username string `help:"Account username. Prompted for when omitted."`
	Password string `help:"Account password. Prompted for when omitted."`
	Remember bool   `help:"Keep the session on this machine across restarts."`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	if c.Username == "" || c.Password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Username").
					Value(&c.Username),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&c.Password),
				huh.NewConfirm().
					Title("Remember me on this machine?").
					Value(&c.Remember),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
	}

	if err := validation.Username(c.Username); err != nil {
		return err
	}
	// Password strength only matters at registration; an existing account
	// may predate the current minimum.
	if strings.TrimSpace(c.Password) == "" {
		return fmt.Errorf("password is required")
	}

	token, expiresIn, err := ctx.Client.Login(context.Background(), c.Username, c.Password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	ttl := time.Duration(ctx.Settings.TokenTTLSec) * time.Second
	if expiresIn > 0 {
		ttl = time.Duration(expiresIn) * time.Second
	}

	if err := ctx.Sessions.SetToken(token, c.Username, c.Remember, ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	ctx.Client.SetToken(token)

	// Warm the local credit cache so status works offline.
	state := ctx.SyncCredits(context.Background(), c.Username).State()
	logger.Debug("Synced credit state after login", "daily_count", state.DailyCount, "rewards", state.Rewards)

	fmt.Printf("Welcome back, %s!\n", c.Username)
	return nil
}
