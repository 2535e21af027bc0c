package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/auraq/auraq-cli/internal/cli"
	"github.com/auraq/auraq-cli/internal/validation"
)

type RegisterCmd struct {
	Username string `help:"Desired username. Prompted for when omitted."`
	Password string `help:"Desired password. Prompted for when omitted."`
}

func (c *RegisterCmd) Run(ctx *cli.Context) error {
	if c.Username == "" || c.Password == "" {
		var confirm string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Username").
					Value(&c.Username),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&c.Password),
				huh.NewInput().
					Title("Confirm password").
					EchoMode(huh.EchoModePassword).
					Value(&confirm),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
		if confirm != c.Password {
			return fmt.Errorf("passwords do not match")
		}
	}

	if err := validation.Username(c.Username); err != nil {
		return err
	}
	if err := validation.Password(c.Password); err != nil {
		return err
	}

	token, err := ctx.Client.Register(context.Background(), c.Username, c.Password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	// Not every deployment logs a fresh account straight in.
	if token == "" {
		fmt.Println("Account created. Run 'auraq login' to sign in.")
		return nil
	}

	ttl := time.Duration(ctx.Settings.TokenTTLSec) * time.Second
	if err := ctx.Sessions.SetToken(token, c.Username, false, ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	ctx.Client.SetToken(token)

	fmt.Printf("Account created. Welcome to AuraQ, %s!\n", c.Username)
	return nil
}
