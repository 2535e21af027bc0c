package settings

import (
	"fmt"

	"github.com/auraq/auraq-cli/internal/cli"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	ServerURL         *string `help:"Base URL of the AuraQ service."`
	FreeLimit         *int    `help:"Free submissions per day."`
	PaidCost          *int    `help:"Reward points consumed past the free limit."`
	RewardOnFree      *int    `help:"Reward points granted after a successful free submission."`
	TokenTTLSec       *int    `help:"Session token lifetime in seconds."`
	MaxAttempts       *int    `help:"Analysis attempts before giving up."`
	AttemptTimeoutSec *int    `help:"Per-attempt timeout in seconds."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Server URL:          %s\n", settings.ServerURL)
		fmt.Printf("  Token TTL:           %d sec\n", settings.TokenTTLSec)
		fmt.Println("\nCredit Scheme:")
		fmt.Printf("  Free Limit:          %d\n", settings.FreeLimit)
		fmt.Printf("  Paid Cost:           %d\n", settings.PaidCost)
		fmt.Printf("  Reward On Free:      %d\n", settings.RewardOnFree)
		fmt.Println("\nSubmission Retry:")
		fmt.Printf("  Max Attempts:        %d\n", settings.MaxAttempts)
		fmt.Printf("  Attempt Timeout:     %d sec\n", settings.AttemptTimeoutSec)
		return nil
	}

	updated := false
	if c.ServerURL != nil {
		if *c.ServerURL == "" {
			return fmt.Errorf("server URL cannot be empty")
		}
		settings.ServerURL = *c.ServerURL
		updated = true
	}
	if c.FreeLimit != nil {
		if *c.FreeLimit < 0 {
			return fmt.Errorf("free limit cannot be negative")
		}
		settings.FreeLimit = *c.FreeLimit
		updated = true
	}
	if c.PaidCost != nil {
		if *c.PaidCost < 1 {
			return fmt.Errorf("paid cost must be at least 1")
		}
		settings.PaidCost = *c.PaidCost
		updated = true
	}
	if c.RewardOnFree != nil {
		if *c.RewardOnFree < 0 {
			return fmt.Errorf("reward on free cannot be negative")
		}
		settings.RewardOnFree = *c.RewardOnFree
		updated = true
	}
	if c.TokenTTLSec != nil {
		if *c.TokenTTLSec < 1 {
			return fmt.Errorf("token TTL must be at least 1 second")
		}
		settings.TokenTTLSec = *c.TokenTTLSec
		updated = true
	}
	if c.MaxAttempts != nil {
		if *c.MaxAttempts < 1 {
			return fmt.Errorf("max attempts must be at least 1")
		}
		settings.MaxAttempts = *c.MaxAttempts
		updated = true
	}
	if c.AttemptTimeoutSec != nil {
		if *c.AttemptTimeoutSec < 1 {
			return fmt.Errorf("attempt timeout must be at least 1 second")
		}
		settings.AttemptTimeoutSec = *c.AttemptTimeoutSec
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
