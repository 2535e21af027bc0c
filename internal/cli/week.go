package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/auraq/auraq-cli/internal/weekly"
)

type WeekCmd struct{}

func (c *WeekCmd) Run(ctx *Context) error {
	if _, err := ctx.RequireSession(); err != nil {
		return err
	}

	entries, err := ctx.Client.WeeklyMood(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch mood history: %w", err)
	}

	report := weekly.Build(entries, time.Now())
	fmt.Print(weekly.Render(report))

	return nil
}
