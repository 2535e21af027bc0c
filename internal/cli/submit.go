package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/auraq/auraq-cli/internal/pipeline"
	"github.com/auraq/auraq-cli/internal/weekly"
)

type SubmitCmd struct {
	Text []string `arg:"" optional:"" help:"Journal entry text. Reads from stdin when omitted."`
}

func (c *SubmitCmd) Run(ctx *Context) error {
	sess, err := ctx.RequireSession()
	if err != nil {
		return err
	}

	text := strings.Join(c.Text, " ")
	if strings.TrimSpace(text) == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read entry from stdin: %w", err)
		}
		text = string(data)
	}

	credits := ctx.SyncCredits(context.Background(), sess.Username)

	p := pipeline.New(ctx.Client, credits, ctx.Store, sess.Username, ctx.RetryPolicy())

	fmt.Println("Analyzing your entry...")
	result, err := p.Submit(context.Background(), text)
	if err != nil {
		if errors.Is(err, pipeline.ErrAuthExpired) {
			if clearErr := ctx.Sessions.Clear(); clearErr != nil {
				return clearErr
			}
			return fmt.Errorf("session expired, please run 'auraq login'")
		}
		return err
	}

	moodStyle := lipgloss.NewStyle().Bold(true).Foreground(weekly.MoodColor(result.Mood))
	fmt.Printf("\nMood:     %s\n", moodStyle.Render(result.Mood))
	fmt.Printf("Feedback: %s\n\n", result.Feedback)
	fmt.Println(FormatCredits(credits))

	return nil
}
