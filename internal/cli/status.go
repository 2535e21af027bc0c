package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/auraq/auraq-cli/internal/storage"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	sess, err := ctx.RequireSession()
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as: %s\n", sess.Username)
	fmt.Printf("Session expires: %s\n", sess.ExpiresAt.Local().Format("Mon Jan 2 15:04"))
	if sess.Persistent {
		fmt.Println("Session is remembered on this machine.")
	}
	fmt.Println()

	credits := ctx.SyncCredits(context.Background(), sess.Username)
	fmt.Println(FormatCredits(credits))

	last, err := ctx.Store.GetLastAnalysis(sess.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}

	fmt.Printf("\nLast analysis:\n")
	fmt.Printf("  Mood:     %s\n", last.Mood)
	fmt.Printf("  Feedback: %s\n", last.Feedback)

	return nil
}
