package auth

import (
	"fmt"

	"github.com/auraq/auraq-cli/internal/cli"
)

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *cli.Context) error {
	sess, err := ctx.RequireSession()
	if err != nil {
		return err
	}

	fmt.Println(sess.Username)
	fmt.Printf("Session expires: %s\n", sess.ExpiresAt.Local().Format("Mon Jan 2 15:04"))
	if sess.Persistent {
		fmt.Println("Remembered on this machine.")
	}
	return nil
}
