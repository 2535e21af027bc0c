package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/auraq/auraq-cli/internal/cli"
	"github.com/auraq/auraq-cli/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	sess, err := ctx.RequireSession()
	if err != nil {
		return fmt.Errorf("%w (run 'auraq login' first)", err)
	}

	model := tui.NewModel(ctx.Store, ctx.Client, ctx.Sessions, ctx.Settings, sess)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
