package cli

import "github.com/julianstephens/taskquest/internal/tui"

// TuiCmd launches the interactive dashboard.
type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	return tui.Run(ctx.Store)
}
