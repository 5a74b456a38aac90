package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/controller"
	"todo/internal/exitcode"
	"todo/internal/storage"
)

func init() {
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command.
type ClearCmd struct{}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Delete all tasks" }
func (c *ClearCmd) Usage() string     { return "todo clear" }
func (c *ClearCmd) NeedsStore() bool  { return true }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, st storage.Storage, args []string, out, errOut io.Writer) int {
	ctl, code := openSession(ctx, st, errOut)
	if code != exitcode.Success {
		return code
	}

	// On an empty list no prompt is raised and the confirmation is ignored.
	code = drive(ctx, ctl, errOut,
		controller.ClearRequested{},
		controller.Confirmed{Yes: true},
		controller.SaveRequested{},
	)
	if code != exitcode.Success {
		return code
	}
	return ok(cfg.Quiet, out)
}
