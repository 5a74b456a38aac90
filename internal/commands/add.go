package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/controller"
	"todo/internal/exitcode"
	"todo/internal/storage"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Append a task" }
func (c *AddCmd) Usage() string     { return "todo add <text...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, st storage.Storage, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}

	ctl, code := openSession(ctx, st, errOut)
	if code != exitcode.Success {
		return code
	}

	code = drive(ctx, ctl, errOut,
		controller.AddRequested{Text: strings.Join(args, " ")},
		controller.SaveRequested{},
	)
	if code != exitcode.Success {
		return code
	}
	return ok(cfg.Quiet, out)
}
