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
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Replace the text of a task" }
func (c *EditCmd) Usage() string     { return "todo edit <n> <text...>" }
func (c *EditCmd) NeedsStore() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, st storage.Storage, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task number required")
		return exitcode.UserError
	}
	num, err := ParseTaskNumber(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}

	ctl, code := openSession(ctx, st, errOut)
	if code != exitcode.Success {
		return code
	}
	rows, inRange := checkRange(ctl, []int{num}, errOut)
	if !inRange {
		return exitcode.UserError
	}

	code = drive(ctx, ctl, errOut,
		controller.EditRequested{Selection: rows},
		controller.InputSubmitted{Text: strings.Join(args[1:], " ")},
		controller.SaveRequested{},
	)
	if code != exitcode.Success {
		return code
	}
	return ok(cfg.Quiet, out)
}
