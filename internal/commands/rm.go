package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/controller"
	"todo/internal/exitcode"
	"todo/internal/storage"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete tasks" }
func (c *RmCmd) Usage() string     { return "todo rm <n...>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, st storage.Storage, args []string, out, errOut io.Writer) int {
	nums, err := ParseTaskNumbers(args)
	if err != nil {
		if errors.Is(err, ErrTaskRefRequired) {
			fmt.Fprintln(errOut, "error: task number required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	ctl, code := openSession(ctx, st, errOut)
	if code != exitcode.Success {
		return code
	}
	rows, inRange := checkRange(ctl, nums, errOut)
	if !inRange {
		return exitcode.UserError
	}

	code = drive(ctx, ctl, errOut,
		controller.DeleteRequested{Selection: rows},
		controller.Confirmed{Yes: true},
		controller.SaveRequested{},
	)
	if code != exitcode.Success {
		return code
	}
	return ok(cfg.Quiet, out)
}
