package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"todo/internal/config"
	"todo/internal/controller"
	"todo/internal/exitcode"
	"todo/internal/storage"
	"todo/internal/tasks"
	"todo/internal/ui"
)

func init() {
	Register(&UICmd{})
}

// UICmd opens the interactive window. It is the default command.
type UICmd struct{}

func (c *UICmd) Name() string      { return "ui" }
func (c *UICmd) Aliases() []string { return nil }
func (c *UICmd) Synopsis() string  { return "Open the task window" }
func (c *UICmd) Usage() string     { return "todo [ui]" }
func (c *UICmd) NeedsStore() bool  { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, st storage.Storage, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	logger := slog.Default()
	ctl := controller.New(tasks.NewStore(), st, logger)

	err := ui.Run(ctx, ctl, logger)
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, ui.ErrInternal):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.InternalError
	default:
		fmt.Fprintf(errOut, "error: terminal: %v\n", err)
		return exitcode.InternalError
	}
}
