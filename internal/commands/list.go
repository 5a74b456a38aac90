package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/storage"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "todo list" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st storage.Storage, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	ctl, code := openSession(ctx, st, errOut)
	if code != exitcode.Success {
		return code
	}
	tasks := ctl.Snapshot().Tasks

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	// Quiet output is the numbered tasks alone, for scripts.
	if cfg.Quiet {
		for i, task := range tasks {
			output.FormatTask(out, i+1, task)
		}
		return exitcode.Success
	}
	output.FormatList(out, tasks)
	return exitcode.Success
}
