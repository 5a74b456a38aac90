package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/storage"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st storage.Storage, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo                                   Open the task window
  todo ui [common flags]                 Open the task window
  todo list [common flags]               Print numbered tasks
  todo add [common flags] <text...>      Append a task
  todo edit [common flags] <n> <text...> Replace task n
  todo rm [common flags] <n...>          Delete tasks by number
  todo clear [common flags]              Delete all tasks
  todo export [common flags] [--format text|csv|json|pdf] [--output <file>]
  todo help
  todo version

Tasks are kept in tasks.txt in the current directory, one per line.

Window keys:
  enter     add the typed task (input) or edit the selection (list)
  tab       switch between input and list
  space     select the task under the cursor
  del       delete selected tasks
  ctrl+s    save     ctrl+o  load     ctrl+x  clear all
  q, esc    exit (asks whether to save)

Common flags:
  --config <dir>   Override config directory (debug log location)
  --quiet          Suppress informational output
  --debug          Write debug logs to <config dir>/todo.log
`
