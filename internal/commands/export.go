package commands

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/export"
	"todo/internal/storage"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	format string
	output string
}

// SetFormat sets the export format (for testing).
func (c *ExportCmd) SetFormat(format string) {
	c.format = format
}

// SetOutput sets the output file (for testing).
func (c *ExportCmd) SetOutput(path string) {
	c.output = path
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Write the task list in another format" }
func (c *ExportCmd) Usage() string {
	return "todo export [--format text|csv|json|pdf] [--output <file>]"
}
func (c *ExportCmd) NeedsStore() bool { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "text", "")
	fs.StringVar(&c.format, "f", "text", "")
	fs.StringVar(&c.output, "output", "", "")
	fs.StringVar(&c.output, "o", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, st storage.Storage, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	format := c.format
	if format == "" {
		format = "text"
	}
	if !slices.Contains(export.Formats, format) {
		fmt.Fprintf(errOut, "error: unknown format: %s (want %s)\n", format, strings.Join(export.Formats, ", "))
		return exitcode.UserError
	}

	ctl, code := openSession(ctx, st, errOut)
	if code != exitcode.Success {
		return code
	}

	var buf bytes.Buffer
	if err := export.Export(&buf, format, ctl.Snapshot().Tasks); err != nil {
		fmt.Fprintf(errOut, "error: internal: %v\n", err)
		return exitcode.InternalError
	}

	if c.output == "" {
		if _, err := out.Write(buf.Bytes()); err != nil {
			fmt.Fprintf(errOut, "error: write: %v\n", err)
			return exitcode.StorageError
		}
		return exitcode.Success
	}

	if err := os.WriteFile(c.output, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}
	return ok(cfg.Quiet, out)
}
