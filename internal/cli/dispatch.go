package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/storage"
)

// DefaultCommand runs when no arguments are given.
const DefaultCommand = "ui"

// StorageFactory opens the task file for cfg.
// Used to inject the backend during dispatch.
type StorageFactory func(cfg *config.Config) (storage.Storage, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  StorageFactory
}

// NewDispatcher creates a new dispatcher with the given registry and storage factory.
func NewDispatcher(registry *commands.Registry, factory StorageFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return d.dispatch(ctx, DefaultCommand, nil, out, errOut)
	}

	// Flags require a command.
	if strings.HasPrefix(args[0], "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", args[0])
		return exitcode.UserError
	}
	return d.dispatch(ctx, args[0], args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, name string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(name)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are reported below

	var configDir string
	var quiet, debug bool
	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	// A dash-prefixed positional was meant as a flag.
	positional := fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") && positional[0] != "-" {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	logger, closer, err := logging.Setup(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: log file: %v\n", err)
		return exitcode.StorageError
	}
	defer closer.Close()
	logger.Debug("dispatching command", "command", cmd.Name(), "args", positional)

	var st storage.Storage
	if cmd.NeedsStore() {
		st, err = d.factory(cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: storage error: %v\n", err)
			return exitcode.StorageError
		}
	}

	code := cmd.Run(ctx, cfg, st, positional, out, errOut)
	logger.Debug("command finished", "command", cmd.Name(), "code", code)
	return code
}

// flagError rewrites flag package errors into the CLI's wording.
func flagError(err error) string {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "flag needs an argument: "):
		return msg
	case strings.HasPrefix(msg, "flag provided but not defined: "):
		return "unknown flag: " + strings.TrimPrefix(msg, "flag provided but not defined: ")
	default:
		return msg
	}
}
