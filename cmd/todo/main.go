// Package main is the entry point for the todo task manager.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todo/internal/backend/flatfile"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	factory := func(cfg *config.Config) (storage.Storage, error) {
		return flatfile.New(cfg.DataPath()), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
