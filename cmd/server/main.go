package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"sixfactors/internal/cmd"
)

// version is the version of the application. It should be set at build time.
var version = "dev"

func main() {
	ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := cmd.InitCommands(version)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("failed to execute command", slog.Any("error", err))
		os.Exit(1)
	}
}
