package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fdkevin0/md2html"
	"github.com/fdkevin0/md2html/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Run CLI entrypoint.
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		slog.Error("execution failed", "error", err)
		os.Exit(md2html.ExitCode(err))
	}
}
