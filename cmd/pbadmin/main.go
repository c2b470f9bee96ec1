package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pbadmin/internal/cmd"
	"pbadmin/internal/domain"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.NewRootCommand().ExecuteContext(ctx); err != nil {
		// Catalog and validation errors are the caller's mistake.
		if domain.Code(err) != "" {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
