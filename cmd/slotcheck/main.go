package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/javiermolinar/slotcheck/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Configuration is loaded by the root command so --config is honored.
	app := ui.NewApp(nil)
	defer func() { _ = app.Close() }()
	return app.ExecuteContext(ctx)
}
