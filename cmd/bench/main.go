package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/specialistvlad/battlesched/internal/app"
	"github.com/specialistvlad/battlesched/internal/cli"
	"github.com/specialistvlad/battlesched/internal/hcl_adapter"
)

// main is the entrypoint for the benchmark command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.ParseBench(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	benchApp, err := app.NewApp(outW, errW, appConfig, hcl_adapter.NewLoader())
	if err != nil {
		return err
	}
	return benchApp.Run(ctx)
}
