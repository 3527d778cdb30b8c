package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"

	"github.com/specialistvlad/battlesched/internal/app"
	"github.com/specialistvlad/battlesched/internal/cli"
	"github.com/specialistvlad/battlesched/internal/ctxlog"
	"github.com/specialistvlad/battlesched/internal/scheduler"
)

// main is the entrypoint for the scheduler command.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if _, err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run prints the greedy order and impact of the dataset named in args and
// returns the impact. It returns nil, nil when help was requested.
func run(outW, errW io.Writer, args []string) (*big.Int, error) {
	cfg, shouldExit, err := cli.ParseScheduler(args, errW)
	if err != nil {
		return nil, err
	}
	if shouldExit {
		return nil, nil
	}

	logger, err := app.NewLogger(cfg.LogLevel, cfg.LogFormat, errW)
	if err != nil {
		return nil, err
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)

	if !cfg.Verify {
		return scheduler.Run(ctx, outW, cfg.DatasetPath)
	}

	order, impact, err := scheduler.Best(cfg.DatasetPath)
	if err != nil {
		return nil, err
	}
	if !scheduler.IsLocallyOptimal(order) {
		return nil, errors.New("computed order is not locally optimal")
	}
	logger.Info("Order verified as locally optimal.", "records", len(order))
	if err := scheduler.Print(outW, order, impact); err != nil {
		return nil, err
	}
	return impact, nil
}
