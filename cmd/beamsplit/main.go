// Command beamsplit loads a splitter grid and prints either the number of
// beam splits or the number of distinct beam paths.
//
//	beamsplit -mode splits input.txt
//	beamsplit -mode paths input.txt
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/beamsplit/frontier"
	"github.com/katalvlaran/beamsplit/grid"
	"github.com/katalvlaran/beamsplit/internal/cli"
	"github.com/katalvlaran/beamsplit/paths"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, loads the grid and writes "Result is N" to stdout.
// Usage and help text go to stderr together with the logs.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	logger := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)

	var gridOpts []grid.Option
	if cfg.OriginFallback {
		gridOpts = append(gridOpts, grid.WithOriginFallback())
	}
	g, err := grid.Load(cfg.GridPath, gridOpts...)
	if err != nil {
		return err
	}
	rows, cols := g.Bounds()
	logger.Info("grid loaded",
		"path", cfg.GridPath, "rows", rows, "cols", cols,
		"splitters", g.NumSplitters(), "start", g.Start().String())

	began := time.Now()
	var result uint64
	switch cfg.Mode {
	case cli.ModePaths:
		result, err = countPaths(ctx, g, logger)
	default:
		result, err = countSplits(ctx, g, cfg.Workers, logger)
	}
	if err != nil {
		return err
	}
	logger.Info("count finished", "mode", cfg.Mode, "result", result, "elapsed", time.Since(began))

	_, err = fmt.Fprintf(stdout, "Result is %d\n", result)
	return err
}

func countSplits(ctx context.Context, g *grid.Grid, workers int, logger *slog.Logger) (uint64, error) {
	res, err := frontier.CountSplits(g,
		frontier.WithContext(ctx),
		frontier.WithWorkers(workers),
		frontier.WithOnRound(func(round int, heads []grid.Position) error {
			logger.Debug("frontier round", "round", round, "heads", len(heads))
			return nil
		}),
	)
	if err != nil {
		return 0, err
	}
	logger.Info("frontier drained",
		"rounds", res.Rounds, "exits", res.Exits, "peak_width", res.PeakWidth)

	return uint64(res.Splits), nil
}

func countPaths(ctx context.Context, g *grid.Grid, logger *slog.Logger) (uint64, error) {
	res, err := paths.Count(g,
		paths.WithContext(ctx),
		paths.WithExplicitStack(),
		paths.WithOnResolve(func(pos grid.Position, n uint64) {
			logger.Debug("branch resolved", "pos", pos.String(), "paths", n)
		}),
	)
	if err != nil {
		return 0, err
	}
	logger.Info("paths counted", "memoized", res.Memoized, "resolutions", res.Resolutions)

	return res.Paths, nil
}
