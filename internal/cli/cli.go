package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// Counting modes.
const (
	ModeSplits = "splits"
	ModePaths  = "paths"
)

// ExitError is an error that carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError builds the exit-code-2 error used for every usage problem.
func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Config holds the validated driver configuration.
type Config struct {
	GridPath       string
	Mode           string
	Workers        int
	LogLevel       string
	LogFormat      string
	OriginFallback bool
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GridPath == "" {
		return nil, errors.New("grid path is required")
	}
	switch cfg.Mode {
	case ModeSplits, ModePaths:
	default:
		return nil, fmt.Errorf("invalid mode %q: must be %q or %q", cfg.Mode, ModeSplits, ModePaths)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("invalid workers %d: must be at least 1", cfg.Workers)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating the program should exit cleanly (help was shown),
// or an *ExitError for any usage problem.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("beamsplit", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
beamsplit - count beam splits or distinct beam paths through a splitter grid.

Usage:
  beamsplit [options] GRID_PATH

Arguments:
  GRID_PATH
    Path to a text grid of 'S' (start), '^' (splitter) and '.' (empty).

Options:
`)
		flagSet.PrintDefaults()
	}

	modeFlag := flagSet.String("mode", ModeSplits, "What to count. Options: 'splits' or 'paths'.")
	workersFlag := flagSet.Int("workers", 1, "Goroutines evaluating each frontier round (splits mode).")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	fallbackFlag := flagSet.Bool("origin-fallback", false, "Start at (0,0) when the grid has no 'S' instead of failing.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%v", err)
	}

	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return nil, false, usageError("expected exactly one GRID_PATH argument, got %d", flagSet.NArg())
	}

	cfg, err := NewConfig(Config{
		GridPath:       flagSet.Arg(0),
		Mode:           strings.ToLower(*modeFlag),
		Workers:        *workersFlag,
		LogLevel:       strings.ToLower(*logLevelFlag),
		LogFormat:      strings.ToLower(*logFormatFlag),
		OriginFallback: *fallbackFlag,
	})
	if err != nil {
		return nil, false, usageError("%v", err)
	}

	return cfg, false, nil
}
