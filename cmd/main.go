// Command playrank prints the top of the leaderboard built from a roster and
// a play log.
//
// Usage:
//
//	playrank <roster_file> <play_log_file>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	app "github.com/okian/playrank/internal/app"
	"github.com/okian/playrank/internal/config"
	"github.com/okian/playrank/pkg/logger"
	"github.com/okian/playrank/pkg/metrics"
)

const expectedArgs = 2

// ErrUsage is returned when the command line does not name exactly two files.
var ErrUsage = errors.New("invalid argument number")

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit code. Errors are
// printed to stderr exactly once; stdout only ever receives a complete report.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := logger.InitWithWriter(stderr); err != nil {
		fmt.Fprintln(stderr, "failed to initialize logging:", err)
		return 1
	}

	root := newRootCmd(stdout)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, ErrUsage) {
			fmt.Fprintln(stderr, "usage:", root.UseLine())
		}
		return 1
	}
	return 0
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:           "playrank <roster_file> <play_log_file>",
		Short:         "Rank players by their best score",
		Long:          "Reads a roster and a play log, keeps each player's best score and prints the top ranked players as CSV.",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Every token is a file path, including "-h" and names starting with "-".
		DisableFlagParsing: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != expectedArgs {
				return fmt.Errorf("%w: expected %d, got %d", ErrUsage, expectedArgs, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd.Context(), args[0], args[1], stdout)
		},
	}
}

func execute(ctx context.Context, rosterPath, playPath string, stdout io.Writer) error {
	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	loggerInstance := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		_ = logger.SetLevelString("warn")
		loggerInstance.Warn(ctx, "invalid log_level; falling back to warn", logger.String("log_level", cfg.LogLevel), logger.Error(err))
	}

	metrics.Init(metrics.WithNamespace(cfg.MetricsNamespace))
	if cfg.MetricsFile != "" {
		defer func() {
			if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
				loggerInstance.Warn(ctx, "failed to export metrics", logger.String("path", cfg.MetricsFile), logger.Error(err))
			}
		}()
	}

	svc := app.New(app.WithLogger(loggerInstance))
	res, err := svc.Run(ctx, rosterPath, playPath)
	if err != nil {
		return err
	}
	return svc.Render(ctx, stdout, res)
}
