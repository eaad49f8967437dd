// Command gen-logs writes a sample roster and play log.
//
// Usage:
//
//	gen-logs --players 1000 --plays 20 roster.csv plays.csv
//	gen-logs --uuid --seed 7 roster.xlsx plays.xlsx
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/okian/playrank/internal/sampledata"
	"github.com/okian/playrank/pkg/logger"
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := logger.InitWithWriter(stderr); err != nil {
		fmt.Fprintln(stderr, "failed to initialize logging:", err)
		return 1
	}

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	cfg := sampledata.DefaultConfig()
	var verbose bool

	cmd := &cobra.Command{
		Use:           "gen-logs <roster_file> <play_log_file>",
		Short:         "Generate a sample roster and play log",
		Long:          "Generates a roster and a play log. The file extension (.csv, .tsv, .xlsx) selects the output format.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if verbose {
				level = "info"
			}
			if err := logger.SetLevelString(level); err != nil {
				return err
			}

			ds, err := sampledata.Generate(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err := ds.Write(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d roster rows to %s and %d play records to %s\n",
				len(ds.Roster), args[0], len(ds.Plays), args[1])
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Players, "players", cfg.Players, "Registered players written to the roster")
	flags.IntVar(&cfg.PlaysPerPlayer, "plays", cfg.PlaysPerPlayer, "Play records per player")
	flags.Float64Var(&cfg.Unregistered, "unregistered", cfg.Unregistered, "Extra players, as a fraction of --players, that only appear in the play log")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed; the same seed produces the same files")
	flags.BoolVar(&cfg.UUIDs, "uuid", cfg.UUIDs, "Use uuid player ids")
	flags.DurationVar(&cfg.Interval, "interval", cfg.Interval, "Time between consecutive plays")
	flags.BoolVar(&verbose, "verbose", false, "Enable info logging")
	return cmd
}
