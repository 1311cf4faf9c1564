package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/text/language"

	"github.com/joshuapare/growkit/cmd/growbench/logger"
	"github.com/joshuapare/growkit/pkg/bench"
)

var (
	benchInitialCapacity int
	benchVerify          bool
)

func init() {
	rootCmd.Flags().IntVar(&benchInitialCapacity, "initial-capacity", 0, "Presize the array to this many elements")
	rootCmd.Flags().BoolVar(&benchVerify, "verify", false, "Check the size/capacity invariant after every phase")
}

func runBench(ctx context.Context, args []string) error {
	cfg, err := readConfig(args)
	if err != nil {
		return err
	}
	cfg.InitialCapacity = benchInitialCapacity
	cfg.Verify = benchVerify

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if !jsonOut {
		printInfo("Starting\n")
	}
	logger.L.Debug("benchmark starting",
		"end_count", cfg.EndCount,
		"start_count", cfg.StartCount,
		"insert_location", cfg.InsertLocation,
		"initial_capacity", cfg.InitialCapacity)

	res, err := bench.Run(ctx, cfg, logger.L)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	if jsonOut {
		return printJSON(res)
	}
	if quiet {
		return nil
	}
	if err := bench.WriteSummary(os.Stdout, res); err != nil {
		return err
	}
	if verbose {
		fmt.Fprintln(os.Stdout)
		return bench.WritePhases(os.Stdout, res, language.English)
	}
	return nil
}

// readConfig parses the three workload numbers from args, or prompts for
// them on stdin when they are not all present.
func readConfig(args []string) (bench.Config, error) {
	if len(args) == 3 {
		return bench.ParseArgs(args)
	}
	if !quiet && !jsonOut {
		fmt.Fprintln(os.Stdout, bench.Prompt)
	}
	return bench.Scan(stdin)
}
