package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/growkit/cmd/growbench/logger"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	noColor  bool
	logLevel string
	logJSON  bool

	// stdin is where the workload numbers are read from when not passed as arguments.
	stdin io.Reader = os.Stdin
)

var rootCmd = &cobra.Command{
	Use:   "growbench [endCount startCount insertLocation]",
	Short: "Benchmark a geometrically growing int32 array",
	Long: `growbench times a fixed workload against a growable array:
endCount appends, startCount prepends, startCount inserts at insertLocation,
endCount removals from the end and startCount removals from the start,
followed by a sum of whatever remains.

When the three numbers are not given as arguments they are read from stdin.

Example:
  growbench 10000000 1000 5000
  echo "100000 100 50" | growbench --verbose
  growbench 100000 100 50 --json`,
	Args:              cobra.MaximumNArgs(3),
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench(cmd.Context(), args)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show a per-phase breakdown")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Enable logging to stderr at this level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Use JSON log lines")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(*cobra.Command, []string) error {
	level, enabled, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger.Init(logger.Options{
		Enabled: enabled,
		Level:   level,
		JSON:    logJSON,
		NoColor: noColor,
	})
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
