package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/growkit/pkg/bench"
)

var (
	growthSteps    int
	growthCapacity int
)

func init() {
	cmd := newGrowthCmd()
	cmd.Flags().IntVarP(&growthSteps, "steps", "n", 100, "Number of appends to perform")
	cmd.Flags().IntVar(&growthCapacity, "start-capacity", 0, "Initial capacity of the array")
	rootCmd.AddCommand(cmd)
}

func newGrowthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "growth",
		Short: "Show how capacity grows while appending",
		Long: `The growth command appends elements to an empty array and prints every
capacity change, which shows the 2n+1 growth policy.

Example:
  growbench growth
  growbench growth --steps 1000000 --start-capacity 16
  growbench growth --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrowth()
		},
	}
}

func runGrowth() error {
	if growthSteps < 0 || growthCapacity < 0 {
		return fmt.Errorf("steps and start capacity must be non-negative")
	}

	transitions := bench.Growth(growthCapacity, growthSteps)
	if jsonOut {
		if transitions == nil {
			transitions = []bench.Transition{}
		}
		return printJSON(transitions)
	}

	if len(transitions) == 0 {
		printInfo("No reallocation in %d appends (capacity %d)\n", growthSteps, growthCapacity)
		return nil
	}
	for _, tr := range transitions {
		printInfo("  len=%-10d cap grew %d → %d\n", tr.Size, tr.From, tr.To)
	}
	printInfo("%d reallocations in %d appends\n", len(transitions), growthSteps)
	return nil
}
