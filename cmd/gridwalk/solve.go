package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/internal/registry"
)

var solveCmd = &cobra.Command{
	Use:   "solve <year> <day> <part> <file>",
	Short: "Run a registered puzzle solver",
	Long: `Runs the solver registered for year/day/part on the input file and
prints the answer.

Examples:
  gridwalk solve 2024 12 1 garden.txt
  cat maze.txt | gridwalk solve 2024 16 2 -`,
	Args: cobra.ExactArgs(4),
	RunE: runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	var key [3]int
	for i, name := range []string{"year", "day", "part"} {
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, args[i], err)
		}
		key[i] = n
	}

	solver, err := registry.Lookup(key[0], key[1], key[2])
	if err != nil {
		return fmt.Errorf("%w (run 'gridwalk list' to see available puzzles)", err)
	}
	input, err := readInput(cmd, args[3])
	if err != nil {
		return err
	}

	start := time.Now()
	answer, err := solver(input)
	if err != nil {
		return err
	}
	logger.Info("solved", "puzzle", registry.Key{Year: key[0], Day: key[1], Part: key[2]}, "elapsed", time.Since(start))
	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}
