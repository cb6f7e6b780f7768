package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/dijkstra"
)

var mazeCmd = &cobra.Command{
	Use:   "maze <file>",
	Short: "Draw every cheapest path when turns cost extra",
	Long: `Runs the turn-aware search: moving straight costs 1, turning before a
move costs 1 plus the turn penalty, and reversing is not allowed. The walk
starts facing east. Prints the minimal cost, the number of cells on at least
one cheapest path, and draws those cells.`,
	Args: cobra.ExactArgs(1),
	RunE: runMaze,
}

func runMaze(cmd *cobra.Command, args []string) error {
	g, start, end, opts, err := loadSearch(cmd, args[0])
	if err != nil {
		return err
	}
	res, err := dijkstra.ShortestPathWithTurns(g, start, end, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !res.Found {
		fmt.Fprintln(out, "no path")
		return nil
	}
	fmt.Fprintln(out, newRenderer(cmd).Grid(g, res.Cells))
	fmt.Fprintf(out, "cost %d\ncells %d\n", res.Cost, len(res.Cells))
	return nil
}
