package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered puzzle solvers",
	Long:  `Shows every year/day/part with a registered solver.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	keys := registry.List()

	if len(keys) == 0 {
		fmt.Fprintln(out, "No puzzles registered.")
		return nil
	}

	fmt.Fprintln(out, "Registered puzzles:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-4s  %3s  %4s\n", "Year", "Day", "Part")
	fmt.Fprintf(out, "  %-4s  %3s  %4s\n", "----", "---", "----")
	for _, k := range keys {
		fmt.Fprintf(out, "  %-4d  %3d  %4d\n", k.Year, k.Day, k.Part)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'gridwalk solve <year> <day> <part> <file>' to solve one.")
	return nil
}
