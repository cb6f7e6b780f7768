package main

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/cursor"
	"github.com/katalvlaran/gridwalk/gridgraph"
)

var regionsCmd = &cobra.Command{
	Use:   "regions <file>",
	Short: "Summarize the 4-connected regions of a grid",
	Long: `Groups equal neighbouring characters into regions and prints, per
character, the region count, total area and the two fence prices
(area × perimeter and area × sides).`,
	Args: cobra.ExactArgs(1),
	RunE: runRegions,
}

type regionRow struct {
	r                       rune
	regions, area           int
	perimeterCost, sideCost int
}

func runRegions(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	g := cursor.NewGrid(input)
	clusters := gridgraph.ConnectedComponents(g)
	logger.Debug("clustered", "rows", g.Rows(), "width", g.Width(), "regions", clusters.Len())

	runes := make([]rune, 0, len(clusters))
	for r := range clusters {
		runes = append(runes, r)
	}
	slices.Sort(runes)

	var total regionRow
	rows := make([]regionRow, 0, len(runes))
	for _, r := range runes {
		row := regionRow{r: r, regions: len(clusters[r])}
		for _, region := range clusters[r] {
			row.area += region.Area()
			row.perimeterCost += region.Area() * region.Perimeter()
			row.sideCost += region.Area() * region.Sides()
		}
		rows = append(rows, row)
		total.regions += row.regions
		total.area += row.area
		total.perimeterCost += row.perimeterCost
		total.sideCost += row.sideCost
	}

	out := cmd.OutOrStdout()
	header := lipgloss.NewStyle()
	if useColor(out) {
		header = header.Bold(true).Foreground(lipgloss.Color(cfg.Render.MarkerColor))
	}
	fmt.Fprintln(out, header.Render(fmt.Sprintf("%-4s %7s %6s %10s %10s", "Char", "Regions", "Area", "Perimeter", "Sides")))
	for _, row := range rows {
		fmt.Fprintf(out, "%-4c %7d %6d %10d %10d\n", row.r, row.regions, row.area, row.perimeterCost, row.sideCost)
	}
	fmt.Fprintf(out, "%-4s %7d %6d %10d %10d\n", "all", total.regions, total.area, total.perimeterCost, total.sideCost)
	return nil
}
