package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/core"
	"github.com/katalvlaran/gridwalk/cursor"
	"github.com/katalvlaran/gridwalk/dijkstra"
	"github.com/katalvlaran/gridwalk/internal/render"
)

var (
	flagFrontier    string
	flagTurnPenalty int
)

var pathCmd = &cobra.Command{
	Use:   "path <file>",
	Short: "Draw the shortest path between start and end markers",
	Long: `Runs a plain shortest-path search (every step costs 1) from the start
marker to the end marker, avoiding walls, and draws the path.

Markers and the wall character come from the config (default S, E, #).`,
	Args: cobra.ExactArgs(1),
	RunE: runPath,
}

func init() {
	for _, c := range []*cobra.Command{pathCmd, mazeCmd} {
		c.Flags().StringVar(&flagFrontier, "frontier", "", "Frontier: heap or linear (overrides config)")
	}
	mazeCmd.Flags().IntVar(&flagTurnPenalty, "turn-penalty", -1, "Extra cost per heading change (overrides config)")
}

func runPath(cmd *cobra.Command, args []string) error {
	g, start, end, opts, err := loadSearch(cmd, args[0])
	if err != nil {
		return err
	}
	res, err := dijkstra.ShortestPath(g, start, end, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !res.Found {
		fmt.Fprintln(out, "no path")
		return nil
	}
	fmt.Fprintln(out, newRenderer(cmd).Grid(g, res.Path))
	fmt.Fprintf(out, "cost %d\n", res.Cost)
	return nil
}

// loadSearch reads the grid, locates the markers and assembles the search
// options from config and flags.
func loadSearch(cmd *cobra.Command, name string) (*cursor.Grid, core.Point, core.Point, []dijkstra.Option, error) {
	input, err := readInput(cmd, name)
	if err != nil {
		return nil, core.Point{}, core.Point{}, nil, err
	}
	search := cfg.Search
	if flagFrontier != "" {
		search.Frontier = flagFrontier
	}
	if cmd.Flags().Changed("turn-penalty") {
		search.TurnPenalty = flagTurnPenalty
	}
	if _, ok := dijkstra.ParseFrontier(search.Frontier); !ok {
		return nil, core.Point{}, core.Point{}, nil, fmt.Errorf("unknown frontier %q", search.Frontier)
	}
	if search.TurnPenalty < 0 {
		return nil, core.Point{}, core.Point{}, nil, fmt.Errorf("turn penalty must be non-negative, got %d", search.TurnPenalty)
	}

	g := cursor.NewGrid(input)
	start, ok := g.Find(search.StartRune())
	if !ok {
		return nil, core.Point{}, core.Point{}, nil, fmt.Errorf("start marker %q not found", search.Start)
	}
	end, ok := g.Find(search.EndRune())
	if !ok {
		return nil, core.Point{}, core.Point{}, nil, fmt.Errorf("end marker %q not found", search.End)
	}
	logger.Debug("markers", "start", start, "end", end)

	opts := append(search.Options(), dijkstra.WithLogger(logger))
	return g, start, end, opts, nil
}

func newRenderer(cmd *cobra.Command) *render.Renderer {
	return render.New(cfg.Render, cfg.Search.WallRune(),
		[]rune{cfg.Search.StartRune(), cfg.Search.EndRune()}, useColor(cmd.OutOrStdout()))
}
