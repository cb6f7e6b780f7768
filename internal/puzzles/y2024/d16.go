package y2024

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/gridwalk/cursor"
	"github.com/katalvlaran/gridwalk/dijkstra"
	"github.com/katalvlaran/gridwalk/internal/registry"
)

func init() {
	registry.Register(2024, 16, 1, func(input string) (string, error) {
		res, err := reindeerMaze(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(res.Cost), nil
	})
	registry.Register(2024, 16, 2, func(input string) (string, error) {
		res, err := reindeerMaze(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(len(res.Cells)), nil
	})
}

// reindeerMaze runs the turn-aware search from 'S' to 'E', starting east.
func reindeerMaze(input string) (dijkstra.TurnResult, error) {
	g := cursor.NewGrid(input)
	start, ok := g.Find('S')
	if !ok {
		return dijkstra.TurnResult{}, fmt.Errorf("%w: maze has no start", errNoSolution)
	}
	end, ok := g.Find('E')
	if !ok {
		return dijkstra.TurnResult{}, fmt.Errorf("%w: maze has no end", errNoSolution)
	}
	res, err := dijkstra.ShortestPathWithTurns(g, start, end)
	if err != nil {
		return res, err
	}
	if !res.Found {
		return res, fmt.Errorf("%w: end unreachable", errNoSolution)
	}
	return res, nil
}
