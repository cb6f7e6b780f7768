// Package y2025 registers grid puzzle solvers for the 2025 season.
// Importing it for side effects fills internal/registry.
package y2025

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/gridwalk/cursor"
	"github.com/katalvlaran/gridwalk/internal/registry"
)

const (
	roll       = '@'
	maxCrowded = 4 // a roll with this many roll neighbours cannot be reached
)

func init() {
	registry.Register(2025, 4, 1, func(input string) (string, error) {
		return strconv.Itoa(sweep(cursor.NewGrid(input), false)), nil
	})
	registry.Register(2025, 4, 2, func(input string) (string, error) {
		g := cursor.NewGrid(input)
		total := 0
		for {
			n := sweep(g, true)
			if n == 0 {
				break
			}
			total += n
		}
		return strconv.Itoa(total), nil
	})
}

// sweep visits every cell once from the origin and counts the rolls a
// forklift can reach. With remove set, reachable rolls are cleared as they
// are found, which can free later cells in the same sweep.
func sweep(g *cursor.Grid, remove bool) int {
	count := 0
	for g.Reset(); !g.Done(); g.Pop() {
		if r, _ := g.Peek(); r != roll {
			continue
		}
		if strings.Count(g.PeekAllDirections(), string(roll)) < maxCrowded {
			count++
			if remove {
				g.Set('.')
			}
		}
	}
	return count
}
