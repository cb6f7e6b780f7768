package y2024

import (
	"strconv"

	"github.com/katalvlaran/gridwalk/cursor"
	"github.com/katalvlaran/gridwalk/gridgraph"
	"github.com/katalvlaran/gridwalk/internal/registry"
)

func init() {
	registry.Register(2024, 12, 1, func(input string) (string, error) {
		return strconv.Itoa(FencePrice(input, gridgraph.Region.Perimeter)), nil
	})
	registry.Register(2024, 12, 2, func(input string) (string, error) {
		return strconv.Itoa(FencePrice(input, gridgraph.Region.Sides)), nil
	})
}

// FencePrice sums area × measure over every garden region.
func FencePrice(input string, measure func(gridgraph.Region) int) int {
	total := 0
	for _, regions := range gridgraph.ConnectedComponents(cursor.NewGrid(input)) {
		for _, r := range regions {
			total += r.Area() * measure(r)
		}
	}
	return total
}
