package y2024

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/gridwalk/core"
	"github.com/katalvlaran/gridwalk/cursor"
	"github.com/katalvlaran/gridwalk/dijkstra"
	"github.com/katalvlaran/gridwalk/internal/registry"
)

// Memory space of the real puzzle: coordinates 0..70, first kilobyte fallen.
const (
	memorySize = 70
	memoryTake = 1024
)

func init() {
	registry.Register(2024, 18, 1, func(input string) (string, error) {
		return EscapeSteps(input, memorySize, memoryTake)
	})
	registry.Register(2024, 18, 2, func(input string) (string, error) {
		return FirstBlocker(input, memorySize)
	})
}

// EscapeSteps drops the first take bytes onto a (size+1)² memory grid and
// returns the minimum steps from the top-left to the bottom-right corner.
func EscapeSteps(input string, size, take int) (string, error) {
	bytes, err := parseBytes(input)
	if err != nil {
		return "", err
	}
	res, err := escape(bytes[:min(take, len(bytes))], size)
	if err != nil {
		return "", err
	}
	if !res.Found {
		return "", fmt.Errorf("%w: exit blocked", errNoSolution)
	}
	return strconv.Itoa(res.Cost), nil
}

// FirstBlocker returns "x,y" of the first byte after which the exit becomes
// unreachable. Reachability only gets worse as bytes fall, so the count is
// binary searched.
func FirstBlocker(input string, size int) (string, error) {
	bytes, err := parseBytes(input)
	if err != nil {
		return "", err
	}
	var searchErr error
	n := sort.Search(len(bytes)+1, func(k int) bool {
		res, err := escape(bytes[:k], size)
		if err != nil {
			searchErr = err
			return true
		}
		return !res.Found
	})
	if searchErr != nil {
		return "", searchErr
	}
	if n == 0 || n > len(bytes) {
		return "", fmt.Errorf("%w: exit never blocked", errNoSolution)
	}
	b := bytes[n-1]
	return fmt.Sprintf("%d,%d", b.Col, b.Row), nil
}

func escape(bytes []core.Point, size int) (dijkstra.Result, error) {
	g := cursor.NewFilledGrid('.', core.Point{Row: size + 1, Col: size + 1})
	for _, b := range bytes {
		g.SetAt(b, '#')
	}
	return dijkstra.ShortestPath(g, core.Point{}, core.Point{Row: size, Col: size})
}

// parseBytes reads "x,y" lines into points (row y, column x).
func parseBytes(input string) ([]core.Point, error) {
	rows, err := cursor.NewGrid(input).SplitInts(",")
	if err != nil {
		return nil, err
	}
	out := make([]core.Point, 0, len(rows))
	for _, nums := range rows {
		if len(nums) != 2 {
			return nil, fmt.Errorf("%w: want x,y got %v", cursor.ErrParseInteger, nums)
		}
		out = append(out, core.Point{Row: nums[1], Col: nums[0]})
	}
	return out, nil
}
