package cursor

import (
	"iter"
	"slices"

	"github.com/katalvlaran/gridwalk/core"
)

// CountChars resets the grid and pops through every cell counting r.
// The cursor is left exhausted.
func (g *Grid) CountChars(r rune) int {
	g.Reset()
	count := 0
	for !g.Done() {
		if c, ok := g.Pop(); ok && c == r {
			count++
		}
	}
	return count
}

// Find returns the first cell holding r in row-major order without moving
// the cursor.
func (g *Grid) Find(r rune) (core.Point, bool) {
	for row, line := range g.rows {
		if col := slices.Index(line.runes, r); col >= 0 {
			return core.Point{Row: row, Col: col}, true
		}
	}
	return core.Point{}, false
}

// Iterate yields (rune, point) pairs by popping from the current position to
// the end of the grid. The sequence is single-pass: the cursor advances as it
// is consumed, and Reset is the only way to start over.
func (g *Grid) Iterate() iter.Seq2[rune, core.Point] {
	return func(yield func(rune, core.Point) bool) {
		for !g.Done() {
			p := g.Point()
			r, ok := g.Pop()
			if !ok {
				continue
			}
			if !yield(r, p) {
				return
			}
		}
	}
}

// SplitStrings applies Line.SplitStrings to every row.
func (g *Grid) SplitStrings(delim string) [][]string {
	out := make([][]string, len(g.rows))
	for i, line := range g.rows {
		out[i] = line.SplitStrings(delim)
	}
	return out
}

// SplitInts applies Line.SplitInts to every row, failing on the first bad
// token.
func (g *Grid) SplitInts(delim string) ([][]int, error) {
	out := make([][]int, len(g.rows))
	for i, line := range g.rows {
		nums, err := line.SplitInts(delim)
		if err != nil {
			return nil, err
		}
		out[i] = nums
	}
	return out, nil
}
