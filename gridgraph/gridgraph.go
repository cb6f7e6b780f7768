package gridgraph

import (
	"github.com/katalvlaran/gridwalk/core"
	"github.com/katalvlaran/gridwalk/cursor"
)

// Index maps every rune to the cells holding it, in scan order.
// The cursor is left reset at the origin.
func Index(g *cursor.Grid) map[rune][]core.Point {
	index := make(map[rune][]core.Point)
	g.Reset()
	for r, p := range g.Iterate() {
		index[r] = append(index[r], p)
	}
	g.Reset()
	return index
}

// Area returns the number of cells in r.
func (r Region) Area() int { return len(r) }

// Perimeter counts cell edges of r not shared with another cell of r.
func (r Region) Perimeter() int {
	in := r.set()
	perimeter := 0
	for _, p := range r {
		for _, d := range core.All4 {
			if !contains(in, p, d.Delta()) {
				perimeter++
			}
		}
	}
	return perimeter
}

// Sides counts the straight fence runs around r, holes included. A polygon
// has as many sides as corners, so every convex and concave corner is counted.
func (r Region) Sides() int {
	in := r.set()
	corners := 0
	for _, p := range r {
		for _, d := range core.All4 {
			a, b := d.Delta(), d.NextCardinal().Delta()
			inA, inB := contains(in, p, a), contains(in, p, b)
			switch {
			case !inA && !inB:
				corners++
			case inA && inB && !contains(in, p, core.Vector{Row: a.Row + b.Row, Col: a.Col + b.Col}):
				corners++
			}
		}
	}
	return corners
}

func contains(in map[core.Point]struct{}, p core.Point, v core.Vector) bool {
	q, ok := p.Add(v)
	if !ok {
		return false
	}
	_, found := in[q]
	return found
}
