package gridgraph

import (
	"github.com/katalvlaran/gridwalk/core"
	"github.com/katalvlaran/gridwalk/cursor"
)

// ConnectedComponents finds every maximal 4-connected region of equal runes.
// Cells are seeded in scan order, so each region starts with its top-left-most
// cell in reading order; regions of one rune appear in the order their seeds
// were met. Every cell belongs to exactly one region.
//
// The cursor is left reset at the origin.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func ConnectedComponents(g *cursor.Grid) Clusters {
	clusters := make(Clusters)
	seen := newMarks(g)

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.RowLen(row); col++ {
			p := core.Point{Row: row, Col: col}
			if seen.has(p) {
				continue
			}
			r, _ := g.At(p)
			clusters[r] = append(clusters[r], flood(g, p, r, seen))
		}
	}
	g.Reset()
	return clusters
}

// flood collects the region of r containing start, marking its cells in seen.
func flood(g *cursor.Grid, start core.Point, r rune, seen marks) Region {
	queue := []core.Point{start}
	seen.mark(start)
	for qi := 0; qi < len(queue); qi++ {
		p := queue[qi]
		g.GoTo(p)
		for _, d := range core.All4 {
			next, ok := g.PeekNext(d)
			if !ok || next != r {
				continue
			}
			q, _ := p.Step(d)
			if !seen.has(q) {
				seen.mark(q)
				queue = append(queue, q)
			}
		}
	}
	return Region(queue)
}

// marks is a per-row visited table sized to each row's own length.
type marks [][]bool

func newMarks(g *cursor.Grid) marks {
	m := make(marks, g.Rows())
	for row := range m {
		m[row] = make([]bool, g.RowLen(row))
	}
	return m
}

func (m marks) has(p core.Point) bool { return m[p.Row][p.Col] }

func (m marks) mark(p core.Point) { m[p.Row][p.Col] = true }
