package cursor

import "github.com/katalvlaran/gridwalk/core"

// AdvanceWithDirection moves the cursor n steps along d in one update. A
// move that would leave the grid is refused: the cursor stays put and false
// is returned.
func (g *Grid) AdvanceWithDirection(n int, d core.Direction) bool {
	if g.Done() {
		return false
	}
	v := d.Delta().Scale(n)
	target := core.Point{Row: g.row + v.Row, Col: g.Col() + v.Col}
	if !g.InBounds(target) {
		return false
	}
	g.row = target.Row
	g.rows[g.row].GoTo(target.Col)
	return true
}

// AdvanceToWithDirection walks along d until the next cell holds r or the
// grid ends, stopping on the last cell before it. It reports whether r was
// found.
func (g *Grid) AdvanceToWithDirection(r rune, d core.Direction) bool {
	v := d.Delta()
	for i := 1; ; i++ {
		next, ok := g.PeekAt(i*v.Row, i*v.Col)
		if !ok || next == r {
			g.AdvanceWithDirection(i-1, d)
			return ok
		}
	}
}

// Set overwrites the current cell; an exhausted grid ignores it.
func (g *Grid) Set(r rune) {
	if !g.Done() {
		g.rows[g.row].Set(r)
	}
}

// SetAt overwrites the cell at p without moving; out of bounds is a no-op.
func (g *Grid) SetAt(p core.Point, r rune) {
	if p.Row >= 0 && p.Row < len(g.rows) {
		g.rows[p.Row].SetAt(p.Col, r)
	}
}

// Fill writes r into the rectangle spanned by the corners from and to.
// Rows and columns are ordered independently and clamped to the grid.
func (g *Grid) Fill(r rune, from, to core.Point) {
	lo := max(min(from.Row, to.Row), 0)
	hi := min(max(from.Row, to.Row), len(g.rows)-1)
	for row := lo; row <= hi; row++ {
		g.rows[row].Fill(r, from.Col, to.Col)
	}
}

// Swap exchanges the current cell's rune with the rune at p. Neither cursor
// moves. It reports false, changing nothing, when either cell is missing.
func (g *Grid) Swap(p core.Point) bool {
	cur := g.Point()
	a, ok := g.At(cur)
	if !ok {
		return false
	}
	b, ok := g.At(p)
	if !ok {
		return false
	}
	g.SetAt(cur, b)
	g.SetAt(p, a)
	return true
}
