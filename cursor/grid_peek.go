package cursor

import (
	"slices"
	"strings"

	"github.com/katalvlaran/gridwalk/core"
)

// PeekAt returns the rune at the current cell offset by (dRow, dCol). The
// column is checked against the target row's own length.
func (g *Grid) PeekAt(dRow, dCol int) (rune, bool) {
	r := g.row + dRow
	if r < 0 || r >= len(g.rows) {
		return 0, false
	}
	return g.rows[r].At(g.Col() + dCol)
}

// PeekNext returns the neighbour one step along d.
func (g *Grid) PeekNext(d core.Direction) (rune, bool) {
	v := d.Delta()
	return g.PeekAt(v.Row, v.Col)
}

// PeekWithDirection reads n cells along d starting with the current cell.
// ok is false if any of them falls outside the grid.
func (g *Grid) PeekWithDirection(n int, d core.Direction) (string, bool) {
	v := d.Delta()
	var b strings.Builder
	for i := 0; i < n; i++ {
		r, ok := g.PeekAt(i*v.Row, i*v.Col)
		if !ok {
			return "", false
		}
		b.WriteRune(r)
	}
	return b.String(), true
}

// PeekAllDirections concatenates the in-bounds neighbours in core.All8 order.
func (g *Grid) PeekAllDirections() string {
	var b strings.Builder
	for _, d := range core.All8 {
		if r, ok := g.PeekNext(d); ok {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WordCount returns, in core.All8 order, the directions in which word can be
// read starting at the current cell.
func (g *Grid) WordCount(word string) []core.Direction {
	n := len([]rune(word))
	var dirs []core.Direction
	for _, d := range core.All8 {
		if s, ok := g.PeekWithDirection(n, d); ok && s == word {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// DiagonalXExists reports whether an X of words is anchored at the current
// cell: one of words reads along SouthEast from here and one reads along
// SouthWest from the cell len-1 columns to the right. All words must share a
// length.
func (g *Grid) DiagonalXExists(words []string) bool {
	if len(words) == 0 {
		return false
	}
	n := len([]rune(words[0]))
	for _, w := range words[1:] {
		if len([]rune(w)) != n {
			return false
		}
	}
	down, ok := g.PeekWithDirection(n, core.SouthEast)
	if !ok || !slices.Contains(words, down) {
		return false
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		r, ok := g.PeekAt(i, n-1-i)
		if !ok {
			return false
		}
		b.WriteRune(r)
	}
	return slices.Contains(words, b.String())
}

// DiagonalXExistsAnyOrder is DiagonalXExists with word read either way.
func (g *Grid) DiagonalXExistsAnyOrder(word string) bool {
	return g.DiagonalXExists([]string{word, reverse(word)})
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
