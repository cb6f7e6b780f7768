package cursor

import (
	"strings"

	"github.com/katalvlaran/gridwalk/core"
)

// Grid is a 2D cursor composed of Lines. Rows usually share one length, but
// this is not enforced; every bounds check uses the addressed row's own length.
type Grid struct {
	rows []*Line
	row  int
}

// NewGrid builds a Grid from text. Rows are separated by '\n', trimmed, and
// rows that end up empty are dropped.
func NewGrid(text string) *Grid {
	parts := strings.Split(text, "\n")
	rows := make([]*Line, 0, len(parts))
	for _, part := range parts {
		line := NewLine(part)
		if line.Len() == 0 {
			continue
		}
		rows = append(rows, line)
	}
	return &Grid{rows: rows}
}

// NewFilledGrid builds a size.Row × size.Col grid filled with r.
func NewFilledGrid(r rune, size core.Point) *Grid {
	n := max(size.Row, 0)
	rows := make([]*Line, n)
	for i := range rows {
		rows[i] = NewFilledLine(r, size.Col)
	}
	return &Grid{rows: rows}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.rows) }

// Width returns the length of the first row, or 0 for an empty grid.
func (g *Grid) Width() int {
	if len(g.rows) == 0 {
		return 0
	}
	return g.rows[0].Len()
}

// RowLen returns the length of row r, or 0 if r is out of range.
func (g *Grid) RowLen(r int) int {
	if r < 0 || r >= len(g.rows) {
		return 0
	}
	return g.rows[r].Len()
}

// Size returns (Rows, Width) as a Point.
func (g *Grid) Size() core.Point { return core.Point{Row: g.Rows(), Col: g.Width()} }

// Done reports whether the cursor is past the last row.
func (g *Grid) Done() bool { return g.row == len(g.rows) }

// Row returns the current row index in [0, Rows].
func (g *Grid) Row() int { return g.row }

// Col returns the current column. When the grid is exhausted it reports the
// last row's position.
func (g *Grid) Col() int {
	if len(g.rows) == 0 {
		return 0
	}
	if g.Done() {
		return g.rows[len(g.rows)-1].Position()
	}
	return g.rows[g.row].Position()
}

// Point returns the current (row, col).
func (g *Grid) Point() core.Point { return core.Point{Row: g.row, Col: g.Col()} }

// InBounds reports whether p addresses an existing cell.
func (g *Grid) InBounds(p core.Point) bool {
	return p.Row >= 0 && p.Row < len(g.rows) && p.Col >= 0 && p.Col < g.rows[p.Row].Len()
}

// At returns the rune at p without moving the cursor.
func (g *Grid) At(p core.Point) (rune, bool) {
	if p.Row < 0 || p.Row >= len(g.rows) {
		return 0, false
	}
	return g.rows[p.Row].At(p.Col)
}

// Peek returns the rune under the cursor.
func (g *Grid) Peek() (rune, bool) {
	if g.Done() {
		return 0, false
	}
	return g.rows[g.row].Peek()
}

// Pop returns the rune under the cursor and advances by one. Finishing a
// row moves the cursor to column 0 of the next one.
func (g *Grid) Pop() (rune, bool) {
	if g.Done() {
		return 0, false
	}
	line := g.rows[g.row]
	r, ok := line.Pop()
	if line.Done() {
		g.enterNextRow()
	}
	return r, ok
}

// Advance moves forward by n cells, carrying whatever a row could not absorb
// into the following rows until n is spent or the grid is exhausted.
func (g *Grid) Advance(n int) {
	for n > 0 && !g.Done() {
		line := g.rows[g.row]
		n = line.Advance(n)
		if line.Done() {
			g.enterNextRow()
		}
	}
}

// AdvanceTo searches for target row by row starting at the cursor. On
// success the cursor rests on target's last rune and true is returned;
// otherwise the grid is exhausted and false is returned.
func (g *Grid) AdvanceTo(target string) bool {
	for !g.Done() {
		if g.rows[g.row].AdvanceTo(target) {
			return true
		}
		g.enterNextRow()
	}
	return false
}

// GoTo moves the cursor to p. A row outside the grid selects the exhausted
// sentinel; the column is clamped to the row's length.
func (g *Grid) GoTo(p core.Point) *Grid {
	if p.Row < 0 || p.Row >= len(g.rows) {
		g.row = len(g.rows)
		return g
	}
	g.row = p.Row
	g.rows[g.row].GoTo(p.Col)
	return g
}

// Restore puts the cursor back on a Point previously returned by Point,
// including the exhausted one, whose column lives in the last row.
func (g *Grid) Restore(p core.Point) *Grid {
	if p.Row == len(g.rows) && len(g.rows) > 0 {
		g.rows[len(g.rows)-1].GoTo(p.Col)
		g.row = len(g.rows)
		return g
	}
	return g.GoTo(p)
}

// GoToWrapped moves the cursor to v reduced modulo the grid height and the
// target row's width, so negative coordinates wrap to the far edge.
// Panics with ErrEmptyGrid when there are no rows.
func (g *Grid) GoToWrapped(v core.Vector) *Grid {
	if len(g.rows) == 0 {
		panic(ErrEmptyGrid.Error())
	}
	g.row = core.Wrap(v.Row, len(g.rows))
	g.rows[g.row].GoToWrapped(v.Col)
	return g
}

// Reset rewinds every row and returns the cursor to the origin.
func (g *Grid) Reset() *Grid {
	g.row = 0
	for _, line := range g.rows {
		line.Reset()
	}
	return g
}

// Clone returns a deep copy, cursor state included.
func (g *Grid) Clone() *Grid {
	rows := make([]*Line, len(g.rows))
	for i, line := range g.rows {
		rows[i] = &Line{runes: line.Runes(), pos: line.pos}
	}
	return &Grid{rows: rows, row: g.row}
}

// String renders every row followed by a newline.
func (g *Grid) String() string {
	var b strings.Builder
	for _, line := range g.rows {
		b.WriteString(line.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) enterNextRow() {
	g.row++
	if g.row < len(g.rows) {
		g.rows[g.row].Reset()
	}
}
