package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/core"
	"github.com/katalvlaran/gridwalk/cursor"
)

func pt(r, c int) core.Point { return core.Point{Row: r, Col: c} }

func TestNewGrid_TrimsAndDropsEmptyRows(t *testing.T) {
	g := cursor.NewGrid("\n  abc \r\n\n def\n   \n")
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, "abc\ndef\n", g.String())
}

func TestNewFilledGrid(t *testing.T) {
	g := cursor.NewFilledGrid('.', pt(2, 3))
	assert.Equal(t, pt(2, 3), g.Size())
	assert.Equal(t, "...\n...\n", g.String())
}

// TestGrid_PopRoundTrip pops "he\nllo" cell by cell and checks the column
// reported before every pop and after exhaustion.
func TestGrid_PopRoundTrip(t *testing.T) {
	g := cursor.NewGrid("he\nllo")
	wantRunes := []rune{'h', 'e', 'l', 'l', 'o'}
	wantCols := []int{0, 1, 0, 1, 2}
	for i := range wantRunes {
		assert.Equal(t, wantCols[i], g.Col(), "col before pop %d", i)
		r, ok := g.Pop()
		require.True(t, ok)
		assert.Equal(t, wantRunes[i], r)
	}
	assert.Equal(t, 3, g.Col())
	assert.Equal(t, 2, g.Row())
	assert.True(t, g.Done())

	_, ok := g.Pop()
	assert.False(t, ok)
	assert.Equal(t, pt(2, 3), g.Point())
}

func TestGrid_PeekAt(t *testing.T) {
	g := cursor.NewGrid("he\nllo")
	cases := []struct {
		dr, dc int
		want   rune
		ok     bool
	}{
		{0, 0, 'h', true}, {0, 1, 'e', true}, {0, 2, 0, false},
		{1, 0, 'l', true}, {1, 1, 'l', true}, {1, 2, 'o', true},
		{1, 3, 0, false}, {2, 0, 0, false}, {-1, 0, 0, false},
	}
	for _, tc := range cases {
		r, ok := g.PeekAt(tc.dr, tc.dc)
		assert.Equal(t, tc.ok, ok, "PeekAt(%d,%d)", tc.dr, tc.dc)
		assert.Equal(t, tc.want, r, "PeekAt(%d,%d)", tc.dr, tc.dc)
	}
}

func TestGrid_PeekAtAfterAdvance(t *testing.T) {
	g := cursor.NewGrid("he\nllo")
	g.Advance(3)
	assert.Equal(t, pt(1, 1), g.Point())
	for _, tc := range []struct {
		dr, dc int
		want   rune
	}{{0, 0, 'l'}, {0, -1, 'l'}, {-1, 0, 'e'}, {-1, -1, 'h'}} {
		r, ok := g.PeekAt(tc.dr, tc.dc)
		require.True(t, ok)
		assert.Equal(t, tc.want, r)
	}
}

func TestGrid_PeekAtZeroMatchesPeek(t *testing.T) {
	g := cursor.NewGrid("abc\ndef\nghi")
	for !g.Done() {
		a, okA := g.PeekAt(0, 0)
		b, okB := g.Peek()
		c, okC := g.At(g.Point())
		assert.Equal(t, okA, okB)
		assert.Equal(t, okA, okC)
		assert.Equal(t, a, b)
		assert.Equal(t, a, c)
		g.Pop()
	}
}

func TestGrid_AdvanceCrossesRows(t *testing.T) {
	g := cursor.NewGrid("hello\nworld")
	g.Advance(5)
	r, ok := g.Peek()
	require.True(t, ok)
	assert.Equal(t, 'w', r)

	g.Advance(15)
	assert.True(t, g.Done())
}

func TestGrid_AdvanceTo(t *testing.T) {
	g := cursor.NewGrid("hello\nworld")
	require.True(t, g.AdvanceTo("w"))
	r, _ := g.Peek()
	assert.Equal(t, 'w', r)

	require.True(t, g.AdvanceTo("ld"))
	assert.Equal(t, pt(1, 4), g.Point())

	assert.False(t, g.AdvanceTo("zz"))
	assert.True(t, g.Done())
}

func TestGrid_AdvanceToRewindsEnteredRows(t *testing.T) {
	g := cursor.NewGrid("ab\ncd")
	g.GoTo(pt(1, 2)) // leave row 1 exhausted
	g.GoTo(pt(0, 0))
	require.True(t, g.AdvanceTo("c"), "row 1 is searched from column 0")
	assert.Equal(t, pt(1, 0), g.Point())
}

func TestGrid_GoTo(t *testing.T) {
	g := cursor.NewGrid("hello\nworld\n12345")
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.RowLen(row); col++ {
			assert.Equal(t, pt(row, col), g.GoTo(pt(row, col)).Point())
		}
	}
	g.GoTo(pt(7, 1))
	assert.True(t, g.Done(), "rows past the end select the exhausted sentinel")
}

func TestGrid_RestoreExhausted(t *testing.T) {
	g := cursor.NewGrid("abc\ndef\nghi")
	g.CountChars('a')
	saved := g.Point()
	require.Equal(t, pt(3, 3), saved)

	g.GoTo(pt(2, 0))
	g.Restore(saved)
	assert.True(t, g.Done())
	assert.Equal(t, saved, g.Point())

	g.Restore(pt(1, 2))
	assert.Equal(t, pt(1, 2), g.Point())
}

func TestGrid_GoToWrapped(t *testing.T) {
	g := cursor.NewGrid("hello\nworld\n12345")
	cases := []struct {
		to   core.Vector
		want rune
	}{
		{core.Vector{Row: -1, Col: -1}, '5'},
		{core.Vector{Row: 0, Col: 5}, 'h'},
		{core.Vector{Row: 3, Col: 5}, 'h'},
		{core.Vector{Row: -2, Col: -2}, 'l'},
	}
	for _, tc := range cases {
		r, ok := g.GoToWrapped(tc.to).Peek()
		require.True(t, ok)
		assert.Equal(t, tc.want, r, "GoToWrapped(%v)", tc.to)
	}
	assert.PanicsWithValue(t, cursor.ErrEmptyGrid.Error(), func() {
		cursor.NewGrid("").GoToWrapped(core.Vector{})
	})
}

func TestGrid_PeekWithDirection(t *testing.T) {
	g := cursor.NewGrid("hello\nworld")
	check := func(n int, d core.Direction, want string, wantOK bool) {
		t.Helper()
		s, ok := g.PeekWithDirection(n, d)
		assert.Equal(t, wantOK, ok, "%d %s from %s", n, d, g.Point())
		assert.Equal(t, want, s, "%d %s from %s", n, d, g.Point())
	}
	check(2, core.South, "hw", true)
	check(2, core.SouthEast, "ho", true)
	check(2, core.North, "", false)
	check(5, core.East, "hello", true)

	g.GoTo(pt(0, 4))
	check(2, core.SouthWest, "ol", true)
	check(2, core.West, "ol", true)

	g.GoTo(pt(1, 0))
	check(2, core.East, "wo", true)

	g.GoTo(pt(1, 4))
	check(2, core.NorthWest, "dl", true)
	check(2, core.North, "do", true)

	g.GoTo(pt(1, 3))
	check(2, core.NorthEast, "lo", true)
}

func TestGrid_PeekAllDirections(t *testing.T) {
	g := cursor.NewGrid("abc\ndef\nghi")
	g.GoTo(pt(1, 1))
	assert.Equal(t, "fihgdabc", g.PeekAllDirections())

	g.GoTo(pt(0, 0))
	assert.Equal(t, "bed", g.PeekAllDirections(), "out-of-bounds neighbours are skipped")
}

func TestGrid_WordCount(t *testing.T) {
	g := cursor.NewGrid("hello\nworld")
	assert.Equal(t, []core.Direction{core.East}, g.WordCount("hello"))
	assert.Equal(t, []core.Direction{core.South}, g.WordCount("hw"))
	assert.Empty(t, g.WordCount("xyz"))
}

func TestGrid_DiagonalX(t *testing.T) {
	g := cursor.NewGrid("hello\nworld")
	assert.True(t, g.DiagonalXExists([]string{"ho", "ew"}))
	assert.False(t, g.DiagonalXExists([]string{"ho", "wo"}))
	assert.False(t, g.DiagonalXExists([]string{"ho", "abc"}), "words of different length never match")

	x := cursor.NewGrid("M.S\n.A.\nM.S")
	assert.True(t, x.DiagonalXExistsAnyOrder("MAS"))
	assert.Equal(t, pt(0, 0), x.Point(), "the X test does not move the cursor")
}

func TestGrid_AdvanceWithDirection(t *testing.T) {
	g := cursor.NewGrid("abc\ndef\nghi")
	require.True(t, g.AdvanceWithDirection(2, core.SouthEast))
	assert.Equal(t, pt(2, 2), g.Point())
	require.True(t, g.AdvanceWithDirection(1, core.NorthWest))
	assert.Equal(t, pt(1, 1), g.Point())

	assert.False(t, g.AdvanceWithDirection(2, core.North), "leaving the grid is refused")
	assert.Equal(t, pt(1, 1), g.Point())

	require.True(t, g.AdvanceWithDirection(1, core.SouthWest))
	r, _ := g.Peek()
	assert.Equal(t, 'g', r)
}

func TestGrid_AdvanceToWithDirection(t *testing.T) {
	g := cursor.NewGrid("....#\n.....")
	assert.True(t, g.AdvanceToWithDirection('#', core.East))
	assert.Equal(t, pt(0, 3), g.Point())

	g.GoTo(pt(1, 0))
	assert.False(t, g.AdvanceToWithDirection('#', core.East))
	assert.Equal(t, pt(1, 4), g.Point(), "stops on the last in-bounds cell")
}

func TestGrid_SetFillSwap(t *testing.T) {
	g := cursor.NewFilledGrid('.', pt(3, 4))
	g.GoTo(pt(1, 1)).Set('#')
	assert.Equal(t, "....\n.#..\n....\n", g.String())

	g.Fill('x', pt(2, 3), pt(1, 2))
	assert.Equal(t, "....\n.#xx\n..xx\n", g.String())

	g.Fill('o', pt(-5, -5), pt(0, 99))
	assert.Equal(t, "oooo\n.#xx\n..xx\n", g.String(), "fill is clamped")

	g.GoTo(pt(1, 1))
	g.GoTo(pt(2, 0))
	g.GoTo(pt(1, 1))
	require.True(t, g.Swap(pt(2, 0)))
	assert.Equal(t, "oooo\n..xx\n#.xx\n", g.String())
	assert.Equal(t, pt(1, 1), g.Point(), "swap does not navigate")

	assert.False(t, g.Swap(pt(9, 9)))
	assert.Equal(t, "oooo\n..xx\n#.xx\n", g.String())
}

func TestGrid_CountChars(t *testing.T) {
	g := cursor.NewGrid("a.a\n.a.\naaa")
	g.GoTo(pt(2, 2))
	assert.Equal(t, 6, g.CountChars('a'), "counting starts from the origin")
	assert.True(t, g.Done())
}

func TestGrid_Find(t *testing.T) {
	g := cursor.NewGrid("..S\n.S.\n...")
	g.GoTo(pt(2, 1))

	p, ok := g.Find('S')
	assert.True(t, ok)
	assert.Equal(t, pt(0, 2), p, "first match in row-major order")
	assert.Equal(t, pt(2, 1), g.Point(), "the cursor does not move")

	_, ok = g.Find('E')
	assert.False(t, ok)
}

func TestGrid_IterateIsSinglePass(t *testing.T) {
	g := cursor.NewGrid("ab\nc")
	var got []core.Point
	var runes []rune
	for r, p := range g.Iterate() {
		runes = append(runes, r)
		got = append(got, p)
	}
	assert.Equal(t, []rune{'a', 'b', 'c'}, runes)
	assert.Equal(t, []core.Point{pt(0, 0), pt(0, 1), pt(1, 0)}, got)

	n := 0
	for range g.Iterate() {
		n++
	}
	assert.Zero(t, n, "an exhausted cursor yields nothing")

	g.Reset()
	for range g.Iterate() {
		n++
	}
	assert.Equal(t, 3, n)
}

func TestGrid_SplitInts(t *testing.T) {
	g := cursor.NewGrid("5,4\n4,2\n")
	nums, err := g.SplitInts(",")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{5, 4}, {4, 2}}, nums)

	_, err = cursor.NewGrid("1,a").SplitInts(",")
	assert.ErrorIs(t, err, cursor.ErrParseInteger)
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := cursor.NewGrid("ab\ncd")
	g.GoTo(pt(1, 1))
	c := g.Clone()
	c.Set('X')
	assert.Equal(t, "ab\ncd\n", g.String())
	assert.Equal(t, "ab\ncX\n", c.String())
	assert.Equal(t, g.Point(), c.Point())
}
