package core

import "golang.org/x/exp/constraints"

// Add offsets p by v. ok is false when the result has a negative coordinate.
func (p Point) Add(v Vector) (Point, bool) {
	r, c := p.Row+v.Row, p.Col+v.Col
	if r < 0 || c < 0 {
		return p, false
	}
	return Point{Row: r, Col: c}, true
}

// Step moves p one cell along d. ok is false when the step leaves the
// non-negative quadrant; upper bounds are the caller's grid's business.
func (p Point) Step(d Direction) (Point, bool) {
	return p.Add(d.Delta())
}

// Near reports whether p and q are 4-adjacent.
func (p Point) Near(q Point) bool {
	return p.Manhattan(q) == 1
}

// Manhattan returns |Δrow| + |Δcol|.
func (p Point) Manhattan(q Point) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// WrapAdd offsets p by v on a torus of the given size: both coordinates are
// reduced modulo size and negative results wrap to the high end.
// Panics if either dimension of size is not positive.
func (p Point) WrapAdd(v Vector, size Point) Point {
	return Point{
		Row: Wrap(p.Row+v.Row, size.Row),
		Col: Wrap(p.Col+v.Col, size.Col),
	}
}

// Wrap reduces n into [0, m). Panics if m <= 0.
func Wrap(n, m int) int {
	if m <= 0 {
		panic("core: wrap modulus must be positive")
	}
	n %= m
	if n < 0 {
		n += m
	}
	return n
}

func abs[T constraints.Signed](n T) T {
	if n < 0 {
		return -n
	}
	return n
}
