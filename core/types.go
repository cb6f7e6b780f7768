// Package core defines Point, Vector and Direction together with the
// sentinel errors shared by the gridwalk packages.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core operations.
var (
	// ErrDiagonalRotation indicates NextCardinal was called on a diagonal Direction.
	ErrDiagonalRotation = errors.New("core: cannot rotate a diagonal direction")

	// ErrBadDirection indicates a Direction value outside the closed enumeration.
	ErrBadDirection = errors.New("core: unknown direction")
)

// Point is a (Row, Col) grid-cell address. Valid addresses are non-negative;
// Point values are comparable and safe to use as map keys.
type Point struct {
	Row, Col int
}

// Vector is a signed (Row, Col) offset used for deltas and velocities.
type Vector struct {
	Row, Col int
}

// String renders the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// String renders the vector as "<row,col>".
func (v Vector) String() string {
	return fmt.Sprintf("<%d,%d>", v.Row, v.Col)
}

// Scale multiplies both components by n.
func (v Vector) Scale(n int) Vector {
	return Vector{Row: v.Row * n, Col: v.Col * n}
}

// Direction is one of the eight compass directions.
// The zero value is East.
type Direction uint8

const (
	// East moves one column right.
	East Direction = iota
	// SouthEast moves one row down and one column right.
	SouthEast
	// South moves one row down.
	South
	// SouthWest moves one row down and one column left.
	SouthWest
	// West moves one column left.
	West
	// NorthWest moves one row up and one column left.
	NorthWest
	// North moves one row up.
	North
	// NorthEast moves one row up and one column right.
	NorthEast
)

// All8 lists every direction clockwise from East. The order is stable.
var All8 = [8]Direction{East, SouthEast, South, SouthWest, West, NorthWest, North, NorthEast}

// All4 lists the cardinal directions clockwise from East. The order is stable.
var All4 = [4]Direction{East, South, West, North}
