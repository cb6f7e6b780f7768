package core

// Opposite returns the direction rotated by 180°.
func (d Direction) Opposite() Direction {
	switch d {
	case East:
		return West
	case SouthEast:
		return NorthWest
	case South:
		return North
	case SouthWest:
		return NorthEast
	case West:
		return East
	case NorthWest:
		return SouthEast
	case North:
		return South
	case NorthEast:
		return SouthWest
	}
	panic(ErrBadDirection.Error())
}

// NextCardinal returns the cardinal direction 90° clockwise from d.
// It panics with ErrDiagonalRotation when d is a diagonal.
func (d Direction) NextCardinal() Direction {
	switch d {
	case East:
		return South
	case South:
		return West
	case West:
		return North
	case North:
		return East
	}
	panic(ErrDiagonalRotation.Error())
}

// IsCardinal reports whether d is one of E, S, W, N.
func (d Direction) IsCardinal() bool {
	return d == East || d == South || d == West || d == North
}

// Delta returns the unit (row, col) step of d. Diagonals combine the
// vertical and horizontal cardinal steps, e.g. SouthEast = South + East.
func (d Direction) Delta() Vector {
	switch d {
	case East:
		return Vector{0, 1}
	case SouthEast:
		return Vector{1, 1}
	case South:
		return Vector{1, 0}
	case SouthWest:
		return Vector{1, -1}
	case West:
		return Vector{0, -1}
	case NorthWest:
		return Vector{-1, -1}
	case North:
		return Vector{-1, 0}
	case NorthEast:
		return Vector{-1, 1}
	}
	panic(ErrBadDirection.Error())
}

// String returns the compass abbreviation ("E", "SE", ...).
func (d Direction) String() string {
	switch d {
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	case North:
		return "N"
	case NorthEast:
		return "NE"
	}
	return "?"
}

// FromArrow maps the arrow runes '>', 'v', '<' and '^' to a cardinal direction.
func FromArrow(r rune) (Direction, bool) {
	switch r {
	case '>':
		return East, true
	case 'v':
		return South, true
	case '<':
		return West, true
	case '^':
		return North, true
	}
	return East, false
}
