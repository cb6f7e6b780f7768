// Package core defines the value types every other gridwalk package speaks:
// grid addresses (Point), signed offsets (Vector) and the closed set of eight
// compass directions (Direction).
//
// What:
//
//   - Point is a (Row, Col) cell address. Rows grow downwards, columns grow
//     to the right, the origin is the top-left cell.
//   - Vector is the signed counterpart used for deltas and velocities; it is
//     never used to address a cell directly.
//   - Direction enumerates E, SE, S, SW, W, NW, N, NE. Each value decomposes
//     into at most one vertical and one horizontal unit step.
//
// Iteration order:
//
//	All8 = E, SE, S, SW, W, NW, N, NE   (clockwise, starting east)
//	All4 = E, S, W, N
//
// Both arrays are fixed; callers that scan "every direction" rely on this order
// for reproducible output (word search, neighbour strings, Dijkstra tie-breaks).
//
// Errors:
//
//   - ErrDiagonalRotation: NextCardinal was called on a diagonal. This is a
//     programming error and is raised via panic, not returned.
//
// Quick picture of the deltas:
//
//	NW  N  NE        (-1,-1) (-1,0) (-1,1)
//	 W  .  E    =>   ( 0,-1)   .    ( 0,1)
//	SW  S  SE        ( 1,-1) ( 1,0) ( 1,1)
package core
