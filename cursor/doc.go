// Package cursor provides stateful read/write cursors over text grids.
//
// What:
//
//   - Line owns one row of runes plus a position in [0, Len]. Position == Len
//     means the line is exhausted (Done).
//   - Grid owns an ordered slice of Lines plus a current row in [0, Rows].
//     Row == Rows means the grid is exhausted. The pair (current row, that
//     row's position) is the grid's 2D cursor, exposed as a core.Point.
//
// Why:
//
//   - Puzzle-style code scans, probes and mutates text grids constantly. The
//     cursors keep 2D addressing, cross-row advance and 8-direction relative
//     peeks in one place so consumers only express their own rules.
//
// Row cascade:
//
//	Pop, Advance and AdvanceTo move into the next row when the current one is
//	exhausted; the row being entered is rewound to column 0.
//
// Bounds:
//
//   - Reads outside the grid return ok == false; they never panic.
//   - Writes outside the grid are silently ignored or clamped.
//   - Wrapping on an empty grid (GoToWrapped) is a precondition violation and
//     panics with ErrEmptyGrid.
//
// Errors:
//
//   - ErrParseInteger: a SplitInts token was not a valid integer.
//   - ErrEmptyGrid:    operation needs at least one row.
//
// Concurrency: cursors are not safe for concurrent use; an algorithm that is
// handed a *Grid owns it exclusively until it returns.
package cursor
