// Package gridgraph treats a text grid as a graph of 4-connected cells and
// answers region questions over it.
//
// What:
//
//   - ConnectedComponents partitions the grid into maximal 4-connected regions
//     of equal runes, grouped by rune (Clusters).
//   - Index maps each rune to the cells holding it, in scan order.
//   - Area, Perimeter and Sides measure a region's fence.
//   - Bridge finds the fewest foreign cells to convert so two regions touch
//     (0-1 BFS).
//
// Why:
//
//   - Garden plots, islands, lakes: contiguous area detection with fence cost.
//   - Map editing: cheapest corridor joining two areas.
//
// Cursor contract:
//
//	Every function takes the *cursor.Grid exclusively for the duration of the
//	call and drives it with GoTo/PeekNext. ConnectedComponents and Index leave
//	the cursor reset at the origin; Bridge restores the cursor's Point.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H), Memory: O(W×H). Each cell is queued once.
//   - Perimeter, Sides:    O(|region|).
//   - Bridge:              O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyRegion:    a region passed to Bridge has no cells.
//   - ErrOutOfBounds:    a region cell lies outside the grid.
//   - ErrNoPath:         the regions cannot be joined.
package gridgraph
