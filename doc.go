// Package gridwalk is a toolkit for puzzle-style text grids: cursors that
// read and edit them, region detection, and shortest-path searches.
//
// 🚀 What is gridwalk?
//
//	A small, synchronous library that brings together:
//		• Points & directions: 8-way compass, deltas, rotation, torus wrapping
//		• Line cursor: peek/pop/seek over one row, integer matching, splitting
//		• Grid cursor: 2-D navigation, directional peeks, word search, editing
//		• Regions: 4-connected components, area, perimeter, sides, bridges
//		• Shortest paths: Dijkstra on the grid, plain and turn-aware
//
// ✨ Why choose gridwalk?
//
//   - One mutable cursor, explicit contracts: every algorithm documents where
//     it leaves the cursor
//   - Out-of-bounds reads are (value, ok) pairs, never panics
//   - No path is a result, not an error
//   - Pure Go, no cgo
//
// Under the hood, everything is organized in flat subpackages:
//
//	core/      - Point, Vector, Direction
//	cursor/    - Line and Grid cursors
//	gridgraph/ - connected components, region metrics, Bridge
//	dijkstra/  - ShortestPath, ShortestPathWithTurns
//
// Quick ASCII example:
//
//	    S.#
//	    ..E
//
//	ShortestPath from S to E costs 3; ConnectedComponents finds four regions
//	('S', '.', '#', 'E').
//
// The gridwalk command (cmd/gridwalk) wraps the toolkit with a config file,
// a puzzle registry and terminal rendering.
//
//	go install github.com/katalvlaran/gridwalk/cmd/gridwalk@latest
package gridwalk
