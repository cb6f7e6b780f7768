// Package dijkstra provides shortest-path searches over a text grid whose cells
// are either open or walls.
//
// Overview:
//
//   - ShortestPath is classic Dijkstra on the 4-connected grid with unit moves.
//     It returns the cost and one canonical path.
//   - ShortestPathWithTurns searches (cell, heading) states. Moving straight
//     costs 1, turning before a move costs 1 + TurnPenalty, and reversing is
//     not a move. It returns the minimal cost at the sink in any heading and
//     the cells of the union of all minimal paths.
//
// Both searches stop as soon as the sink leaves the frontier: with weights of
// at least 1 its cost is final at that point.
//
// Relaxation:
//
//	Offering a node a candidate cost has exactly three outcomes, see Relaxation:
//	  • Improved  – strictly cheaper; the predecessor set is replaced.
//	  • Tied      – equal cost; the predecessor is appended.
//	  • Unchanged – more expensive; nothing is recorded.
//
// Frontier:
//
//	FrontierHeap (default) is a container/heap min-heap with lazy decrease-key.
//	FrontierLinear scans all pending nodes for the minimum. Both break cost
//	ties by insertion order and therefore settle nodes in the same order.
//
// Cursor contract:
//
//	The grid is driven with GoTo/PeekNext during the search; its Point is
//	restored before returning.
//
// Complexity:
//
//   - ShortestPath:          O(V log V) with V = W·H.
//   - ShortestPathWithTurns: O(V log V) with V = 4·W·H.
//   - FrontierLinear:        O(V²) in both cases.
//
// Example:
//
//	g := cursor.NewGrid("S..\n.#.\n..E")
//	res, err := dijkstra.ShortestPath(g, core.Point{}, core.Point{Row: 2, Col: 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cost, len(res.Path)) // 4 5
package dijkstra
