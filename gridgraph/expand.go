package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/gridwalk/core"
	"github.com/katalvlaran/gridwalk/cursor"
)

// Bridge finds a minimum-conversion path joining region from to region to.
// Moving into a cell that holds from's rune, or into a cell of to, is free;
// any other cell has to be converted and costs 1.
// Returns the path from a cell of from to a cell of to (both inclusive) and
// the number of converted cells.
//
// Behavior:
//  1. Validate both regions.
//  2. Multi-source 0-1 BFS from every cell of from:
//     • free moves are pushed to the front of the deque,
//     • conversions to the back.
//  3. Stop when any cell of to is popped.
//  4. Reconstruct the path via predecessors.
//
// The cursor's Point is restored before returning.
//
// Complexity: O(W·H) time and memory.
func Bridge(g *cursor.Grid, from, to Region) (path []core.Point, cost int, err error) {
	if len(from) == 0 || len(to) == 0 {
		return nil, 0, ErrEmptyRegion
	}
	for _, p := range append(append(Region{}, from...), to...) {
		if !g.InBounds(p) {
			return nil, 0, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}
	land, _ := g.At(from[0])
	dst := to.set()

	start := g.Point()
	defer g.Restore(start)

	const inf = int(^uint(0) >> 1)
	dist := make(map[core.Point]int)
	prev := make(map[core.Point]core.Point)
	distOf := func(p core.Point) int {
		if d, ok := dist[p]; ok {
			return d
		}
		return inf
	}

	dq := list.New()
	for _, p := range from {
		dist[p] = 0
		dq.PushBack(p)
	}

	target, found := core.Point{}, false
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(core.Point)
		if _, ok := dst[u]; ok {
			target, found = u, true
			break
		}
		g.GoTo(u)
		for _, d := range core.All4 {
			r, ok := g.PeekNext(d)
			if !ok {
				continue
			}
			v, _ := u.Step(d)
			step := 1
			if _, isDst := dst[v]; isDst || r == land {
				step = 0
			}
			nd := dist[u] + step
			if nd < distOf(v) {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}
	for at := target; ; {
		path = append([]core.Point{at}, path...)
		p, ok := prev[at]
		if !ok {
			break
		}
		at = p
	}
	return path, dist[target], nil
}
