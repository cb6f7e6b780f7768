// Package dijkstra implements Dijkstra's shortest-path search over a text grid
// driven through a cursor.Grid.
//
// Every search:
//
//   - validates the grid and both endpoints,
//   - remembers the cursor's Point and restores it before returning,
//   - moves between 4-neighbours that are not the wall rune,
//   - stops as soon as the sink is popped from the frontier.
package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gridwalk/core"
	"github.com/katalvlaran/gridwalk/cursor"
)

// ShortestPath finds a minimum-cost path from source to sink where every move
// between open 4-neighbours costs 1.
//
// When several predecessors tie for a cell, all are recorded but the path
// follows the first one recorded, giving a single canonical path.
// An unreachable sink yields Found == false and an empty Path.
//
// Complexity (heap frontier):
//
//   - Time:  O(W·H·log(W·H))
//   - Space: O(W·H)
func ShortestPath(g *cursor.Grid, source, sink core.Point, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, source, sink); err != nil {
		return Result{}, err
	}

	start := g.Point()
	defer g.Restore(start)

	s := newSearch[core.Point](cfg.Frontier)
	s.seed(source)

	var res Result
	for {
		u, cost, ok := s.next()
		if !ok {
			break
		}
		if u == sink {
			res = Result{Cost: cost, Found: true, Path: s.firstPath(source, sink)}
			break
		}
		g.GoTo(u)
		for _, d := range core.All4 {
			r, ok := g.PeekNext(d)
			if !ok || r == cfg.Wall {
				continue
			}
			v, _ := u.Step(d)
			s.relax(u, v, cost+1)
		}
	}

	cfg.Logger.Debug("shortest path",
		"source", source, "sink", sink,
		"frontier", cfg.Frontier, "expanded", s.expanded,
		"found", res.Found, "cost", res.Cost)
	return res, nil
}

// firstPath walks first predecessors back from sink. It returns an empty
// path if the walk does not end at source.
func (s *search[N]) firstPath(source, sink N) []N {
	path := []N{sink}
	for at := sink; at != source; {
		preds := s.prev[at]
		if len(preds) == 0 {
			return nil
		}
		at = preds[0]
		path = append(path, at)
	}
	slices.Reverse(path)
	return path
}

func validate(g *cursor.Grid, source, sink core.Point) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.InBounds(source) {
		return fmt.Errorf("%w: %v", ErrSourceOutOfBounds, source)
	}
	if !g.InBounds(sink) {
		return fmt.Errorf("%w: %v", ErrSinkOutOfBounds, sink)
	}
	return nil
}
