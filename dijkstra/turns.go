package dijkstra

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/gridwalk/core"
	"github.com/katalvlaran/gridwalk/cursor"
)

// state is a node of the turn-aware search: a cell and the heading it was
// entered with.
type state struct {
	at      core.Point
	heading core.Direction
}

// ShortestPathWithTurns finds the minimal cost from source to sink when moving
// straight costs 1 and changing heading before a move costs 1 + TurnPenalty.
// Reversing the current heading is never allowed. The walk starts facing
// Options.Heading (East by default).
//
// Cells lists every cell lying on at least one minimal path. It is built by a
// backward traversal from each sink heading that reaches the minimal cost,
// following all tied predecessors.
//
// Complexity (heap frontier):
//
//   - Time:  O(4·W·H·log(W·H))
//   - Space: O(4·W·H)
func ShortestPathWithTurns(g *cursor.Grid, source, sink core.Point, opts ...Option) (TurnResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, source, sink); err != nil {
		return TurnResult{}, err
	}

	start := g.Point()
	defer g.Restore(start)

	s := newSearch[state](cfg.Frontier)
	s.seed(state{at: source, heading: cfg.Heading})

	var res TurnResult
	for {
		u, cost, ok := s.next()
		if !ok {
			break
		}
		if u.at == sink {
			res = TurnResult{Cost: cost, Found: true}
			break
		}
		g.GoTo(u.at)
		for _, d := range core.All4 {
			if d == u.heading.Opposite() {
				continue
			}
			r, ok := g.PeekNext(d)
			if !ok || r == cfg.Wall {
				continue
			}
			step := 1
			if d != u.heading {
				step += cfg.TurnPenalty
			}
			v, _ := u.at.Step(d)
			s.relax(u, state{at: v, heading: d}, cost+step)
		}
	}

	if res.Found {
		res.Cells = bestCells(s, sink, res.Cost)
	}
	cfg.Logger.Debug("shortest path with turns",
		"source", source, "sink", sink,
		"frontier", cfg.Frontier, "expanded", s.expanded,
		"found", res.Found, "cost", res.Cost, "cells", len(res.Cells))
	return res, nil
}

// bestCells collects the cells of every minimal path ending at sink.
// Sink headings whose recorded cost equals best are final even if not yet
// popped: all their predecessors are cheaper and already expanded.
func bestCells(s *search[state], sink core.Point, best int) []core.Point {
	var queue []state
	seen := make(map[state]bool)
	for _, d := range core.All4 {
		n := state{at: sink, heading: d}
		if c, ok := s.costs[n]; ok && c == best {
			seen[n] = true
			queue = append(queue, n)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		for _, p := range s.prev[queue[qi]] {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}

	cells := make(map[core.Point]bool)
	for n := range seen {
		cells[n.at] = true
	}
	out := make([]core.Point, 0, len(cells))
	for p := range cells {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b core.Point) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col))
	})
	return out
}
