package y2024

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridwalk/core"
	"github.com/katalvlaran/gridwalk/cursor"
	"github.com/katalvlaran/gridwalk/internal/registry"
)

func init() {
	registry.Register(2024, 15, 1, func(input string) (string, error) {
		return warehouse(input, false)
	})
	registry.Register(2024, 15, 2, func(input string) (string, error) {
		return warehouse(input, true)
	})
}

// widen doubles the warehouse horizontally.
var widen = strings.NewReplacer("#", "##", "O", "[]", ".", "..", "@", "@.")

// warehouse runs the robot's moves and returns the sum of box GPS
// coordinates (100 × row + col of each box's left edge).
func warehouse(input string, wide bool) (string, error) {
	mapText, moves, ok := strings.Cut(strings.TrimSpace(input), "\n\n")
	if !ok {
		return "", fmt.Errorf("%w: missing blank line between map and moves", errNoSolution)
	}
	box := 'O'
	if wide {
		mapText = widen.Replace(mapText)
		box = '['
	}

	g := cursor.NewGrid(mapText)
	if !g.AdvanceTo("@") {
		return "", fmt.Errorf("%w: no robot", errNoSolution)
	}
	for _, m := range moves {
		d, ok := core.FromArrow(m)
		if !ok {
			continue
		}
		if wide && (d == core.North || d == core.South) {
			pushWide(g, d)
		} else {
			push(g, d)
		}
	}

	sum := 0
	for r, p := range g.Reset().Iterate() {
		if r == box {
			sum += 100*p.Row + p.Col
		}
	}
	return strconv.Itoa(sum), nil
}

// push moves the robot under the cursor one cell along d, shoving the
// straight run of boxes in front of it. Nothing moves if the run ends at a
// wall. The cursor follows the robot.
func push(g *cursor.Grid, d core.Direction) {
	start := g.Point()
	chain := []core.Point{start}
	for {
		if !g.AdvanceWithDirection(1, d) {
			g.GoTo(start)
			return
		}
		switch r, _ := g.Peek(); r {
		case 'O', '[', ']':
			chain = append(chain, g.Point())
		case '.':
			// cursor is on the free cell: shift the chain into it, farthest first
			for i := len(chain) - 1; i >= 0; i-- {
				g.Swap(chain[i])
				g.AdvanceWithDirection(1, d.Opposite())
			}
			g.AdvanceWithDirection(1, d)
			return
		default:
			g.GoTo(start)
			return
		}
	}
}

// pushWide is push for vertical moves in the widened warehouse, where one
// box can lean on two boxes and the moving group fans out.
func pushWide(g *cursor.Grid, d core.Direction) {
	start := g.Point()
	moving := []core.Point{start}
	seen := map[core.Point]bool{start: true}
	for qi := 0; qi < len(moving); qi++ {
		q, ok := moving[qi].Step(d)
		if !ok {
			return
		}
		r, ok := g.At(q)
		if !ok || r == '#' {
			return
		}
		var halves []core.Point
		switch r {
		case '[':
			halves = []core.Point{q, {Row: q.Row, Col: q.Col + 1}}
		case ']':
			halves = []core.Point{q, {Row: q.Row, Col: q.Col - 1}}
		}
		for _, h := range halves {
			if !seen[h] {
				seen[h] = true
				moving = append(moving, h)
			}
		}
	}
	// BFS order is by distance from the robot, so reversing it empties each
	// target cell before it is filled.
	for i := len(moving) - 1; i >= 0; i-- {
		p := moving[i]
		q, _ := p.Step(d)
		g.GoTo(q).Swap(p)
	}
	g.GoTo(start).AdvanceWithDirection(1, d)
}
