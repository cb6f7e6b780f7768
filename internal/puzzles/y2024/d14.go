package y2024

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridwalk/core"
	"github.com/katalvlaran/gridwalk/cursor"
	"github.com/katalvlaran/gridwalk/internal/registry"
)

// Bathroom dimensions of the real puzzle.
const (
	roomWidth  = 101
	roomHeight = 103
)

func init() {
	registry.Register(2024, 14, 1, func(input string) (string, error) {
		n, err := SafetyFactor(input, core.Point{Row: roomHeight, Col: roomWidth}, 100)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	})
}

type robot struct {
	at  core.Point
	vel core.Vector
}

// SafetyFactor moves every robot for the given seconds on a torus of size and
// multiplies the robot counts of the four quadrants. Robots on the middle row
// or column count for none.
func SafetyFactor(input string, size core.Point, seconds int) (int, error) {
	robots, err := parseRobots(input)
	if err != nil {
		return 0, err
	}
	midRow, midCol := size.Row/2, size.Col/2
	var quadrants [4]int
	for _, r := range robots {
		p := r.at.WrapAdd(r.vel.Scale(seconds), size)
		if p.Row == midRow || p.Col == midCol {
			continue
		}
		q := 0
		if p.Row > midRow {
			q += 2
		}
		if p.Col > midCol {
			q++
		}
		quadrants[q]++
	}
	return quadrants[0] * quadrants[1] * quadrants[2] * quadrants[3], nil
}

// parseRobots reads lines of the form "p=x,y v=dx,dy".
func parseRobots(input string) ([]robot, error) {
	var robots []robot
	for _, text := range strings.Split(input, "\n") {
		l := cursor.NewLine(text)
		if l.Len() == 0 {
			continue
		}
		x, y, ok1 := matchPair(l)
		dx, dy, ok2 := matchPair(l)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: robot %q", cursor.ErrParseInteger, text)
		}
		robots = append(robots, robot{
			at:  core.Point{Row: y, Col: x},
			vel: core.Vector{Row: dy, Col: dx},
		})
	}
	return robots, nil
}

// matchPair consumes "...=a,b" and returns a and b.
func matchPair(l *cursor.Line) (a, b int, ok bool) {
	if !l.AdvanceTo("=") {
		return 0, 0, false
	}
	l.Advance(1)
	if a, ok = l.MatchSignedInt(); !ok {
		return 0, 0, false
	}
	if r, _ := l.Pop(); r != ',' {
		return 0, 0, false
	}
	b, ok = l.MatchSignedInt()
	return a, b, ok
}
