package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridwalk/core"
)

func TestPoint_Step(t *testing.T) {
	p := core.Point{Row: 1, Col: 1}
	for _, d := range core.All8 {
		q, ok := p.Step(d)
		assert.True(t, ok, "step %s from %s", d, p)
		back, ok := q.Step(d.Opposite())
		assert.True(t, ok)
		assert.Equal(t, p, back)
	}

	_, ok := core.Point{}.Step(core.North)
	assert.False(t, ok, "origin has no northern neighbour")
	_, ok = core.Point{}.Step(core.West)
	assert.False(t, ok, "origin has no western neighbour")
}

func TestPoint_NearAndManhattan(t *testing.T) {
	p := core.Point{Row: 2, Col: 3}
	assert.True(t, p.Near(core.Point{Row: 2, Col: 4}))
	assert.True(t, p.Near(core.Point{Row: 1, Col: 3}))
	assert.False(t, p.Near(core.Point{Row: 3, Col: 4}), "diagonal is not near")
	assert.False(t, p.Near(p))
	assert.Equal(t, 7, p.Manhattan(core.Point{Row: 6, Col: 0}))
}

func TestPoint_WrapAdd(t *testing.T) {
	size := core.Point{Row: 7, Col: 11}
	p := core.Point{Row: 4, Col: 2}
	v := core.Vector{Row: -3, Col: 2}

	// the AoC 2024 day 14 example robot after five seconds
	for i := 0; i < 5; i++ {
		p = p.WrapAdd(v, size)
	}
	assert.Equal(t, core.Point{Row: 3, Col: 1}, p)

	assert.Equal(t, 4, core.Wrap(-1, 5))
	assert.Equal(t, 0, core.Wrap(10, 5))
	assert.Panics(t, func() { core.Wrap(1, 0) })
}
