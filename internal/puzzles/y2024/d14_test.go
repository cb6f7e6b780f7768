package y2024

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/core"
	"github.com/katalvlaran/gridwalk/cursor"
)

const robotsExample = `
p=0,4 v=3,-3
p=6,3 v=-1,-3
p=10,3 v=-1,2
p=2,0 v=2,-1
p=0,0 v=1,3
p=3,0 v=-2,-2
p=7,6 v=-1,-3
p=3,0 v=-1,-2
p=9,3 v=2,3
p=7,3 v=-1,2
p=2,4 v=2,-3
p=9,5 v=-3,-3
`

func TestSafetyFactor(t *testing.T) {
	got, err := SafetyFactor(robotsExample, core.Point{Row: 7, Col: 11}, 100)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestParseRobots(t *testing.T) {
	robots, err := parseRobots("p=2,4 v=2,-3\n")
	require.NoError(t, err)
	require.Len(t, robots, 1)
	assert.Equal(t, core.Point{Row: 4, Col: 2}, robots[0].at)
	assert.Equal(t, core.Vector{Row: -3, Col: 2}, robots[0].vel)

	// five seconds later the robot sits at (3, 1) on an 11×7 room
	assert.Equal(t, core.Point{Row: 3, Col: 1},
		robots[0].at.WrapAdd(robots[0].vel.Scale(5), core.Point{Row: 7, Col: 11}))

	_, err = parseRobots("p=2;4 v=2,-3")
	assert.ErrorIs(t, err, cursor.ErrParseInteger)
}
