package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/core"
	"github.com/katalvlaran/gridwalk/cursor"
	"github.com/katalvlaran/gridwalk/gridgraph"
)

func TestBridge_Straight(t *testing.T) {
	g := cursor.NewGrid("A..B")
	path, cost, err := gridgraph.Bridge(g, gridgraph.Region{pt(0, 0)}, gridgraph.Region{pt(0, 3)})
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	assert.Equal(t, []core.Point{pt(0, 0), pt(0, 1), pt(0, 2), pt(0, 3)}, path)
}

func TestBridge_LandIsFree(t *testing.T) {
	g := cursor.NewGrid("A.A.B\nAAA..")
	a := gridgraph.ConnectedComponents(g)['A'][0]
	b := gridgraph.Region{pt(0, 4)}

	path, cost, err := gridgraph.Bridge(g, a, b)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, pt(0, 4), path[len(path)-1])
	assert.Contains(t, a, path[0])
}

func TestBridge_Touching(t *testing.T) {
	g := cursor.NewGrid("AB")
	_, cost, err := gridgraph.Bridge(g, gridgraph.Region{pt(0, 0)}, gridgraph.Region{pt(0, 1)})
	require.NoError(t, err)
	assert.Zero(t, cost)
}

func TestBridge_RestoresCursor(t *testing.T) {
	g := cursor.NewGrid("A...\n....\n...B")
	g.GoTo(pt(1, 2))
	_, cost, err := gridgraph.Bridge(g, gridgraph.Region{pt(0, 0)}, gridgraph.Region{pt(2, 3)})
	require.NoError(t, err)
	assert.Equal(t, 4, cost)
	assert.Equal(t, pt(1, 2), g.Point())

	g = cursor.NewGrid("abc\ndef\nghi")
	g.CountChars('a')
	exhausted := g.Point()
	require.Equal(t, pt(3, 3), exhausted)

	_, _, err = gridgraph.Bridge(g, gridgraph.Region{pt(2, 1)}, gridgraph.Region{pt(0, 2)})
	require.NoError(t, err)
	assert.True(t, g.Done())
	assert.Equal(t, exhausted, g.Point())
}

func TestBridge_Errors(t *testing.T) {
	g := cursor.NewGrid("AB")

	_, _, err := gridgraph.Bridge(g, nil, gridgraph.Region{pt(0, 1)})
	assert.ErrorIs(t, err, gridgraph.ErrEmptyRegion)

	_, _, err = gridgraph.Bridge(g, gridgraph.Region{pt(0, 0)}, gridgraph.Region{pt(3, 3)})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}
