package pathfinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qverkk/osrs-nav/internal/model"
	"github.com/qverkk/osrs-nav/internal/testutil"
)

func TestAssignGroupsOpenGrid(t *testing.T) {
	g := testutil.OpenGrid(8, 8)
	assert.Equal(t, 1, AssignGroups(g))

	first := g.Vertices[0].Group()
	for i := range g.Vertices {
		require.Equal(t, first, g.Vertices[i].Group())
	}
}

func TestAssignGroupsSplitGrid(t *testing.T) {
	g := testutil.SplitGrid(8, 4, 4)
	assert.Equal(t, 2, AssignGroups(g))

	left := g.Vertices[g.Index(model.Coordinate{X: 0, Y: 0})].Group()
	right := g.Vertices[g.Index(model.Coordinate{X: 7, Y: 3})].Group()
	assert.NotEqual(t, left, right)
}

func TestAssignGroupsEdgeJoinsHalves(t *testing.T) {
	g := testutil.SplitGrid(8, 4, 4)
	g.AddEdge(model.Coordinate{X: 0, Y: 0}, model.Edge{Destination: model.Coordinate{X: 7, Y: 3}, Cost: 1})
	g.AddEdge(model.Coordinate{X: 7, Y: 3}, model.Edge{Destination: model.Coordinate{X: 0, Y: 0}, Cost: 1})

	assert.Equal(t, 1, AssignGroups(g))
}

func TestAssignGroupsBlockedSingletons(t *testing.T) {
	// All-impassable grid: every cell is its own component.
	g := model.NewNavGrid(4, 4)
	assert.Equal(t, 16, AssignGroups(g))
}

func TestAssignGroupsIDWrap(t *testing.T) {
	g := model.NewNavGrid(200, 1)
	require.Equal(t, 200, AssignGroups(g))

	// Ids are the component number mod 128; collisions are expected and
	// only prove nothing, while differing ids still prove disconnection.
	assert.Equal(t, uint8(0), g.Vertices[0].Group())
	assert.Equal(t, uint8(0), g.Vertices[128].Group())
	assert.Equal(t, uint8(71), g.Vertices[199].Group())
}

func TestAssignGroupsPreservesExtraEdgeBit(t *testing.T) {
	g := testutil.OpenGrid(4, 4)
	g.AddEdge(model.Coordinate{X: 1, Y: 1}, model.Edge{Destination: model.Coordinate{X: 2, Y: 2}, Cost: 1})

	AssignGroups(g)
	assert.True(t, g.Vertices[g.Index(model.Coordinate{X: 1, Y: 1})].HasExtraEdges())
}
