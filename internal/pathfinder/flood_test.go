package pathfinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qverkk/osrs-nav/internal/model"
	"github.com/qverkk/osrs-nav/internal/testutil"
)

func TestFloodVisitsEveryCellOnce(t *testing.T) {
	g := testutil.OpenGrid(8, 8)
	testutil.AddDiagonals(g) // multiple predecessors per cell

	visits := map[uint32]int{}
	NewFlooder().Flood(g, model.Coordinate{X: 3, Y: 3}, func(index uint32) bool {
		visits[index]++
		return true
	})

	require.Len(t, visits, 64, "every cell reachable on an open grid")
	for index, n := range visits {
		assert.Equal(t, 1, n, "cell %d processed more than once", index)
	}
}

func TestFloodDeterministicVisitedSet(t *testing.T) {
	g := testutil.OpenGrid(6, 6)
	f := NewFlooder()

	run := func() map[uint32]bool {
		seen := map[uint32]bool{}
		f.Flood(g, model.Coordinate{X: 0, Y: 5}, func(index uint32) bool {
			seen[index] = true
			return true
		})
		return seen
	}

	assert.Equal(t, run(), run(), "same start, same visited set")
}

func TestFloodStopEverywhere(t *testing.T) {
	g := testutil.OpenGrid(6, 6)

	var calls []uint32
	NewFlooder().Flood(g, model.Coordinate{X: 2, Y: 2}, func(index uint32) bool {
		calls = append(calls, index)
		return false
	})

	require.Len(t, calls, 1, "refusing expansion everywhere stops at the start")
	assert.Equal(t, g.Index(model.Coordinate{X: 2, Y: 2}), calls[0])
}

func TestFloodBoundedRadius(t *testing.T) {
	g := testutil.OpenGrid(32, 32)
	start := model.Coordinate{X: 16, Y: 16}

	within := func(index uint32, radius int32) bool {
		c := g.CoordinateAt(index)
		dx := c.X - start.X
		if dx < 0 {
			dx = -dx
		}
		dy := c.Y - start.Y
		if dy < 0 {
			dy = -dy
		}
		return dx+dy <= radius
	}

	count := 0
	NewFlooder().Flood(g, start, func(index uint32) bool {
		count++
		return within(index, 3)
	})

	// Cells at distance 4 are visited (their distance-3 neighbors expand)
	// but never expanded, bounding the flood without aborting it.
	assert.Equal(t, 41, count, "1 + 4 + 8 + 12 + 16 cells for radius 4")
}

func TestFloodIgnoresRequirements(t *testing.T) {
	g := testutil.SplitGrid(8, 4, 4)
	g.AddEdge(model.Coordinate{X: 3, Y: 0}, model.Edge{
		Destination:  model.Coordinate{X: 4, Y: 0},
		Cost:         2,
		Requirements: []model.Requirement{{Kind: model.RequirementItem, Name: "Key", Value: 1}},
	})

	count := 0
	NewFlooder().Flood(g, model.Coordinate{X: 0, Y: 0}, func(index uint32) bool {
		count++
		return true
	})

	assert.Equal(t, 32, count, "gated edge is crossed regardless of state")
}

func TestFloodIgnoresTeleports(t *testing.T) {
	g := testutil.SplitGrid(8, 4, 4)
	g.AddTeleport(model.Edge{Destination: model.Coordinate{X: 6, Y: 2}, Cost: 1})

	count := 0
	NewFlooder().Flood(g, model.Coordinate{X: 0, Y: 0}, func(index uint32) bool {
		count++
		return true
	})

	assert.Equal(t, 16, count, "teleports never extend a flood")
}

func TestFlooderReuse(t *testing.T) {
	g := testutil.OpenGrid(10, 10)
	f := NewFlooder()

	for range 20 {
		count := 0
		f.Flood(g, model.Coordinate{X: 0, Y: 0}, func(uint32) bool {
			count++
			return true
		})
		require.Equal(t, 100, count)
	}
}
