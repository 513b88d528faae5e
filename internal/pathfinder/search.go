// Package pathfinder implements shortest-route search over the movement
// grid: Dijkstra with interchangeable frontier strategies, a
// generation-tagged scratch store that makes per-query state reset
// sub-linear in grid size, and a bounded breadth-first flood for
// reachability work.
package pathfinder

import (
	"math"

	"github.com/qverkk/osrs-nav/internal/model"
)

// Sentinel values in per-cell search state. The world grid tops out
// around 25.6 million cells, so MaxUint32 can never be a real index or a
// reachable cost.
const (
	unreached = math.MaxUint32
	noPrev    = math.MaxUint32
)

// pathState is the per-cell record of the current query: best known cost,
// predecessor cell, and the edge that produced the relaxation (nil when
// the cell was reached by plain grid movement).
type pathState struct {
	cost uint32
	prev uint32
	edge *model.Edge
}

// Stats describes the work done by the most recent query.
type Stats struct {
	Visited uint32 // frontier extractions
	Relaxed uint32 // cost improvements written
	Cost    uint32 // total route cost when a route was found
}

// Searcher runs shortest-route queries over a movement grid. It owns the
// per-query scratch state and frontier and resets both at the start of
// every call, so a single instance serves any number of sequential
// queries with almost no allocation. Not safe for concurrent use; pool
// instances instead of sharing one.
type Searcher struct {
	scratch  *Scratch[pathState]
	frontier Frontier
	stats    Stats

	// MaxVisited, when non-zero, aborts a query after that many frontier
	// extractions and reports no route. Zero means unbounded.
	MaxVisited uint32

	// TeleportSeeded, when set, is called for every teleport seeded into
	// a query. Observability hook only; the search ignores its effects.
	TeleportSeeded func(e *model.Edge)
}

// NewSearcher returns a searcher using the given frontier strategy. Use
// NewHeapFrontier for arbitrary weights or NewBucketRing sized by the
// grid's MaxEdgeCost for the zero-allocation serving path.
func NewSearcher(frontier Frontier) *Searcher {
	return &Searcher{
		scratch:  NewScratch(pathState{cost: unreached, prev: noPrev}),
		frontier: frontier,
	}
}

// FindPath computes a minimum-cost route between two cells under the
// given player state. It returns the ordered steps from start to end
// (excluding the start cell itself, so a same-cell query yields an empty
// route) and whether a route exists. Different connectivity groups and an
// exhausted frontier both report absence.
//
// Coordinates must already be validated against the grid bounds; passing
// an out-of-grid coordinate is a caller error.
func (s *Searcher) FindPath(grid *model.NavGrid, start, end model.Coordinate, state *model.GameState) ([]Step, bool) {
	startIdx := grid.Index(start)
	endIdx := grid.Index(end)
	s.stats = Stats{}

	// Differing group ids prove the cells are disconnected.
	if grid.Vertices[startIdx].Group() != grid.Vertices[endIdx].Group() {
		return nil, false
	}

	s.scratch.Reset()
	s.frontier.Reset()

	s.scratch.Get(startIdx).cost = 0
	s.frontier.Offer(0, startIdx)

	// Teleports compete with the start cell from the first extraction.
	// The landing cell keeps the sentinel predecessor: a route through a
	// teleport starts with its edge step, not with the query's start.
	for i := range grid.Teleports {
		tp := &grid.Teleports[i]
		if !tp.RequirementsMet(state) {
			continue
		}
		destIdx := grid.Index(tp.Destination)
		dest := s.scratch.Get(destIdx)
		if tp.Cost < dest.cost {
			dest.cost = tp.Cost
			dest.edge = tp
			s.frontier.Offer(tp.Cost, destIdx)
			if s.TeleportSeeded != nil {
				s.TeleportSeeded(tp)
			}
		}
	}

	for {
		index, ok := s.frontier.TakeMin()
		if !ok {
			return nil, false
		}
		s.stats.Visited++
		if s.MaxVisited != 0 && s.stats.Visited > s.MaxVisited {
			return nil, false
		}

		// Re-read the current best cost: the frontier may hand back an
		// entry made stale by a later improvement. Relaxing from a stale
		// extraction never improves anything, so it is merely wasted work.
		cur := s.scratch.Get(index)

		if index == endIdx {
			s.stats.Cost = cur.cost
			return s.reconstruct(grid, endIdx), true
		}

		v := grid.Vertices[index]
		for _, d := range model.Directions {
			if v.Flags&d.Flag == 0 {
				continue
			}
			s.relax(neighbor(index, grid.Width, d), cur.cost+1, index, nil)
		}
		if v.HasExtraEdges() {
			edges := grid.EdgesFrom(index)
			for i := range edges {
				e := &edges[i]
				if !e.RequirementsMet(state) {
					continue
				}
				s.relax(grid.Index(e.Destination), cur.cost+e.Cost, index, e)
			}
		}
	}
}

// relax records an improved route to a cell and re-offers it.
func (s *Searcher) relax(index, cost, from uint32, via *model.Edge) {
	st := s.scratch.Get(index)
	if cost >= st.cost {
		return
	}
	st.cost = cost
	st.prev = from
	st.edge = via
	s.frontier.Offer(cost, index)
	s.stats.Relaxed++
}

// reconstruct walks the predecessor chain from end back to the start
// sentinel and returns the steps in forward order. The start cell emits
// no step; a teleport at the head of the route terminates the walk
// because its landing cell kept the sentinel predecessor.
func (s *Searcher) reconstruct(grid *model.NavGrid, endIdx uint32) []Step {
	steps := make([]Step, 0, 16)
	index := endIdx
	for {
		st := s.scratch.Get(index)
		if st.edge != nil {
			steps = append(steps, Step{
				Position: grid.CoordinateAt(index),
				Edge:     st.edge.Definition,
				Cost:     st.edge.Cost,
			})
		} else if st.prev == noPrev {
			break
		} else {
			steps = append(steps, Step{Position: grid.CoordinateAt(index), Cost: 1})
		}
		if st.prev == noPrev {
			break
		}
		index = st.prev
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}

// LastStats reports the work done by the most recent FindPath call.
func (s *Searcher) LastStats() Stats {
	return s.stats
}

// neighbor applies a direction delta to a linear cell index. Deltas are
// added with two's-complement wrap, which is exact whenever the result is
// actually on the grid; masks on well-formed grids never point off it.
func neighbor(index, width uint32, d model.Direction) uint32 {
	return index + uint32(d.DY)*width + uint32(d.DX)
}
