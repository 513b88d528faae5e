package pathfinder

import "github.com/qverkk/osrs-nav/internal/model"

// Flooder runs breadth-first reachability floods over a movement grid.
// It follows the same adjacency as the search (passability bits plus
// extra edges) but ignores requirements and costs entirely, and never
// follows teleports. Like Searcher it owns reusable per-run state and is
// not safe for concurrent use.
type Flooder struct {
	visited *Scratch[bool]
	queue   []uint32
}

// NewFlooder returns a flooder with empty backing storage.
func NewFlooder() *Flooder {
	return &Flooder{visited: NewScratch(false)}
}

// Flood walks every cell reachable from start in breadth-first order,
// calling visit exactly once per cell. Cells are marked visited when
// enqueued, so no cell is ever processed twice regardless of how many
// predecessors reach it. When visit returns false the cell's neighbors
// are not explored but the flood continues elsewhere, which supports
// bounded-radius and boundary-stopping traversals.
func (f *Flooder) Flood(grid *model.NavGrid, start model.Coordinate, visit func(index uint32) bool) {
	f.visited.Reset()
	f.queue = f.queue[:0]

	startIdx := grid.Index(start)
	*f.visited.Get(startIdx) = true
	f.queue = append(f.queue, startIdx)

	for head := 0; head < len(f.queue); head++ {
		index := f.queue[head]
		if !visit(index) {
			continue
		}
		v := grid.Vertices[index]
		for _, d := range model.Directions {
			if v.Flags&d.Flag == 0 {
				continue
			}
			f.enqueue(neighbor(index, grid.Width, d))
		}
		if v.HasExtraEdges() {
			edges := grid.EdgesFrom(index)
			for i := range edges {
				f.enqueue(grid.Index(edges[i].Destination))
			}
		}
	}
}

func (f *Flooder) enqueue(index uint32) {
	seen := f.visited.Get(index)
	if *seen {
		return
	}
	*seen = true
	f.queue = append(f.queue, index)
}
