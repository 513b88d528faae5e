package model

// NavGrid is the immutable movement grid: one vertex per cell, extra edges
// keyed by source cell index, and the from-anywhere teleport list. Grids
// are mutated only while being built or loaded; once handed to a searcher
// they are read-only and safe for concurrent queries.
type NavGrid struct {
	Width     uint32
	Height    uint32
	Vertices  []Vertex
	Edges     map[uint32][]Edge
	Teleports []Edge

	// Checksum is the BLAKE2b-256 digest of the decompressed grid payload,
	// set by the loader. Route cache keys include it so a reloaded grid
	// never serves stale routes.
	Checksum []byte
}

// NewNavGrid allocates an all-impassable grid of the given dimensions.
func NewNavGrid(width, height uint32) *NavGrid {
	return &NavGrid{
		Width:    width,
		Height:   height,
		Vertices: make([]Vertex, int(width)*int(height)),
		Edges:    make(map[uint32][]Edge),
	}
}

// NewWorldGrid allocates a grid with production world dimensions.
func NewWorldGrid() *NavGrid {
	return NewNavGrid(GridWidth, GridHeight)
}

// Cells returns the total cell count.
func (g *NavGrid) Cells() uint32 {
	return g.Width * g.Height
}

// Index converts a coordinate to its linear cell index. The coordinate
// must be inside the grid; callers validate with Contains first.
func (g *NavGrid) Index(c Coordinate) uint32 {
	return uint32(c.Y)*g.Width + uint32(c.X)
}

// CoordinateAt converts a linear cell index back to a coordinate.
func (g *NavGrid) CoordinateAt(index uint32) Coordinate {
	return Coordinate{
		X: int32(index % g.Width),
		Y: int32(index / g.Width),
	}
}

// Contains reports whether the coordinate lies inside the grid bounds.
func (g *NavGrid) Contains(c Coordinate) bool {
	return c.X >= 0 && c.Y >= 0 && uint32(c.X) < g.Width && uint32(c.Y) < g.Height
}

// AddEdge attaches an edge to its source cell and stamps the vertex's
// extra-edges marker. Builder and test helper; never called during search.
func (g *NavGrid) AddEdge(from Coordinate, e Edge) {
	index := g.Index(from)
	g.Edges[index] = append(g.Edges[index], e)
	g.Vertices[index].SetExtraEdges()
}

// AddTeleport appends a from-anywhere edge to the teleport list.
func (g *NavGrid) AddTeleport(e Edge) {
	g.Teleports = append(g.Teleports, e)
}

// EdgesFrom returns the extra edges attached to a cell, nil if none.
func (g *NavGrid) EdgesFrom(index uint32) []Edge {
	return g.Edges[index]
}

// EachEdge calls fn for every extra edge and teleport in the grid.
// Iteration order over the edge map is unspecified.
func (g *NavGrid) EachEdge(fn func(*Edge)) {
	for index := range g.Edges {
		edges := g.Edges[index]
		for i := range edges {
			fn(&edges[i])
		}
	}
	for i := range g.Teleports {
		fn(&g.Teleports[i])
	}
}

// MaxEdgeCost returns the largest edge or teleport cost, never below the
// base movement weight of 1. Sizes the bucket-ring frontier.
func (g *NavGrid) MaxEdgeCost() uint32 {
	maxCost := uint32(1)
	g.EachEdge(func(e *Edge) {
		if e.Cost > maxCost {
			maxCost = e.Cost
		}
	})
	return maxCost
}
