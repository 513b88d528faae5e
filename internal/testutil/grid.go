// Package testutil provides shared test fixtures: small movement grids
// with known shapes for search, flood, and I/O tests.
package testutil

import "github.com/qverkk/osrs-nav/internal/model"

// OpenGrid returns a grid where every cell permits all four cardinal
// directions, clamped at the borders. No diagonals, no extra edges.
func OpenGrid(width, height uint32) *model.NavGrid {
	g := model.NewNavGrid(width, height)
	for y := int32(0); y < int32(height); y++ {
		for x := int32(0); x < int32(width); x++ {
			var flags uint8
			if x > 0 {
				flags |= model.FlagWest
			}
			if x < int32(width)-1 {
				flags |= model.FlagEast
			}
			if y > 0 {
				flags |= model.FlagSouth
			}
			if y < int32(height)-1 {
				flags |= model.FlagNorth
			}
			g.Vertices[g.Index(model.Coordinate{X: x, Y: y})].Flags = flags
		}
	}
	return g
}

// AddDiagonals sets every diagonal bit whose two adjacent cardinal bits
// are already set, the way a grid builder bakes corner-cut legality.
func AddDiagonals(g *model.NavGrid) {
	for i := range g.Vertices {
		v := &g.Vertices[i]
		if v.CanMove(model.FlagSouth) && v.CanMove(model.FlagWest) {
			v.Flags |= model.FlagSouthWest
		}
		if v.CanMove(model.FlagSouth) && v.CanMove(model.FlagEast) {
			v.Flags |= model.FlagSouthEast
		}
		if v.CanMove(model.FlagNorth) && v.CanMove(model.FlagWest) {
			v.Flags |= model.FlagNorthWest
		}
		if v.CanMove(model.FlagNorth) && v.CanMove(model.FlagEast) {
			v.Flags |= model.FlagNorthEast
		}
	}
}

// SplitGrid returns an open grid cut into two halves by clearing every
// cardinal bit crossing the vertical line left of column wallX. The
// halves stay internally open; nothing crosses without an extra edge.
func SplitGrid(width, height, wallX uint32) *model.NavGrid {
	g := OpenGrid(width, height)
	for y := int32(0); y < int32(height); y++ {
		left := g.Index(model.Coordinate{X: int32(wallX) - 1, Y: y})
		right := g.Index(model.Coordinate{X: int32(wallX), Y: y})
		g.Vertices[left].Flags &^= model.FlagEast
		g.Vertices[right].Flags &^= model.FlagWest
	}
	return g
}

// ClampBorders clears every direction bit that would step off the grid.
// Used after filling vertices with arbitrary masks.
func ClampBorders(g *model.NavGrid) {
	for y := int32(0); y < int32(g.Height); y++ {
		for x := int32(0); x < int32(g.Width); x++ {
			v := &g.Vertices[g.Index(model.Coordinate{X: x, Y: y})]
			for _, d := range model.Directions {
				if !g.Contains(model.Coordinate{X: x + d.DX, Y: y + d.DY}) {
					v.Flags &^= d.Flag
				}
			}
		}
	}
}

// Mirror makes directed adjacency symmetric: for every set direction bit
// the destination cell gets the reverse bit, and every extra edge gains a
// reverse edge with the same cost. Borders must already be clamped.
func Mirror(g *model.NavGrid) {
	for y := int32(0); y < int32(g.Height); y++ {
		for x := int32(0); x < int32(g.Width); x++ {
			c := model.Coordinate{X: x, Y: y}
			v := g.Vertices[g.Index(c)]
			for _, d := range model.Directions {
				if v.Flags&d.Flag == 0 {
					continue
				}
				adj := model.Coordinate{X: x + d.DX, Y: y + d.DY}
				g.Vertices[g.Index(adj)].Flags |= ReverseFlag(d.Flag)
			}
		}
	}

	type link struct {
		from, to model.Coordinate
		cost     uint32
	}
	var reversed []link
	for index, edges := range g.Edges {
		from := g.CoordinateAt(index)
		for _, e := range edges {
			reversed = append(reversed, link{from: e.Destination, to: from, cost: e.Cost})
		}
	}
	for _, l := range reversed {
		g.AddEdge(l.from, model.Edge{Destination: l.to, Cost: l.cost})
	}
}

// ReverseFlag returns the direction bit pointing the opposite way.
func ReverseFlag(flag uint8) uint8 {
	switch flag {
	case model.FlagWest:
		return model.FlagEast
	case model.FlagEast:
		return model.FlagWest
	case model.FlagSouth:
		return model.FlagNorth
	case model.FlagNorth:
		return model.FlagSouth
	case model.FlagSouthWest:
		return model.FlagNorthEast
	case model.FlagSouthEast:
		return model.FlagNorthWest
	case model.FlagNorthWest:
		return model.FlagSouthEast
	case model.FlagNorthEast:
		return model.FlagSouthWest
	}
	return 0
}
