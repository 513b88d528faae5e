package pathfinder

import "github.com/qverkk/osrs-nav/internal/model"

// AssignGroups floods every connected component of the grid and stamps
// the component number modulo 128 into each vertex's group bits,
// returning the number of components found. Group ids collide once the
// grid has more than 128 components, which is fine for their only use:
// differing ids prove two cells are disconnected, equal ids prove
// nothing.
//
// Grid builder helper, run offline before a grid is written out. The
// flood follows directed adjacency, so the builder must have made masks
// and extra edges symmetric for components to be well defined.
func AssignGroups(grid *model.NavGrid) int {
	assigned := make([]bool, grid.Cells())
	flooder := NewFlooder()

	groups := 0
	for index := range assigned {
		if assigned[index] {
			continue
		}
		id := uint8(groups) & model.GroupMask
		flooder.Flood(grid, grid.CoordinateAt(uint32(index)), func(i uint32) bool {
			assigned[i] = true
			grid.Vertices[i].SetGroup(id)
			return true
		})
		groups++
	}
	return groups
}
