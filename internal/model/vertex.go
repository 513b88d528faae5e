package model

// Vertex attribute byte layout.
const (
	GroupMask      uint8 = 0x7F // bits 0-6: connectivity group id
	AttrExtraEdges uint8 = 0x80 // bit 7: vertex has non-grid edges
)

// Vertex is one grid cell: a passability bitmask plus an attribute byte
// holding the connectivity group id and the extra-edges marker. Two bytes
// total, so a full world grid stays around 50 MB.
type Vertex struct {
	Flags uint8
	Attrs uint8
}

// CanMove reports whether movement out of this cell in the flagged
// direction is permitted. The relation is directed: the destination's own
// mask is irrelevant here.
func (v Vertex) CanMove(flag uint8) bool {
	return v.Flags&flag != 0
}

// Group returns the cell's connectivity group id. Group ids are 7 bits and
// collide across distant components; equal ids prove nothing, differing ids
// prove there is no route.
func (v Vertex) Group() uint8 {
	return v.Attrs & GroupMask
}

// HasExtraEdges reports whether the cell carries non-grid edges.
func (v Vertex) HasExtraEdges() bool {
	return v.Attrs&AttrExtraEdges != 0
}

// SetGroup stamps the connectivity group id, preserving the extra-edges bit.
func (v *Vertex) SetGroup(group uint8) {
	v.Attrs = v.Attrs&AttrExtraEdges | group&GroupMask
}

// SetExtraEdges marks the cell as carrying non-grid edges.
func (v *Vertex) SetExtraEdges() {
	v.Attrs |= AttrExtraEdges
}
