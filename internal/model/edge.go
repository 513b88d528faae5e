package model

// EdgeDefinition is the opaque payload returned to clients describing how
// to perform a transition (open a door, board a ship, cast a teleport).
// The search never inspects it.
type EdgeDefinition struct {
	Kind     string      `json:"kind"`
	ObjectID int32       `json:"object_id,omitempty"`
	Action   string      `json:"action,omitempty"`
	Name     string      `json:"name,omitempty"`
	Position *Coordinate `json:"position,omitempty"`
}

// Edge is a directed transition to Destination at a fixed non-negative
// cost, usable only when every requirement holds against the query state.
// A teleport is an Edge kept in the grid's teleport list instead of being
// attached to a source cell.
type Edge struct {
	Destination  Coordinate      `json:"destination"`
	Cost         uint32          `json:"cost"`
	Requirements []Requirement   `json:"requirements,omitempty"`
	Definition   *EdgeDefinition `json:"definition,omitempty"`
}

// RequirementsMet reports whether every requirement holds. Edges without
// requirements are always usable.
func (e *Edge) RequirementsMet(state *GameState) bool {
	for i := range e.Requirements {
		if !e.Requirements[i].Met(state) {
			return false
		}
	}
	return true
}
