package model

// RequirementKind discriminates what part of the player state a
// requirement reads.
type RequirementKind string

const (
	RequirementVarp   RequirementKind = "varp"   // quest/world state slot
	RequirementVarbit RequirementKind = "varbit" // packed sub-slot
	RequirementItem   RequirementKind = "item"   // inventory count by name
	RequirementSkill  RequirementKind = "skill"  // skill level by name
)

// Requirement is a threshold predicate over a GameState snapshot: the
// addressed value must be at least Value. Varp and varbit requirements
// address by Index, item and skill requirements by Name.
type Requirement struct {
	Kind  RequirementKind `json:"kind"`
	Index uint32          `json:"index,omitempty"`
	Name  string          `json:"name,omitempty"`
	Value int32           `json:"value"`
}

// Met evaluates the requirement against a state snapshot. Missing entries
// count as zero; an unknown kind is never met.
func (r *Requirement) Met(state *GameState) bool {
	if state == nil {
		return false
	}
	switch r.Kind {
	case RequirementVarp:
		return state.Varps[r.Index] >= r.Value
	case RequirementVarbit:
		return state.Varbits[r.Index] >= r.Value
	case RequirementItem:
		return state.Items[r.Name] >= r.Value
	case RequirementSkill:
		return state.Skills[r.Name] >= r.Value
	default:
		return false
	}
}

// GameState is the per-query player state snapshot requirements are
// evaluated against. Nil maps behave as all-zero.
type GameState struct {
	Varps   map[uint32]int32 `json:"varps"`
	Varbits map[uint32]int32 `json:"varbits"`
	Items   map[string]int32 `json:"items"`
	Skills  map[string]int32 `json:"skills"`
}
