package webservice

import (
	"net/http"
	"slices"

	"github.com/qverkk/osrs-nav/internal/model"
)

// DataSelection lists the player state slots the loaded grid's
// requirements actually read. Clients use it to send a minimal
// game_state instead of a full dump.
type DataSelection struct {
	Varps   []uint32 `json:"varps"`
	Varbits []uint32 `json:"varbits"`
	Items   []string `json:"items"`
	Skills  []string `json:"skills"`
}

// BuildSelection scans every edge and teleport requirement once. The
// result is sorted and deduplicated.
func BuildSelection(g *model.NavGrid) DataSelection {
	varps := make(map[uint32]struct{})
	varbits := make(map[uint32]struct{})
	items := make(map[string]struct{})
	skills := make(map[string]struct{})

	g.EachEdge(func(e *model.Edge) {
		for _, req := range e.Requirements {
			switch req.Kind {
			case model.RequirementVarp:
				varps[req.Index] = struct{}{}
			case model.RequirementVarbit:
				varbits[req.Index] = struct{}{}
			case model.RequirementItem:
				items[req.Name] = struct{}{}
			case model.RequirementSkill:
				skills[req.Name] = struct{}{}
			}
		}
	})

	sel := DataSelection{
		Varps:   make([]uint32, 0, len(varps)),
		Varbits: make([]uint32, 0, len(varbits)),
		Items:   make([]string, 0, len(items)),
		Skills:  make([]string, 0, len(skills)),
	}
	for v := range varps {
		sel.Varps = append(sel.Varps, v)
	}
	for v := range varbits {
		sel.Varbits = append(sel.Varbits, v)
	}
	for name := range items {
		sel.Items = append(sel.Items, name)
	}
	for name := range skills {
		sel.Skills = append(sel.Skills, name)
	}
	slices.Sort(sel.Varps)
	slices.Sort(sel.Varbits)
	slices.Sort(sel.Items)
	slices.Sort(sel.Skills)
	return sel
}

func (s *Server) handleSelect(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.selection)
}
