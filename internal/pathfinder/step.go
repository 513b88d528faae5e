package pathfinder

import "github.com/qverkk/osrs-nav/internal/model"

// Step is one unit of a route. Position is the cell the step lands on.
// Edge is set when the step uses a non-grid transition (door, ship,
// teleport) and carries its definition for the client; it is nil for
// plain movement. Movement steps cost 1, edge steps cost their edge's
// cost, so the step costs of a route sum to its total cost.
type Step struct {
	Position model.Coordinate      `json:"position"`
	Edge     *model.EdgeDefinition `json:"edge,omitempty"`
	Cost     uint32                `json:"cost"`
}
