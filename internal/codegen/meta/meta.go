package meta

import (
	"github.com/openmultiplayer/open.mp-capi/internal/codegen/scanner"
	"github.com/openmultiplayer/open.mp-capi/internal/codegen/schema"
)

// Metadata holds everything the emitters need, assembled once by the
// orchestrator. Group order is discovery order and component order is sorted
// by name; both orders are part of the output contract.
type Metadata struct {
	Groups []scanner.APIGroup
	Events []schema.Component
}

// EntityAliases is the hand-maintained list of opaque handle types emitted at
// the top of the header. It is configuration, not derived from scanned input;
// extend it when the engine grows a new entity kind.
var EntityAliases = []string{
	"Player",
	"Vehicle",
	"Object",
	"TextDraw",
	"TextLabel",
	"Pickup",
	"GangZone",
	"Menu",
	"Actor",
	"Class",
	"NPC",
	"PlayerObject",
	"PlayerTextDraw",
	"PlayerTextLabel",
}
