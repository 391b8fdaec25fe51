package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"darkdepths/pkg/game/state"
)

// ShowMovementHint reminds new players how to move.
// Only shows the hint if the player has moved fewer than 3 times.
func ShowMovementHint(g *state.Game) {
	if g.MovementCount >= 3 {
		return
	}
	logMessage(g, "%s", gotext.Get("HINT_MOVE"))
}

// ShowInteractableHints describes the known features around the player
// that can be acted on. Returns true if anything was described.
func ShowInteractableHints(g *state.Game) bool {
	shown := false

	if n, _ := g.CountFeats(closedDoor, false); n > 0 {
		logMessage(g, "%s", gotext.GetN("HINT_DOOR", "HINT_DOORS", n, n))
		shown = true
	}
	if n, _ := g.CountFeats(rubble, false); n > 0 {
		logMessage(g, "%s", gotext.GetN("HINT_RUBBLE", "HINT_RUBBLES", n, n))
		shown = true
	}
	// A trap underfoot counts too
	if n, _ := g.CountFeats(visibleTrap, true); n > 0 {
		logMessage(g, "%s", gotext.GetN("HINT_TRAP", "HINT_TRAPS", n, n))
		shown = true
	}
	if g.Cave.Feat(g.Player) == g.Cave.Terrain().More {
		logMessage(g, "%s", gotext.Get("HINT_STAIRS"))
		shown = true
	}

	return shown
}
