package gameplay

import (
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/state"
)

// UpdateLightingExploration refreshes the player's memory of everything in view
func UpdateLightingExploration(g *state.Game) {
	if g.Cave == nil || g.Known == nil {
		return
	}
	g.LookAround()
}

// RevealLevel maps the whole level into the player's memory
func RevealLevel(g *state.Game) {
	g.Cave.ForEachSquare(func(loc world.Loc, _ *world.Square) {
		g.Observe(loc)
	})
}
