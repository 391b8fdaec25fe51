package gameplay

import (
	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	engineinput "darkdepths/pkg/engine/input"
	"darkdepths/pkg/game/menu"
	"darkdepths/pkg/game/state"
)

// MapDumper writes the current level somewhere and returns where
type MapDumper func(g *state.Game) (string, error)

// ProcessIntent carries out one player intent. It returns false once the
// player has asked to quit.
func ProcessIntent(g *state.Game, intent engineinput.Intent, dump MapDumper) bool {
	switch intent.Action {
	case engineinput.ActionNone:
		logMessage(g, "%s", gotext.Get("UNKNOWN_COMMAND"))
		return true

	case engineinput.ActionQuit:
		return false

	case engineinput.ActionMove:
		if !MovePlayer(g, intent.Dir) {
			ShowMovementHint(g)
		}

	case engineinput.ActionWait:
		g.AdvanceTurn()

	case engineinput.ActionOpen:
		OpenDoor(g)

	case engineinput.ActionClose:
		CloseDoor(g)

	case engineinput.ActionTunnel:
		Tunnel(g)

	case engineinput.ActionPickUp:
		PickUpItemsOnFloor(g)

	case engineinput.ActionDrop:
		DropItem(g)

	case engineinput.ActionLook:
		UpdateLightingExploration(g)
		if !ShowInteractableHints(g) {
			logMessage(g, "You see nothing of interest.")
		}

	case engineinput.ActionHint:
		if !ShowInteractableHints(g) {
			ShowMovementHint(g)
		}

	case engineinput.ActionDescend:
		if _, err := Descend(g); err != nil {
			g.Logger().Error("descent failed", zap.Error(err))
			logMessage(g, "The stairs are blocked.")
		}

	case engineinput.ActionHelp:
		menu.Show(menu.NewBindingsMenuHandler())
		return true

	case engineinput.ActionRevealAll:
		RevealLevel(g)
		logMessage(g, "You sense the layout of the level.")

	case engineinput.ActionMapDump:
		if dump == nil {
			return true
		}
		path, err := dump(g)
		if err != nil {
			logMessage(g, "Map dump failed: %v", err)
		} else {
			logMessage(g, "Map dumped to %s", path)
		}
	}

	if err := g.CheckIntegrity(); err != nil {
		g.Logger().Error("level corrupted", zap.Int32("turn", g.Turn), zap.Error(err))
	}
	return true
}
