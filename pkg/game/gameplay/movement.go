package gameplay

import (
	"go.uber.org/zap"

	"darkdepths/pkg/engine/feature"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/renderer"
	"darkdepths/pkg/game/state"
)

// secretOneIn is the chance per step of noticing each adjacent secret door
const secretOneIn = 4

// CanEnter checks if the player can step onto loc. When logReason is set a
// refusal is explained in the message log.
func CanEnter(g *state.Game, loc world.Loc, logReason bool) bool {
	if !g.Cave.InBoundsFully(loc) {
		return false
	}
	if g.Cave.HasFlag(loc, feature.FlagPassable) {
		return true
	}
	if !logReason {
		return false
	}

	// Bumping into something unknown teaches the player what it is
	known := world.IsKnown(g.Known, loc)
	g.Observe(loc)

	switch {
	case g.Cave.IsClosedDoor(loc):
		if known {
			logMessage(g, "There is a closed door blocking your way.")
		} else {
			logMessage(g, "You feel a door blocking your way.")
		}
	case g.Cave.IsRubble(loc):
		logMessage(g, "There is a pile of rubble blocking your way.")
	default:
		if known {
			logMessage(g, "There is a wall blocking your way.")
		} else {
			logMessage(g, "You feel a wall blocking your way.")
		}
	}
	return false
}

// MovePlayer steps the player one square in dir. A monster in the way is
// attacked instead. Returns true if a turn was taken.
func MovePlayer(g *state.Game, dir world.Direction) bool {
	if !dir.IsValid() || dir == world.Here {
		return false
	}
	target := g.Player.Add(dir.Delta())

	if mon := g.Cave.MonsterAt(target); mon.Alive() {
		Attack(g, mon)
		g.AdvanceTurn()
		return true
	}

	if !CanEnter(g, target, true) {
		return false
	}

	g.Player = target
	g.MovementCount++
	g.AdvanceTurn()

	UpdateLightingExploration(g)
	hitTrap(g, target)
	searchAdjacent(g)
	describeFloor(g)
	return true
}

// Attack strikes the monster, killing it when its hit points run out
func Attack(g *state.Game, mon *world.Monster) {
	dmg := 1 + g.Rand.Intn(6)
	mon.HP -= dmg
	if mon.HP > 0 {
		logMessage(g, "You hit the ITEM{%s}.", mon.Race)
		return
	}

	race, grid := mon.Race, mon.Grid
	if err := g.Kill(mon.MIdx); err != nil {
		g.Logger().Error("kill failed", zap.Int("midx", mon.MIdx), zap.Error(err))
		return
	}
	// Anything it dropped is in plain sight
	g.Observe(grid)
	logMessage(g, "You have slain the ITEM{%s}.", race)
}

// hitTrap reveals any hidden trap the player has stepped on
func hitTrap(g *state.Game, loc world.Loc) {
	sq := g.Cave.Square(loc)
	for t := sq.Trap; t != nil; t = t.Next {
		if t.Reveal() {
			logMessage(g, "You found a ITEM{%s}!", t.Kind)
		} else {
			logMessage(g, "You step carefully around the ITEM{%s}.", t.Kind)
		}
	}
	if sq.Trap != nil {
		g.Cave.ClearInfo(loc, world.SquareInvis)
		g.Observe(loc)
	}
}

// searchAdjacent may notice secret doors next to the player
func searchAdjacent(g *state.Game) {
	ter := g.Cave.Terrain()
	for _, dir := range world.AllDirections() {
		loc := g.Player.Add(dir.Delta())
		if g.Cave.Feat(loc) != ter.Secret || g.Rand.Intn(secretOneIn) != 0 {
			continue
		}
		g.Cave.SetFeat(loc, ter.Closed)
		g.Observe(loc)
		logMessage(g, "You have found a secret door.")
	}
}

// describeFloor tells the player what lies underfoot
func describeFloor(g *state.Game) {
	pile := g.Cave.Pile(g.Player)
	switch pile.Len() {
	case 0:
		return
	case 1:
		logMessage(g, "You see ITEM{%s}.", pile.Top().Name())
	default:
		logMessage(g, "You see a pile of ACTION{%d} objects.", pile.Len())
	}
}

// logMessage adds a formatted message to the game log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(renderer.FormatText(msg, a...))
}
