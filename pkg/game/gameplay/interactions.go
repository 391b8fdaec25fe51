package gameplay

import (
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/state"
)

func closedDoor(c *world.Chunk, loc world.Loc) bool { return c.IsClosedDoor(loc) }
func openDoor(c *world.Chunk, loc world.Loc) bool   { return c.IsOpenDoor(loc) }
func rubble(c *world.Chunk, loc world.Loc) bool     { return c.IsRubble(loc) }
func visibleTrap(c *world.Chunk, loc world.Loc) bool {
	return c.IsVisibleTrap(loc)
}

// alterAdjacent finds the single known square next to the player that
// passes test. With none or several candidates it explains why and
// returns false.
func alterAdjacent(g *state.Game, test world.SquareTest, noun string) (world.Loc, bool) {
	n, loc := g.CountFeats(test, false)
	switch n {
	case 0:
		logMessage(g, "You see no %s here.", noun)
		return world.Loc{}, false
	case 1:
		return loc, true
	default:
		logMessage(g, "There are ACTION{%d} %ss next to you; step towards the one you want.", n, noun)
		return world.Loc{}, false
	}
}

// OpenDoor opens the one closed door next to the player
func OpenDoor(g *state.Game) bool {
	loc, ok := alterAdjacent(g, closedDoor, "closed door")
	if !ok {
		return false
	}
	g.Cave.SetFeat(loc, g.Cave.Terrain().Open)
	g.Observe(loc)
	g.InteractionsCount++
	g.AdvanceTurn()
	UpdateLightingExploration(g)
	logMessage(g, "You open the door.")
	return true
}

// CloseDoor closes the one open door next to the player
func CloseDoor(g *state.Game) bool {
	loc, ok := alterAdjacent(g, openDoor, "open door")
	if !ok {
		return false
	}
	if g.Cave.MonsterAt(loc) != nil || g.Cave.Pile(loc).Len() > 0 {
		logMessage(g, "Something is in the way.")
		return false
	}
	g.Cave.SetFeat(loc, g.Cave.Terrain().Closed)
	g.Observe(loc)
	g.InteractionsCount++
	g.AdvanceTurn()
	logMessage(g, "You close the door.")
	return true
}

// Tunnel digs at the one pile of rubble next to the player. Each turn of
// digging has an even chance of clearing it.
func Tunnel(g *state.Game) bool {
	loc, ok := alterAdjacent(g, rubble, "rubble")
	if !ok {
		return false
	}
	g.InteractionsCount++
	g.AdvanceTurn()
	if g.Rand.Intn(2) != 0 {
		logMessage(g, "You dig in the rubble with little effect.")
		return true
	}
	g.Cave.SetFeat(loc, g.Cave.Terrain().Floor)
	g.Observe(loc)
	UpdateLightingExploration(g)
	logMessage(g, "You have removed the rubble.")
	return true
}

// PickUpItemsOnFloor picks up everything at the player's feet
func PickUpItemsOnFloor(g *state.Game) bool {
	objs := g.Cave.Pile(g.Player).Objects()
	if len(objs) == 0 {
		logMessage(g, "There is nothing here to pick up.")
		return false
	}
	for _, obj := range objs {
		if err := g.PickUp(obj); err != nil {
			logMessage(g, "You cannot pick up the ITEM{%s}.", obj.Name())
			return false
		}
		logMessage(g, "You have ITEM{%s}.", obj.Name())
	}
	g.Observe(g.Player)
	g.AdvanceTurn()
	return true
}

// DropItem drops the most recently picked up object
func DropItem(g *state.Game) bool {
	obj, err := g.DropLast()
	if err != nil {
		logMessage(g, "You cannot drop that here.")
		return false
	}
	if obj == nil {
		logMessage(g, "You are not carrying anything.")
		return false
	}
	g.AdvanceTurn()
	logMessage(g, "You drop ITEM{%s}.", obj.Name())
	return true
}

// Descend takes the down staircase under the player
func Descend(g *state.Game) (bool, error) {
	if g.Cave.Feat(g.Player) != g.Cave.Terrain().More {
		logMessage(g, "There is no down staircase here.")
		return false, nil
	}
	g.AdvanceTurn()
	return true, AdvanceLevel(g)
}
