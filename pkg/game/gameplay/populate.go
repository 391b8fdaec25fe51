package gameplay

import (
	"darkdepths/pkg/engine/feature"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/depth"
	"darkdepths/pkg/game/state"
)

// objectKind is an object that can be found lying on a level
type objectKind struct {
	name     string
	maxStack int
}

var objectKinds = []objectKind{
	{"flask of oil", 5},
	{"ration of food", 4},
	{"wooden torch", 3},
	{"potion of cure light wounds", 2},
	{"scroll of phase door", 3},
	{"iron shot", 20},
	{"gold coins", 60},
	{"dagger", 1},
	{"soft leather armour", 1},
}

// race is a kind of monster with its starting hit points
type race struct {
	name string
	hp   int
}

var racesByBand = map[depth.Band][]race{
	depth.Shallows: {{"grey mold", 6}, {"jackal", 4}, {"cave spider", 2}, {"kobold", 8}},
	depth.Mines:    {{"cave orc", 11}, {"snaga", 8}, {"rock lizard", 3}, {"bullroarer", 20}},
	depth.Caverns:  {{"cave bear", 24}, {"hill orc", 13}, {"crebain", 9}, {"warg", 18}},
	depth.Deeps:    {{"fire giant", 60}, {"uruk", 40}, {"young red dragon", 70}, {"troll priest", 45}},
}

// carryOneIn is the chance a placed monster starts with an object
const carryOneIn = 3

// anchors returns the squares objects and monsters are scattered around
func anchors(g *state.Game) []world.Loc {
	var locs []world.Loc
	for _, r := range g.Layout.Rooms {
		locs = append(locs, r.Center())
	}
	if len(locs) == 0 {
		locs = append(locs, g.Layout.Up, g.Layout.Down)
	}
	return locs
}

func randomObject(g *state.Game) *world.Object {
	k := objectKinds[g.Rand.Intn(len(objectKinds))]
	return world.NewObject(k.name, 1+g.Rand.Intn(k.maxStack))
}

// placeObjects drops n objects on open floor near the level's anchors
func placeObjects(g *state.Game, n int) error {
	around := anchors(g)
	for i := 0; i < n; i++ {
		loc := g.Scatter(around[g.Rand.Intn(len(around))], 3, true)
		if !g.Cave.HasFlag(loc, feature.FlagFloor) {
			continue
		}
		if err := g.Drop(randomObject(g), loc); err != nil {
			return err
		}
	}
	return nil
}

// placeMonsters puts n monsters on empty passable squares away from the player
func placeMonsters(g *state.Game, n int) error {
	races := racesByBand[depth.BandOf(g.Depth)]
	around := anchors(g)
	for i := 0; i < n; i++ {
		loc := g.Scatter(around[g.Rand.Intn(len(around))], 4, false)
		if !g.Cave.HasFlag(loc, feature.FlagPassable) ||
			g.Cave.MonsterAt(loc) != nil ||
			world.Distance(loc, g.Player) <= 2 {
			continue
		}

		r := races[g.Rand.Intn(len(races))]
		idx, err := g.Cave.NewMonster(r.name, loc, r.hp)
		if err != nil {
			return err
		}
		if g.Rand.Intn(carryOneIn) == 0 {
			if err := g.Carry(idx, randomObject(g)); err != nil {
				return err
			}
		}
	}
	return nil
}
