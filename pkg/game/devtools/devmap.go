package devtools

import (
	"fmt"

	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/generator"
	"darkdepths/pkg/game/state"
)

// devKinds are the objects laid out on the developer map
var devKinds = []string{
	"flask of oil", "ration of food", "wooden torch", "potion of cure light wounds",
	"scroll of phase door", "iron shot", "gold coins", "dagger", "soft leather armour",
}

// devRaces are the monsters laid out on the developer map
var devRaces = []string{"kobold", "cave orc", "warg", "young red dragon"}

// SwitchToDevMap replaces the active level with a hard-coded developer
// testing level: one open room with every terrain feature, object and
// monster set out in rows with a margin between each.
func SwitchToDevMap(g *state.Game) error {
	const margin = 3
	reg := g.Limits.Features

	width := max(reg.Max(), len(devKinds))*margin + 4
	height := 18

	cave, err := g.EnterLevel(height, width, g.Depth)
	if err != nil {
		return err
	}
	ter := cave.Terrain()

	// Open floor inside a permanent wall
	room := generator.Room{Name: "Dev Test Floor", X: 1, Y: 1, Width: width - 2, Height: height - 2}
	cave.ForEachSquare(func(loc world.Loc, _ *world.Square) {
		if cave.InBoundsFully(loc) {
			cave.SetFeat(loc, ter.Floor)
			cave.SetInfo(loc, world.SquareRoom)
		} else {
			cave.SetFeat(loc, ter.Perm)
		}
	})

	// Row 1: every terrain feature except the unknown grid
	x := 2
	for feat := 0; feat < reg.Max(); feat++ {
		if feat == ter.None {
			continue
		}
		cave.SetFeat(world.L(x, 2), feat)
		x += margin
	}

	// Row 2: objects
	for i, kind := range devKinds {
		if err := g.Drop(world.NewObject(kind, i+1), world.L(2+i*margin, 6)); err != nil {
			return err
		}
	}

	// Row 3: traps, hidden and visible
	for i, visible := range []bool{false, true} {
		if _, err := cave.PlaceTrap(world.L(2+i*margin, 9), fmt.Sprintf("dev trap %d", i+1), visible); err != nil {
			return err
		}
	}

	// Row 4: monsters, the last carrying an object
	var last int
	for i, race := range devRaces {
		idx, err := cave.NewMonster(race, world.L(2+i*margin, 12), 10*(i+1))
		if err != nil {
			return err
		}
		last = idx
	}
	if err := g.Carry(last, world.NewObject("gold coins", 99)); err != nil {
		return err
	}

	up := world.L(2, height-3)
	down := world.L(width-3, height-3)
	cave.SetFeat(up, ter.Less)
	cave.SetFeat(down, ter.More)

	g.Layout = &generator.Layout{Rooms: []generator.Room{room}, Up: up, Down: down}
	g.Player = up
	g.Logger().Info("switched to developer map")
	return nil
}
