package gameplay

import (
	"testing"

	"darkdepths/pkg/engine/config"
	"darkdepths/pkg/engine/feature"
	engineinput "darkdepths/pkg/engine/input"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/setup"
	"darkdepths/pkg/game/state"
)

func newTestConfig() *config.Config {
	cfg := config.Defaults()
	cfg.Level.Height = 40
	cfg.Level.Width = 80
	cfg.Limits.ObjectListSize = 4
	cfg.Limits.ObjectListIncr = 4
	return cfg
}

func buildTestGame(t *testing.T, seed int64, startDepth int) *state.Game {
	t.Helper()
	g, err := BuildGame(newTestConfig(), feature.Default(), seed, startDepth, nil)
	if err != nil {
		t.Fatalf("BuildGame() error: %v", err)
	}
	return g
}

// makeOpenGame creates a Game on a small open level with the player in the middle
func makeOpenGame(t *testing.T) *state.Game {
	t.Helper()
	g := state.NewGame(world.NewLimits(feature.Default(), newTestConfig().Limits), 1, nil)
	cave, err := g.EnterLevel(9, 9, 1)
	if err != nil {
		t.Fatalf("EnterLevel() error: %v", err)
	}
	ter := cave.Terrain()
	cave.ForEachSquare(func(loc world.Loc, _ *world.Square) {
		if cave.InBoundsFully(loc) {
			cave.SetFeat(loc, ter.Floor)
		} else {
			cave.SetFeat(loc, ter.Perm)
		}
	})
	g.Player = world.L(4, 4)
	UpdateLightingExploration(g)
	return g
}

func TestBuildGame_PlayerOnUpStaircase(t *testing.T) {
	g := buildTestGame(t, 1, 1)
	if g.Player != g.Layout.Up {
		t.Errorf("Player = %v, want up staircase %v", g.Player, g.Layout.Up)
	}
	if g.Cave.Feat(g.Player) != g.Cave.Terrain().Less {
		t.Error("player is not standing on the up staircase")
	}
	if !world.IsKnown(g.Known, g.Player) {
		t.Error("player's own square not known after arrival")
	}
	if err := g.CheckIntegrity(); err != nil {
		t.Errorf("CheckIntegrity() error: %v", err)
	}
}

func TestBuildGame_Populated(t *testing.T) {
	objects, monsters := 0, 0
	for seed := int64(1); seed <= 5; seed++ {
		g := buildTestGame(t, seed, 3)
		g.Cave.ForEachObject(func(int, *world.Object) { objects++ })
		monsters += g.Cave.MonsterCount()

		for i := 1; i < g.Cave.MonsterMax(); i++ {
			mon := g.Cave.Monster(i)
			if mon.Alive() && world.Distance(mon.Grid, g.Player) <= 2 {
				t.Errorf("seed %d: monster %d placed next to the player at %v", seed, i, mon.Grid)
			}
		}
		if err := setup.CheckSolvable(g.Cave, g.Layout.Up, g.Layout.Down); err != nil {
			t.Errorf("seed %d: %v", seed, err)
		}
		if n := len(setup.UnreachableObjects(g.Cave, g.Player)); n != 0 {
			t.Errorf("seed %d: %d unreachable objects left on the level", seed, n)
		}
	}
	if objects == 0 {
		t.Error("no objects placed")
	}
	if monsters == 0 {
		t.Error("no monsters placed")
	}
}

func TestResetLevel_SameLayout(t *testing.T) {
	g := buildTestGame(t, 5, 2)
	up, down := g.Layout.Up, g.Layout.Down
	monsters := g.Cave.MonsterCount()

	if err := ResetLevel(g); err != nil {
		t.Fatalf("ResetLevel() error: %v", err)
	}
	if g.Layout.Up != up || g.Layout.Down != down {
		t.Errorf("stairs after reset = %v, %v, want %v, %v", g.Layout.Up, g.Layout.Down, up, down)
	}
	if g.Cave.MonsterCount() != monsters {
		t.Errorf("MonsterCount() after reset = %d, want %d", g.Cave.MonsterCount(), monsters)
	}
}

func TestDescend(t *testing.T) {
	g := buildTestGame(t, 3, 1)
	known := g.Known

	if ok, _ := Descend(g); ok {
		t.Fatal("Descend() from the up staircase succeeded")
	}

	var gotKey string
	var gotArgs []interface{}
	orig := translatef
	translatef = func(key string, vars ...interface{}) string {
		gotKey, gotArgs = key, vars
		return key
	}
	defer func() { translatef = orig }()

	g.Player = g.Layout.Down
	ok, err := Descend(g)
	if err != nil || !ok {
		t.Fatalf("Descend() = %v, %v, want true, nil", ok, err)
	}
	if g.Depth != 2 {
		t.Errorf("Depth = %d, want 2", g.Depth)
	}
	if gotKey != "DESCENDED" || len(gotArgs) != 1 || gotArgs[0] != 100 {
		t.Errorf("descent message = %q %v, want DESCENDED [100]", gotKey, gotArgs)
	}
	if g.Known != known {
		t.Error("known chunk replaced for a level of the same size")
	}
	if err := g.CheckIntegrity(); err != nil {
		t.Errorf("CheckIntegrity() error: %v", err)
	}
}

func TestMovePlayer_OpenFloor(t *testing.T) {
	g := makeOpenGame(t)
	if !MovePlayer(g, world.East) {
		t.Fatal("MovePlayer(East) = false, want true")
	}
	if g.Player != world.L(5, 4) {
		t.Errorf("Player = %v, want (5,4)", g.Player)
	}
	if g.Turn != 1 || g.MovementCount != 1 {
		t.Errorf("Turn, MovementCount = %d, %d, want 1, 1", g.Turn, g.MovementCount)
	}
}

func TestMovePlayer_Blocked(t *testing.T) {
	g := makeOpenGame(t)
	g.Player = world.L(1, 1)
	if MovePlayer(g, world.NorthWest) {
		t.Error("MovePlayer into the outer wall = true, want false")
	}
	if MovePlayer(g, world.Here) {
		t.Error("MovePlayer(Here) = true, want false")
	}
	if g.Turn != 0 {
		t.Errorf("Turn = %d, want 0", g.Turn)
	}
}

func TestMovePlayer_AttacksMonster(t *testing.T) {
	g := makeOpenGame(t)
	loc := world.L(5, 4)
	idx, err := g.Cave.NewMonster("jackal", loc, 1)
	if err != nil {
		t.Fatalf("NewMonster() error: %v", err)
	}
	if err := g.Carry(idx, world.NewObject("dagger", 1)); err != nil {
		t.Fatalf("Carry() error: %v", err)
	}

	if !MovePlayer(g, world.East) {
		t.Fatal("attack did not take a turn")
	}
	if g.Player != world.L(4, 4) {
		t.Error("player moved into the monster's square")
	}
	if g.Cave.MonsterCount() != 0 {
		t.Error("one hit point monster survived")
	}
	if g.Known.Pile(loc).Len() != 1 {
		t.Error("dropped object not seen")
	}
	if err := g.CheckIntegrity(); err != nil {
		t.Errorf("CheckIntegrity() error: %v", err)
	}
}

func TestOpenDoor_Single(t *testing.T) {
	g := makeOpenGame(t)
	door := world.L(4, 3)
	g.Cave.SetFeat(door, g.Cave.Terrain().Closed)
	g.Observe(door)

	if !OpenDoor(g) {
		t.Fatal("OpenDoor() = false, want true")
	}
	if !g.Cave.IsOpenDoor(door) {
		t.Error("door not opened")
	}
	if !g.Known.IsOpenDoor(door) {
		t.Error("player does not remember the door as open")
	}
	if !CloseDoor(g) {
		t.Fatal("CloseDoor() = false, want true")
	}
	if !g.Cave.IsClosedDoor(door) {
		t.Error("door not closed")
	}
}

func TestOpenDoor_Ambiguous(t *testing.T) {
	g := makeOpenGame(t)
	for _, loc := range []world.Loc{world.L(4, 3), world.L(4, 5)} {
		g.Cave.SetFeat(loc, g.Cave.Terrain().Closed)
		g.Observe(loc)
	}
	if OpenDoor(g) {
		t.Error("OpenDoor() with two doors = true, want false")
	}
	if g.Turn != 0 {
		t.Errorf("Turn = %d, want 0", g.Turn)
	}
}

func TestOpenDoor_UnknownDoorIgnored(t *testing.T) {
	g := makeOpenGame(t)
	door := world.L(3, 3)
	// The player's memory still says floor
	g.Cave.SetFeat(door, g.Cave.Terrain().Closed)
	g.Known.SetFeat(door, g.Known.Terrain().None)
	if OpenDoor(g) {
		t.Error("OpenDoor() opened a door the player does not know about")
	}
}

func TestPickUpAndDrop(t *testing.T) {
	g := makeOpenGame(t)
	if err := g.Drop(world.NewObject("flask of oil", 3), g.Player); err != nil {
		t.Fatalf("Drop() error: %v", err)
	}
	UpdateLightingExploration(g)

	if !PickUpItemsOnFloor(g) {
		t.Fatal("PickUpItemsOnFloor() = false, want true")
	}
	if len(g.Inventory) != 1 || g.Cave.Pile(g.Player).Len() != 0 {
		t.Errorf("inventory %d, floor %d, want 1, 0", len(g.Inventory), g.Cave.Pile(g.Player).Len())
	}
	if PickUpItemsOnFloor(g) {
		t.Error("PickUpItemsOnFloor() on an empty square = true")
	}
	if !DropItem(g) {
		t.Fatal("DropItem() = false, want true")
	}
	if DropItem(g) {
		t.Error("DropItem() with nothing carried = true")
	}
	if err := g.CheckIntegrity(); err != nil {
		t.Errorf("CheckIntegrity() error: %v", err)
	}
}

func TestShowInteractableHints(t *testing.T) {
	g := makeOpenGame(t)
	if ShowInteractableHints(g) {
		t.Error("hints shown with nothing around")
	}
	loc := world.L(5, 5)
	g.Cave.SetFeat(loc, g.Cave.Terrain().Rubble)
	g.Observe(loc)
	if !ShowInteractableHints(g) {
		t.Error("no hint for adjacent rubble")
	}
}

func TestProcessIntent(t *testing.T) {
	g := makeOpenGame(t)
	if !ProcessIntent(g, engineinput.MapToIntent("6"), nil) {
		t.Fatal("ProcessIntent(move) asked to quit")
	}
	if g.Player != world.L(5, 4) {
		t.Errorf("Player = %v, want (5,4)", g.Player)
	}
	if ProcessIntent(g, engineinput.MapToIntent("q"), nil) {
		t.Error("ProcessIntent(quit) = true, want false")
	}

	dumped := false
	dump := func(*state.Game) (string, error) {
		dumped = true
		return "map.txt", nil
	}
	ProcessIntent(g, engineinput.MapToIntent("M"), dump)
	if !dumped {
		t.Error("map dump intent did not call the dumper")
	}
}
