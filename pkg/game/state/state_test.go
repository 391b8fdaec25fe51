package state

import (
	"errors"
	"testing"

	"darkdepths/pkg/engine/feature"
	"darkdepths/pkg/engine/world"
)

func testLimits() world.Limits {
	return world.Limits{
		Features:       feature.Default(),
		MonsterMax:     16,
		ObjectListSize: 8,
		ObjectListIncr: 8,
	}
}

// newTestGame returns a game on an open 12x12 level with the player in the middle
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(testLimits(), 1, nil)
	cave, err := g.EnterLevel(12, 12, 1)
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
	g.Player = world.L(6, 6)
	return g
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := NewGame(testLimits(), 1, nil)
	for _, m := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		g.AddMessage(m)
	}
	if len(g.Messages) != 5 {
		t.Fatalf("len(Messages) = %d, want 5", len(g.Messages))
	}
	if g.Messages[0] != "c" || g.Messages[4] != "g" {
		t.Errorf("Messages = %v, want [c d e f g]", g.Messages)
	}
	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("len(Messages) after clear = %d, want 0", len(g.Messages))
	}
}

func TestEnterLevel_ReusesKnownOfSameSize(t *testing.T) {
	g := newTestGame(t)
	g.LookAround()
	known := g.Known
	if known.Feat(g.Player) == known.Terrain().None {
		t.Fatal("player square not observed")
	}

	g.AdvanceTurn()
	if _, err := g.EnterLevel(12, 12, 2); err != nil {
		t.Fatalf("EnterLevel() error: %v", err)
	}
	if g.Known != known {
		t.Error("known chunk reallocated for a level of the same size")
	}
	if known.Feat(world.L(6, 6)) != known.Terrain().None {
		t.Error("known chunk not reset on level change")
	}
	if known.Depth != 2 || known.CreatedAt != 1 {
		t.Errorf("known Depth, CreatedAt = %d, %d, want 2, 1", known.Depth, known.CreatedAt)
	}
}

func TestEnterLevel_ReplacesKnownOfOtherSize(t *testing.T) {
	g := newTestGame(t)
	old := g.Cave
	known := g.Known

	if _, err := g.EnterLevel(20, 30, 2); err != nil {
		t.Fatalf("EnterLevel() error: %v", err)
	}
	if !old.Freed() {
		t.Error("previous level not freed")
	}
	if !known.Freed() {
		t.Error("previous known chunk not freed")
	}
	if g.Known.Height() != 20 || g.Known.Width() != 30 {
		t.Errorf("known size = %dx%d, want 20x30", g.Known.Height(), g.Known.Width())
	}
}

func TestEnterLevel_Invalid(t *testing.T) {
	g := NewGame(testLimits(), 1, nil)
	if _, err := g.EnterLevel(0, 10, 1); !errors.Is(err, world.ErrAllocation) {
		t.Errorf("EnterLevel(0, 10) error = %v, want ErrAllocation", err)
	}
	if g.Cave != nil {
		t.Error("Cave set after failed EnterLevel")
	}
}

func TestLeaveLevel_KeepsKnown(t *testing.T) {
	g := newTestGame(t)
	g.LeaveLevel()
	if g.Cave != nil {
		t.Error("Cave still set after LeaveLevel")
	}
	if g.Known == nil || g.Known.Freed() {
		t.Error("known chunk lost on LeaveLevel")
	}
	g.LeaveLevel()
}

func TestDrop_ObservedObjectBlocksDelist(t *testing.T) {
	g := newTestGame(t)
	obj := world.NewObject("torch", 1)
	loc := world.L(7, 6)
	if err := g.Drop(obj, loc); err != nil {
		t.Fatalf("Drop() error: %v", err)
	}
	g.LookAround()
	if obj.Known == nil {
		t.Fatal("dropped object not observed")
	}
	idx := obj.OIdx

	if err := g.DelistObject(g.Cave, obj); err != nil {
		t.Fatalf("DelistObject() error: %v", err)
	}
	if g.Cave.Object(idx) != obj {
		t.Error("object delisted while its known copy is still listed")
	}
	if err := g.CheckIntegrity(); err != nil {
		t.Errorf("CheckIntegrity() error: %v", err)
	}
}

func TestDestroy_RemovesEverything(t *testing.T) {
	g := newTestGame(t)
	obj := world.NewObject("flask of oil", 3)
	loc := world.L(5, 5)
	if err := g.Drop(obj, loc); err != nil {
		t.Fatalf("Drop() error: %v", err)
	}
	g.Observe(loc)
	idx := obj.OIdx

	if err := g.Destroy(obj); err != nil {
		t.Fatalf("Destroy() error: %v", err)
	}
	if g.Cave.Object(idx) != nil || g.Known.Object(idx) != nil {
		t.Errorf("index %d still listed after Destroy", idx)
	}
	if g.Cave.Pile(loc).Len() != 0 || g.Known.Pile(loc).Len() != 0 {
		t.Error("object still on the floor after Destroy")
	}
	if err := g.CheckIntegrity(); err != nil {
		t.Errorf("CheckIntegrity() error: %v", err)
	}
}

func TestListObject_OtherChunkIgnoresKnown(t *testing.T) {
	g := newTestGame(t)
	other, err := world.NewChunk(10, 10, testLimits(), 0)
	if err != nil {
		t.Fatalf("NewChunk() error: %v", err)
	}
	for i := 0; i < 10; i++ {
		g.ListObject(other, world.NewObject("pebble", 1))
	}
	if other.ObjMax() <= g.Known.ObjMax() {
		t.Fatalf("other ObjMax = %d, want > %d", other.ObjMax(), g.Known.ObjMax())
	}
	if g.Known.ObjMax() != g.Cave.ObjMax() {
		t.Errorf("known ObjMax = %d, cave ObjMax = %d, want equal", g.Known.ObjMax(), g.Cave.ObjMax())
	}
}

func TestCountFeats_OnlyKnownSquares(t *testing.T) {
	g := newTestGame(t)
	door := world.L(7, 6)
	g.Cave.SetFeat(door, g.Cave.Terrain().Closed)

	test := func(c *world.Chunk, loc world.Loc) bool { return c.IsClosedDoor(loc) }
	if n, _ := g.CountFeats(test, false); n != 0 {
		t.Errorf("CountFeats() before looking = %d, want 0", n)
	}
	g.LookAround()
	n, loc := g.CountFeats(test, false)
	if n != 1 || loc != door {
		t.Errorf("CountFeats() = %d, %v, want 1, %v", n, loc, door)
	}
}

func TestScatter_StaysOnLevel(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 50; i++ {
		loc := g.Scatter(g.Player, 3, true)
		if !g.Cave.InBoundsFully(loc) {
			t.Fatalf("Scatter() = %v, outside level interior", loc)
		}
		if world.Distance(g.Player, loc) > 3 {
			t.Fatalf("Scatter() = %v, distance %d > 3", loc, world.Distance(g.Player, loc))
		}
	}
}

func TestPickUp_ThenDropLast(t *testing.T) {
	g := newTestGame(t)
	obj := world.NewObject("ration", 2)
	if err := g.Drop(obj, g.Player); err != nil {
		t.Fatalf("Drop() error: %v", err)
	}
	g.Observe(g.Player)

	if err := g.PickUp(obj); err != nil {
		t.Fatalf("PickUp() error: %v", err)
	}
	if len(g.Inventory) != 1 || g.Inventory[0] != obj {
		t.Fatalf("Inventory = %v, want [%v]", g.Inventory, obj)
	}
	if obj.OIdx != 0 || obj.Known != nil {
		t.Errorf("picked up object OIdx = %d, Known = %v, want 0, nil", obj.OIdx, obj.Known)
	}

	dropped, err := g.DropLast()
	if err != nil {
		t.Fatalf("DropLast() error: %v", err)
	}
	if dropped != obj || len(g.Inventory) != 0 {
		t.Errorf("DropLast() = %v, inventory %d, want %v, 0", dropped, len(g.Inventory), obj)
	}
	if !g.Known.Pile(g.Player).Contains(obj.Known) {
		t.Error("dropped object not remembered underfoot")
	}
	if err := g.CheckIntegrity(); err != nil {
		t.Errorf("CheckIntegrity() error: %v", err)
	}
}

func TestDropLast_Empty(t *testing.T) {
	g := newTestGame(t)
	obj, err := g.DropLast()
	if obj != nil || err != nil {
		t.Errorf("DropLast() = %v, %v, want nil, nil", obj, err)
	}
}

func TestKill_DropsCarriedObjects(t *testing.T) {
	g := newTestGame(t)
	loc := world.L(3, 3)
	idx, err := g.Cave.NewMonster("cave spider", loc, 2)
	if err != nil {
		t.Fatalf("NewMonster() error: %v", err)
	}
	obj := world.NewObject("gold coins", 30)
	if err := g.Carry(idx, obj); err != nil {
		t.Fatalf("Carry() error: %v", err)
	}

	if err := g.Kill(idx); err != nil {
		t.Fatalf("Kill() error: %v", err)
	}
	if g.Cave.MonsterCount() != 0 {
		t.Errorf("MonsterCount() = %d, want 0", g.Cave.MonsterCount())
	}
	if !g.Cave.Pile(loc).Contains(obj) {
		t.Error("carried object not dropped where the monster died")
	}
	if obj.OIdx == 0 || g.Cave.Object(obj.OIdx) != obj {
		t.Error("dropped object not listed")
	}
	if err := g.CheckIntegrity(); err != nil {
		t.Errorf("CheckIntegrity() error: %v", err)
	}
}
