package setup

import (
	"errors"
	"testing"

	"darkdepths/pkg/engine/feature"
	"darkdepths/pkg/engine/world"
)

// newCorridor builds a 5x9 chunk of granite with a corridor along row 2
func newCorridor(t *testing.T) *world.Chunk {
	t.Helper()
	c, err := world.NewChunk(5, 9, world.Limits{
		Features:       feature.Default(),
		MonsterMax:     4,
		ObjectListSize: 4,
		ObjectListIncr: 4,
	}, 0)
	if err != nil {
		t.Fatalf("NewChunk() error: %v", err)
	}
	ter := c.Terrain()
	c.ForEachSquare(func(loc world.Loc, _ *world.Square) {
		c.SetFeat(loc, ter.Granite)
	})
	for x := 1; x < 8; x++ {
		c.SetFeat(world.L(x, 2), ter.Floor)
	}
	return c
}

func TestCheckSolvable_OpenCorridor(t *testing.T) {
	c := newCorridor(t)
	if err := CheckSolvable(c, world.L(1, 2), world.L(7, 2)); err != nil {
		t.Errorf("CheckSolvable() error: %v", err)
	}
}

func TestCheckSolvable_DoorsAndRubbleCount(t *testing.T) {
	c := newCorridor(t)
	c.SetFeat(world.L(3, 2), c.Terrain().Closed)
	c.SetFeat(world.L(5, 2), c.Terrain().Rubble)
	if err := CheckSolvable(c, world.L(1, 2), world.L(7, 2)); err != nil {
		t.Errorf("CheckSolvable() through door and rubble error: %v", err)
	}
}

func TestCheckSolvable_Walled(t *testing.T) {
	c := newCorridor(t)
	c.SetFeat(world.L(4, 2), c.Terrain().Granite)
	err := CheckSolvable(c, world.L(1, 2), world.L(7, 2))
	if !errors.Is(err, ErrUnsolvable) {
		t.Errorf("CheckSolvable() = %v, want ErrUnsolvable", err)
	}
}

func TestReachable_Diagonal(t *testing.T) {
	c := newCorridor(t)
	c.SetFeat(world.L(4, 2), c.Terrain().Granite)
	c.SetFeat(world.L(4, 1), c.Terrain().Granite)
	c.SetFeat(world.L(4, 3), c.Terrain().Floor)
	r := Reachable(c, world.L(1, 2), nil)
	if !r.Has(world.L(7, 2)) {
		t.Error("diagonal step around a pillar not followed")
	}
}

func TestReachable_Blocked(t *testing.T) {
	c := newCorridor(t)
	blocked := func(l world.Loc) bool { return l == world.L(4, 2) }
	r := Reachable(c, world.L(1, 2), blocked)
	if r.Has(world.L(5, 2)) {
		t.Error("BFS passed through a blocked square")
	}
	if r.Size() != 3 {
		t.Errorf("reachable squares = %d, want 3", r.Size())
	}
}

func TestUnreachableObjects(t *testing.T) {
	c := newCorridor(t)
	c.SetFeat(world.L(4, 2), c.Terrain().Granite)

	near := world.NewObject("flask of oil", 1)
	far := world.NewObject("dagger", 1)
	if err := c.FloorCarry(near, world.L(2, 2), nil); err != nil {
		t.Fatalf("FloorCarry() error: %v", err)
	}
	if err := c.FloorCarry(far, world.L(6, 2), nil); err != nil {
		t.Fatalf("FloorCarry() error: %v", err)
	}

	got := UnreachableObjects(c, world.L(1, 2))
	if len(got) != 1 || got[0] != far {
		t.Errorf("UnreachableObjects() = %v, want [%v]", got, far)
	}
}
