// Package generator tests level generation: rooms, corridors, stairs and
// connectivity for each generator.
package generator

import (
	"math/rand"
	"strings"
	"testing"

	"darkdepths/pkg/engine/feature"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/depth"
)

func newTestChunk(t *testing.T, height, width int) *world.Chunk {
	t.Helper()
	c, err := world.NewChunk(height, width, world.Limits{
		Features:       feature.Default(),
		MonsterMax:     16,
		ObjectListSize: 8,
		ObjectListIncr: 8,
	}, 0)
	if err != nil {
		t.Fatalf("NewChunk(%d, %d) error: %v", height, width, err)
	}
	return c
}

func generate(t *testing.T, gen LevelGenerator, seed int64, level int) (*world.Chunk, *Layout) {
	t.Helper()
	c := newTestChunk(t, 40, 80)
	layout, err := gen.Generate(c, rand.New(rand.NewSource(seed)), depth.ProfileFor(level))
	if err != nil {
		t.Fatalf("%s.Generate() error: %v", gen.Name(), err)
	}
	return c, layout
}

// countWalkable returns the number of walkable squares in c
func countWalkable(c *world.Chunk) int {
	n := 0
	c.ForEachSquare(func(loc world.Loc, _ *world.Square) {
		if walkable(c, loc) {
			n++
		}
	})
	return n
}

func TestBSPGenerate_HasNamedRooms(t *testing.T) {
	_, layout := generate(t, BSP, 1, 1)
	if len(layout.Rooms) < 2 {
		t.Fatalf("len(Rooms) = %d, want at least 2", len(layout.Rooms))
	}
	bases, _ := depth.RoomNames(depth.Shallows)
	for _, r := range layout.Rooms {
		found := false
		for _, base := range bases {
			if strings.HasSuffix(r.Name, base) {
				found = true
			}
		}
		if !found {
			t.Errorf("room name %q not built from the shallows names", r.Name)
		}
	}
}

func TestBSPGenerate_RoomsAreMarked(t *testing.T) {
	c, layout := generate(t, BSP, 2, 1)
	for _, r := range layout.Rooms {
		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				if !c.HasInfo(world.L(x, y), world.SquareRoom) {
					t.Fatalf("square (%d,%d) of %q not marked as room", x, y, r.Name)
				}
			}
		}
	}
}

func TestBSPGenerate_OuterWallIsPermanent(t *testing.T) {
	c, _ := generate(t, BSP, 3, 1)
	perm := c.Terrain().Perm
	c.ForEachSquare(func(loc world.Loc, _ *world.Square) {
		if !c.InBoundsFully(loc) && c.Feat(loc) != perm {
			t.Fatalf("edge square %v is %d, want permanent wall", loc, c.Feat(loc))
		}
	})
}

func TestBSPGenerate_AllWalkableReachable(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		c, layout := generate(t, BSP, seed, 3)
		_, reachable := furthestFrom(c, layout.Up)
		if total := countWalkable(c); reachable != total {
			t.Errorf("seed %d: reachable squares %d != walkable squares %d", seed, reachable, total)
		}
	}
}

func TestBSPGenerate_StairsPlaced(t *testing.T) {
	c, layout := generate(t, BSP, 7, 1)
	ter := c.Terrain()
	if c.Feat(layout.Up) != ter.Less {
		t.Errorf("Feat(Up) = %d, want up staircase", c.Feat(layout.Up))
	}
	if c.Feat(layout.Down) != ter.More {
		t.Errorf("Feat(Down) = %d, want down staircase", c.Feat(layout.Down))
	}
	if layout.Up == layout.Down {
		t.Error("up and down staircases share a square")
	}
	if c.FeatCount(ter.Less) != 1 || c.FeatCount(ter.More) != 1 {
		t.Errorf("stair counts = %d up, %d down, want 1 each", c.FeatCount(ter.Less), c.FeatCount(ter.More))
	}
	if _, ok := layout.RoomAt(layout.Up); !ok {
		t.Error("up staircase is not in a room")
	}
}

func TestBSPGenerate_Deterministic(t *testing.T) {
	a, la := generate(t, BSP, 42, 4)
	b, lb := generate(t, BSP, 42, 4)
	if la.Up != lb.Up || la.Down != lb.Down || len(la.Rooms) != len(lb.Rooms) {
		t.Fatal("same seed produced different layouts")
	}
	a.ForEachSquare(func(loc world.Loc, _ *world.Square) {
		if a.Feat(loc) != b.Feat(loc) {
			t.Fatalf("same seed differs at %v", loc)
		}
	})
}

func TestBSPGenerate_DeepLevelHasLavaAndVeins(t *testing.T) {
	c, _ := generate(t, BSP, 9, 20)
	ter := c.Terrain()
	veins := c.FeatCount(ter.Magma) + c.FeatCount(ter.Quartz) +
		c.FeatCount(ter.MagmaK) + c.FeatCount(ter.QuartzK)
	if veins == 0 {
		t.Error("no mineral veins on a deep level")
	}
	if c.FeatCount(ter.Lava) == 0 {
		t.Error("no lava on a deep level")
	}
}

func TestBSPGenerate_TooSmall(t *testing.T) {
	c := newTestChunk(t, 5, 5)
	if _, err := BSP.Generate(c, rand.New(rand.NewSource(1)), depth.ProfileFor(1)); err == nil {
		t.Error("Generate() on a 5x5 chunk succeeded, want error")
	}
}

func TestCavernGenerate_Reachable(t *testing.T) {
	c, layout := generate(t, Cavern, 11, 12)
	if c.Feat(layout.Up) != c.Terrain().Less {
		t.Errorf("Feat(Up) = %d, want up staircase", c.Feat(layout.Up))
	}
	_, reachable := furthestFrom(c, layout.Up)
	if total := countWalkable(c); reachable != total {
		t.Errorf("reachable squares %d != walkable squares %d", reachable, total)
	}
	if len(layout.Rooms) != 0 {
		t.Errorf("len(Rooms) = %d, want 0 for a cavern", len(layout.Rooms))
	}
}

func TestForBand(t *testing.T) {
	if ForBand(depth.Caverns) != Cavern {
		t.Error("ForBand(Caverns) is not the cavern generator")
	}
	if ForBand(depth.Shallows) != DefaultGenerator {
		t.Error("ForBand(Shallows) is not the default generator")
	}
}
