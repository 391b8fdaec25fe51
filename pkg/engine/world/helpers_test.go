package world

import (
	"testing"

	"darkdepths/pkg/engine/feature"
)

var testFeatures = feature.Default()

func testLimits() Limits {
	return Limits{
		Features:       testFeatures,
		MonsterMax:     16,
		ObjectListSize: 8,
		ObjectListIncr: 8,
	}
}

// newTestChunk returns a chunk walled with permanent rock and floored inside
func newTestChunk(t *testing.T, height, width int) *Chunk {
	t.Helper()
	c, err := NewChunk(height, width, testLimits(), 100)
	if err != nil {
		t.Fatalf("NewChunk(%d, %d) error: %v", height, width, err)
	}
	ter := c.Terrain()
	c.ForEachSquare(func(loc Loc, sq *Square) {
		if c.InBoundsFully(loc) {
			c.SetFeat(loc, ter.Floor)
		} else {
			c.SetFeat(loc, ter.Perm)
		}
	})
	return c
}

// newTestKnown returns an unexplored known chunk matching c
func newTestKnown(t *testing.T, c *Chunk) *Chunk {
	t.Helper()
	k, err := NewChunk(c.Height(), c.Width(), testLimits(), c.CreatedAt)
	if err != nil {
		t.Fatalf("NewChunk(known) error: %v", err)
	}
	return k
}

// revealAll copies the whole map of c into known
func revealAll(c, known *Chunk) {
	c.ForEachSquare(func(loc Loc, _ *Square) {
		ObserveSquare(c, known, loc)
	})
}
