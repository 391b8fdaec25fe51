package world

import "darkdepths/pkg/engine/feature"

// SquareTest is a predicate over a square of a chunk
type SquareTest func(c *Chunk, loc Loc) bool

// IsKnown reports whether the player knows the terrain at loc.
// known is the player's view of the level.
func IsKnown(known *Chunk, loc Loc) bool {
	if known == nil {
		return false
	}
	return known.InBounds(loc) && known.Feat(loc) != known.terrain.None
}

// CountFeats counts the squares around center, and under it if under is
// set, that are fully in bounds, known to the player and pass test. It also
// returns the last matching location, or the zero Loc if none matched.
func CountFeats(cave, known *Chunk, center Loc, test SquareTest, under bool) (int, Loc) {
	count := 0
	var last Loc

	for d := 0; d < 9; d++ {
		// The ninth entry is the centre
		if d == 8 && !under {
			continue
		}

		loc := Loc{X: center.X + DDXDDD[d], Y: center.Y + DDYDDD[d]}

		if !cave.InBoundsFully(loc) {
			continue
		}
		if !IsKnown(known, loc) {
			continue
		}
		if !test(cave, loc) {
			continue
		}

		count++
		last = loc
	}

	return count, last
}

// IsClosedDoor reports whether loc holds a closed door
func (c *Chunk) IsClosedDoor(loc Loc) bool {
	return c.HasFlag(loc, feature.FlagDoorClosed)
}

// IsOpenDoor reports whether loc holds an open (not broken) door
func (c *Chunk) IsOpenDoor(loc Loc) bool {
	return c.Feat(loc) == c.terrain.Open
}

// IsRubble reports whether loc holds rubble of either kind
func (c *Chunk) IsRubble(loc Loc) bool {
	return c.HasFlag(loc, feature.FlagRubble)
}

// IsVisibleTrap reports whether loc has a trap the player can see
func (c *Chunk) IsVisibleTrap(loc Loc) bool {
	sq := c.Square(loc)
	return sq != nil && sq.Trap.anyVisible()
}
