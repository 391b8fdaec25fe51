package generator

import (
	"fmt"
	"math/rand"

	"darkdepths/pkg/engine/feature"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/depth"
)

// Trap kinds placed in corridors
var trapKinds = []string{"trap door", "pit", "rune of teleportation", "dart trap"}

// fillRock fills the chunk with granite inside a permanent wall ring
func fillRock(c *world.Chunk) {
	ter := c.Terrain()
	c.ForEachSquare(func(loc world.Loc, _ *world.Square) {
		if c.InBoundsFully(loc) {
			c.SetFeat(loc, ter.Granite)
		} else {
			c.SetFeat(loc, ter.Perm)
		}
	})
}

// isGranite reports whether loc holds plain granite
func isGranite(c *world.Chunk, loc world.Loc) bool {
	return c.Feat(loc) == c.Terrain().Granite
}

// carveFloor turns granite into floor, leaving anything else alone
func carveFloor(c *world.Chunk, loc world.Loc) {
	if c.InBoundsFully(loc) && isGranite(c, loc) {
		c.SetFeat(loc, c.Terrain().Floor)
	}
}

// walkable reports whether a creature can get through loc, opening doors
// and clearing rubble as needed
func walkable(c *world.Chunk, loc world.Loc) bool {
	return c.HasFlag(loc, feature.FlagPassable) ||
		c.HasFlag(loc, feature.FlagDoor) ||
		c.HasFlag(loc, feature.FlagRubble)
}

// isCorridor reports whether loc is floor outside any room
func isCorridor(c *world.Chunk, loc world.Loc) bool {
	return c.Feat(loc) == c.Terrain().Floor && !c.HasInfo(loc, world.SquareRoom)
}

// placeDoors puts doors where corridors meet rooms
func placeDoors(rng *rand.Rand, c *world.Chunk) {
	ter := c.Terrain()
	c.ForEachSquare(func(loc world.Loc, _ *world.Square) {
		if !c.InBoundsFully(loc) || !isCorridor(c, loc) || !isDoorway(c, loc) {
			return
		}
		if rng.Intn(3) != 0 {
			return
		}
		switch k := rng.Intn(100); {
		case k < 50:
			c.SetFeat(loc, ter.Closed)
		case k < 75:
			c.SetFeat(loc, ter.Open)
		case k < 88:
			c.SetFeat(loc, ter.Secret)
		default:
			c.SetFeat(loc, ter.Broken)
		}
	})
}

// isDoorway reports whether loc is a one-wide gap leading into a room
func isDoorway(c *world.Chunk, loc world.Loc) bool {
	n := loc.Add(world.North.Delta())
	s := loc.Add(world.South.Delta())
	e := loc.Add(world.East.Delta())
	w := loc.Add(world.West.Delta())

	wall := func(l world.Loc) bool { return c.HasFlag(l, feature.FlagWall) }
	room := func(l world.Loc) bool { return c.HasInfo(l, world.SquareRoom) }

	if wall(e) && wall(w) && !wall(n) && !wall(s) {
		return room(n) != room(s)
	}
	if wall(n) && wall(s) && !wall(e) && !wall(w) {
		return room(e) != room(w)
	}
	return false
}

// cutVeins runs mineral veins through the granite
func cutVeins(rng *rand.Rand, c *world.Chunk, p depth.Profile) {
	ter := c.Terrain()
	dirs := world.AllDirections()

	for i := 0; i < p.Veins; i++ {
		vein, rich := ter.Magma, ter.MagmaK
		if rng.Intn(2) == 0 {
			vein, rich = ter.Quartz, ter.QuartzK
		}

		loc := world.L(1+rng.Intn(c.Width()-2), 1+rng.Intn(c.Height()-2))
		length := 10 + rng.Intn(21)
		for step := 0; step < length; step++ {
			if isGranite(c, loc) {
				if p.TreasureOneIn > 0 && rng.Intn(p.TreasureOneIn) == 0 {
					c.SetFeat(loc, rich)
				} else {
					c.SetFeat(loc, vein)
				}
			}
			next := loc.Add(dirs[rng.Intn(len(dirs))].Delta())
			if c.InBoundsFully(next) {
				loc = next
			}
		}
	}
}

// poolLava floods part of some rooms with lava, sparing the given squares
func poolLava(rng *rand.Rand, c *world.Chunk, p depth.Profile, rooms []Room, spare ...world.Loc) {
	if len(rooms) == 0 {
		return
	}
	ter := c.Terrain()
	for i := 0; i < p.Lava; i++ {
		r := rooms[rng.Intn(len(rooms))]
		center := r.Center()
		for j := 0; j < 4; j++ {
			loc, ok := c.Scatter(rng, center, 1, false)
			if !ok || !r.Contains(loc) || isSpared(loc, spare) {
				continue
			}
			if c.Feat(loc) == ter.Floor {
				c.SetFeat(loc, ter.Lava)
			}
		}
	}
}

func isSpared(loc world.Loc, spare []world.Loc) bool {
	for _, s := range spare {
		if s == loc {
			return true
		}
	}
	return false
}

// randomCorridor picks a random corridor square, or false if none was found
func randomCorridor(rng *rand.Rand, c *world.Chunk) (world.Loc, bool) {
	for tries := 0; tries < 1000; tries++ {
		loc := world.L(1+rng.Intn(c.Width()-2), 1+rng.Intn(c.Height()-2))
		if isCorridor(c, loc) {
			return loc, true
		}
	}
	return world.Loc{}, false
}

// placeTraps hides traps in corridors, and drops a little rubble
func placeTraps(rng *rand.Rand, c *world.Chunk, p depth.Profile) error {
	ter := c.Terrain()
	for i := 0; i < p.Traps; i++ {
		loc, ok := randomCorridor(rng, c)
		if !ok {
			break
		}
		kind := trapKinds[rng.Intn(len(trapKinds))]
		if _, err := c.PlaceTrap(loc, kind, rng.Intn(3) == 0); err != nil {
			return fmt.Errorf("%w: %v", ErrGeneration, err)
		}
	}
	for i := 0; i < p.Traps; i++ {
		loc, ok := randomCorridor(rng, c)
		if !ok || c.HasInfo(loc, world.SquareTrap) {
			continue
		}
		if rng.Intn(2) == 0 {
			c.SetFeat(loc, ter.Rubble)
		} else {
			c.SetFeat(loc, ter.PassRubble)
		}
	}
	return nil
}

// furthestFrom finds the floor square with the longest path from start,
// preferring room squares. It also returns how many squares are reachable.
func furthestFrom(c *world.Chunk, start world.Loc) (world.Loc, int) {
	type locDist struct {
		loc  world.Loc
		dist int
	}

	floor := c.Terrain().Floor
	visited := map[world.Loc]bool{start: true}
	queue := []locDist{{start, 0}}
	furthest := start
	maxDist := -1

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		inRoom := c.HasInfo(current.loc, world.SquareRoom)
		if c.Feat(current.loc) == floor && (current.dist > maxDist ||
			(current.dist == maxDist && inRoom && !c.HasInfo(furthest, world.SquareRoom))) {
			maxDist = current.dist
			furthest = current.loc
		}

		for _, dir := range []world.Direction{world.North, world.East, world.South, world.West} {
			next := current.loc.Add(dir.Delta())
			if !visited[next] && c.InBoundsFully(next) && walkable(c, next) {
				visited[next] = true
				queue = append(queue, locDist{next, current.dist + 1})
			}
		}
	}

	return furthest, len(visited)
}

// placeStairs puts the up staircase at up and the down staircase as far
// from it as the level allows
func placeStairs(c *world.Chunk, up world.Loc) (world.Loc, error) {
	if !walkable(c, up) {
		return world.Loc{}, fmt.Errorf("%w: start %v is not walkable", ErrGeneration, up)
	}
	down, _ := furthestFrom(c, up)
	if down == up {
		return world.Loc{}, fmt.Errorf("%w: nowhere to put the down staircase", ErrGeneration)
	}
	ter := c.Terrain()
	c.SetFeat(up, ter.Less)
	c.SetFeat(down, ter.More)
	return down, nil
}
