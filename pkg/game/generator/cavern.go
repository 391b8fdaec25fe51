package generator

import (
	"math/rand"

	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/depth"
)

// CavernGenerator generates open cave systems by walking tunnels in random
// directions with a branching probability
type CavernGenerator struct{}

// Name returns the name of this generator
func (g *CavernGenerator) Name() string {
	return "Cavern"
}

var cardinals = []world.Direction{world.North, world.East, world.South, world.West}

// Generate carves a cave system into c
func (g *CavernGenerator) Generate(c *world.Chunk, rng *rand.Rand, p depth.Profile) (*Layout, error) {
	fillRock(c)

	start := world.L(c.Width()/2, c.Height()/2)

	// Tunnel length scales with the level and with depth
	span := min(c.Width(), c.Height())
	minDist := 2 + span/10
	maxDist := minDist + 2 + int(p.Band)*2

	// Deeper caves branch more
	branchProb := float32(0.3) + float32(p.Band)*0.05

	for _, dir := range cardinals {
		g.walk(rng, c, start, dir, branchProb, minDist, maxDist)
	}

	// Extra tunnels from already open ground near the centre
	floor := c.Terrain().Floor
	for i := 0; i < 2+int(p.Band); i++ {
		from, ok := c.Scatter(rng, start, 2, false)
		if ok && c.Feat(from) == floor {
			g.walk(rng, c, from, cardinals[rng.Intn(len(cardinals))], branchProb, minDist, maxDist)
		}
	}

	cutVeins(rng, c, p)

	layout := &Layout{Up: start}
	down, err := placeStairs(c, start)
	if err != nil {
		return nil, err
	}
	layout.Down = down

	if err := placeTraps(rng, c, p); err != nil {
		return nil, err
	}
	return layout, nil
}

// walk carves a tunnel from loc in the given direction, branching at random.
// It returns the last square carved.
func (g *CavernGenerator) walk(rng *rand.Rand, c *world.Chunk, loc world.Loc, dir world.Direction, branchProb float32, minDist, maxDist int) world.Loc {
	delta := dir.Delta()
	distance := minDist + rng.Intn(maxDist-minDist+1)

	for segment := 0; segment < distance; segment++ {
		carveFloor(c, loc)

		// Stop at the outer wall
		next := loc.Add(delta)
		if !c.InBoundsFully(next) {
			return loc
		}

		if branchProb > 0 && rng.Float32() < branchProb {
			g.walk(rng, c, loc, cardinals[rng.Intn(len(cardinals))], branchProb-.1, minDist, maxDist)
		}

		loc = next
	}

	carveFloor(c, loc)
	return loc
}
