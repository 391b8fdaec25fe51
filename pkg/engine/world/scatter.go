package world

import (
	"math/rand"

	"go.uber.org/zap"
)

// ScatterTries bounds the sampling loop in Scatter
const ScatterTries = 1000000

// Rand is the random source Scatter draws from; *rand.Rand satisfies it
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int {
	return rand.Intn(n)
}

// randSpread returns a uniform value in [a-d, a+d]
func randSpread(rng Rand, a, d int) int {
	if d <= 0 {
		return a
	}
	return a + rng.Intn(2*d+1) - d
}

// Scatter picks a random location within distance d of origin that is fully
// in bounds and, if needLOS is set, in line of sight of origin.
//
// The search gives up after ScatterTries samples and returns the last sample
// anyway; the second result reports whether that location met the criteria.
// A nil rng uses the math/rand global source.
func (c *Chunk) Scatter(rng Rand, origin Loc, d int, needLOS bool) (Loc, bool) {
	if rng == nil {
		rng = globalRand{}
	}

	var loc Loc
	for tries := 0; tries < ScatterTries; tries++ {
		loc = Loc{
			X: randSpread(rng, origin.X, d),
			Y: randSpread(rng, origin.Y, d),
		}

		// Ignore annoying locations
		if !c.InBoundsFully(loc) {
			continue
		}

		// The sample square is wider than the acceptance circle
		if d > 1 && Distance(origin, loc) > d {
			continue
		}

		if !needLOS || c.LOS(origin, loc) {
			return loc, true
		}
	}

	c.log.Debug("scatter exhausted",
		zap.Stringer("origin", origin),
		zap.Int("distance", d),
		zap.Bool("need_los", needLOS),
		zap.Stringer("last", loc))
	return loc, false
}
