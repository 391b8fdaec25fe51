package world

import "darkdepths/pkg/engine/feature"

// LOS reports whether there is an unobstructed line of sight from one
// location to another. Uses Bresenham's line algorithm; every square strictly
// between the endpoints must carry the LOS terrain flag.
func (c *Chunk) LOS(from, to Loc) bool {
	if !c.InBounds(from) || !c.InBounds(to) {
		return false
	}

	dy := to.Y - from.Y
	dx := to.X - from.X
	absDy := abs(dy)
	absDx := abs(dx)

	// Adjacent or identical squares always see each other
	if absDy < 2 && absDx < 2 {
		return true
	}

	stepY := sign(dy)
	stepX := sign(dx)
	x, y := from.X, from.Y

	if absDy >= absDx {
		// Step along rows
		err := 2*absDx - absDy
		for {
			y += stepY
			if err > 0 {
				x += stepX
				err -= 2 * absDy
			}
			err += 2 * absDx
			if y == to.Y {
				return true
			}
			if !c.HasFlag(Loc{X: x, Y: y}, feature.FlagLOS) {
				return false
			}
		}
	}

	// Step along columns
	err := 2*absDy - absDx
	for {
		x += stepX
		if err > 0 {
			y += stepY
			err -= 2 * absDx
		}
		err += 2 * absDy
		if x == to.X {
			return true
		}
		if !c.HasFlag(Loc{X: x, Y: y}, feature.FlagLOS) {
			return false
		}
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
