package world

import "fmt"

// Loc is a grid coordinate. X grows east, Y grows south.
// The zero Loc is never playable and marks "not on the map".
type Loc struct {
	X int
	Y int
}

// L is shorthand for Loc{X: x, Y: y}
func L(x, y int) Loc {
	return Loc{X: x, Y: y}
}

// Add returns l offset by d
func (l Loc) Add(d Loc) Loc {
	return Loc{X: l.X + d.X, Y: l.Y + d.Y}
}

// IsZero reports whether l is the zero location
func (l Loc) IsZero() bool {
	return l.X == 0 && l.Y == 0
}

func (l Loc) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// Distance approximates the distance between two locations: the longer
// axis plus half the shorter one.
func Distance(a, b Loc) int {
	dy := abs(b.Y - a.Y)
	dx := abs(b.X - a.X)
	if dy > dx {
		return dy + (dx >> 1)
	}
	return dx + (dy >> 1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
