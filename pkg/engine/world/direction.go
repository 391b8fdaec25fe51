package world

// Direction is a keypad direction: 8 is north, 2 is south, 5 is "here".
type Direction int

// Direction constants, numbered like the numeric keypad
const (
	DirNone Direction = iota
	SouthWest
	South
	SouthEast
	West
	Here
	East
	NorthWest
	North
	NorthEast
)

// DDD lists the directions in the order adjacency scans visit them:
// the four cardinals, the four diagonals, then the centre.
var DDD = [9]Direction{South, North, East, West, SouthEast, SouthWest, NorthEast, NorthWest, Here}

// DDX and DDY convert a keypad direction into an offset
var (
	DDX = [10]int{0, -1, 0, 1, -1, 0, 1, -1, 0, 1}
	DDY = [10]int{0, 1, 1, 1, 0, 0, 0, -1, -1, -1}
)

// DDXDDD and DDYDDD hold DDX[DDD[i]] and DDY[DDD[i]]
var (
	DDXDDD = [9]int{0, 0, 1, -1, 1, -1, 1, -1, 0}
	DDYDDD = [9]int{1, -1, 0, 0, 1, 1, -1, -1, 0}
)

// AllDirections returns the eight compass directions in scan order
func AllDirections() []Direction {
	dirs := DDD
	return dirs[:8]
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	case Here:
		return "Here"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight compass directions
func (d Direction) IsValid() bool {
	return d >= SouthWest && d <= NorthEast && d != Here
}

// Delta returns the coordinate offset for this direction
func (d Direction) Delta() Loc {
	if d < DirNone || d > NorthEast {
		return Loc{}
	}
	return Loc{X: DDX[d], Y: DDY[d]}
}
