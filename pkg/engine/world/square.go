package world

// SquareFlag is a bit in a square's info set
type SquareFlag uint16

// Square info flags
const (
	SquareMark     SquareFlag = 1 << iota // memorized by the player
	SquareGlow                            // self-lit
	SquareVault                           // part of a vault
	SquareRoom                            // part of a room
	SquareSeen                            // seen this turn
	SquareView                            // in view this turn
	SquareWasSeen                         // seen last turn
	SquareFeel                            // counted towards the level feeling
	SquareTrap                            // has a trap
	SquareInvis                           // has an undetected trap
	SquareNoStairs                        // stairs may not be placed here
	SquareProject                         // projectable from the player
)

// Square is one grid cell of a chunk
type Square struct {
	Feat int
	Info SquareFlag

	// Mon is the index of the monster standing here, 0 for none
	Mon int

	Trap *Trap
	Obj  *Pile
}

// Has reports whether every bit in f is set
func (s *Square) Has(f SquareFlag) bool {
	return s.Info&f == f
}
