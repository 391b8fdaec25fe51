package world

import "fmt"

// FloorCarry drops obj on the square at loc and lists it in the chunk.
// known is the player's view when c is the active level, otherwise nil.
func (c *Chunk) FloorCarry(obj *Object, loc Loc, known *Chunk) error {
	sq := c.Square(loc)
	if sq == nil {
		return fmt.Errorf("%w: drop %v at %v", ErrOutOfBounds, obj, loc)
	}
	if sq.Obj == nil {
		sq.Obj = NewPile()
	}
	sq.Obj.Insert(obj)
	obj.Grid = loc
	obj.HeldMIdx = 0
	c.ListObject(obj, known)
	return nil
}

// FloorExcise lifts obj off its square and delists it
func (c *Chunk) FloorExcise(obj *Object, known *Chunk) error {
	if obj.Grid.IsZero() {
		return nil
	}
	sq := c.Square(obj.Grid)
	if sq == nil || !sq.Obj.Excise(obj) {
		return fmt.Errorf("%w: %v not in pile at %v", ErrObjectList, obj, obj.Grid)
	}
	if sq.Obj.Len() == 0 {
		sq.Obj = nil
	}
	obj.Grid = Loc{}
	return c.DelistObject(obj, known)
}
