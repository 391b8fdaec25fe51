package world

import "fmt"

// Object is a thing that can lie on the floor or be carried.
// OIdx is its slot in the owning chunk's object index, 0 while unlisted.
type Object struct {
	Kind   string
	Number int

	// Grid is the floor location; the zero Loc means not on the floor
	Grid Loc

	OIdx     int
	HeldMIdx int

	// Known is the player's copy of this object, listed at the same OIdx
	// in the known chunk. Always nil on known objects themselves.
	Known *Object
}

// NewObject creates a new unlisted object
func NewObject(kind string, number int) *Object {
	if number < 1 {
		number = 1
	}
	return &Object{Kind: kind, Number: number}
}

// knownCopy returns a fresh known-object for o
func (o *Object) knownCopy() *Object {
	return &Object{
		Kind:   o.Kind,
		Number: o.Number,
		Grid:   o.Grid,
		OIdx:   o.OIdx,
	}
}

// Name returns the object as the player sees it
func (o *Object) Name() string {
	if o.Number > 1 {
		return fmt.Sprintf("%d %s", o.Number, o.Kind)
	}
	return o.Kind
}

func (o *Object) String() string {
	if o == nil {
		return "<nil>"
	}
	if o.Number > 1 {
		return fmt.Sprintf("%d %s #%d", o.Number, o.Kind, o.OIdx)
	}
	return fmt.Sprintf("%s #%d", o.Kind, o.OIdx)
}
