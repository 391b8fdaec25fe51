package world

// Trap is a trap on a square. A square owns a chain of traps through Next.
type Trap struct {
	Kind    string
	Grid    Loc
	Visible bool

	Next *Trap
}

// NewTrap creates a hidden trap at the given location
func NewTrap(kind string, grid Loc) *Trap {
	return &Trap{
		Kind: kind,
		Grid: grid,
	}
}

// Reveal makes the trap visible, returns true if it was hidden before
func (t *Trap) Reveal() bool {
	if t.Visible {
		return false
	}
	t.Visible = true
	return true
}

// anyVisible reports whether any trap in the chain starting at t is visible
func (t *Trap) anyVisible() bool {
	for ; t != nil; t = t.Next {
		if t.Visible {
			return true
		}
	}
	return false
}

// freeTraps unlinks a trap chain
func freeTraps(t *Trap) {
	for t != nil {
		next := t.Next
		t.Next = nil
		t = next
	}
}
