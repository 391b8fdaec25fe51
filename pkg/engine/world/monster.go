package world

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Monster is one monster slot. An empty Race marks a free slot.
type Monster struct {
	MIdx int
	Race string
	Grid Loc
	HP   int

	// Held is the monster's pack; its objects stay in the chunk's object index
	Held *Pile
}

// Alive reports whether the slot holds a monster
func (m *Monster) Alive() bool {
	return m != nil && m.Race != ""
}

// Monster returns the monster slot at idx. Index 0 is the reserved "no
// monster" slot and returns nil, as does any index past the slot array.
// Slots above MonsterMax are never in use; callers iterate 1..MonsterMax()-1.
func (c *Chunk) Monster(idx int) *Monster {
	if idx <= 0 || idx >= len(c.monsters) {
		return nil
	}
	return &c.monsters[idx]
}

// MonsterMax returns the high-water mark of used monster slots
func (c *Chunk) MonsterMax() int {
	return c.monMax
}

// MonsterCount returns the number of live monsters
func (c *Chunk) MonsterCount() int {
	return c.monCnt
}

// MonsterAt returns the monster standing at loc, or nil
func (c *Chunk) MonsterAt(loc Loc) *Monster {
	sq := c.Square(loc)
	if sq == nil || sq.Mon == 0 {
		return nil
	}
	return c.Monster(sq.Mon)
}

// NewMonster places a monster of the given race at loc and returns its slot
// index. Freed slots are reused before the high-water mark is raised.
func (c *Chunk) NewMonster(race string, loc Loc, hp int) (int, error) {
	sq := c.Square(loc)
	if sq == nil {
		return 0, fmt.Errorf("%w: monster at %v", ErrOutOfBounds, loc)
	}
	if sq.Mon != 0 {
		return 0, fmt.Errorf("square %v already holds monster %d", loc, sq.Mon)
	}

	var idx int
	switch {
	case c.monFree.Size() > 0:
		idx = c.monFree.Pop()
	case c.monMax < len(c.monsters):
		idx = c.monMax
		c.monMax++
	default:
		return 0, fmt.Errorf("%w: %d slots in use", ErrMonsterSlots, c.monCnt)
	}

	c.monsters[idx] = Monster{
		MIdx: idx,
		Race: race,
		Grid: loc,
		HP:   hp,
	}
	sq.Mon = idx
	c.monCnt++
	return idx, nil
}

// MonsterCarry gives obj to the monster at idx and lists it in the chunk
func (c *Chunk) MonsterCarry(idx int, obj *Object, known *Chunk) error {
	mon := c.Monster(idx)
	if !mon.Alive() {
		return fmt.Errorf("no monster in slot %d", idx)
	}
	if mon.Held == nil {
		mon.Held = NewPile()
	}
	obj.Grid = Loc{}
	obj.HeldMIdx = idx
	mon.Held.Insert(obj)
	c.ListObject(obj, known)
	return nil
}

// DeleteMonster removes the monster at idx. Its carried objects are
// forgotten and delisted, the square is cleared and the slot is freed.
// The whole pack is always released; errors from individual objects are
// combined and returned after the slot is gone.
func (c *Chunk) DeleteMonster(idx int, known *Chunk) error {
	mon := c.Monster(idx)
	if !mon.Alive() {
		return nil
	}

	var err error
	for _, obj := range mon.Held.Objects() {
		mon.Held.Excise(obj)
		obj.HeldMIdx = 0
		if known != nil {
			err = multierr.Append(err, ForgetObject(known, obj))
		}
		err = multierr.Append(err, c.DelistObject(obj, known))
	}

	if sq := c.Square(mon.Grid); sq != nil && sq.Mon == idx {
		sq.Mon = 0
	}

	c.log.Debug("monster deleted", zap.Int("midx", idx), zap.String("race", mon.Race))
	*mon = Monster{}
	c.monFree.Push(idx)
	c.monCnt--
	return err
}
