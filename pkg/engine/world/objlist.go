package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ObjMax returns the capacity of the object index. Slots 1..ObjMax()-1 are
// available to ListObject; slot ObjMax() is only filled by growth.
func (c *Chunk) ObjMax() int {
	return c.objMax
}

// Object returns the object listed at idx, or nil
func (c *Chunk) Object(idx int) *Object {
	if idx <= 0 || idx >= len(c.objects) {
		return nil
	}
	return c.objects[idx]
}

// ForEachObject calls fn for every listed object in index order
func (c *Chunk) ForEachObject(fn func(idx int, obj *Object)) {
	for i := 1; i < len(c.objects); i++ {
		if c.objects[i] != nil {
			fn(i, c.objects[i])
		}
	}
}

// ListObject enters obj in the chunk's object index. Listing nil or an
// object that is already listed does nothing.
//
// known is the player's view of c when c is the active level, otherwise nil.
// Slots where known still holds an object are never reused, and when the
// index grows the known index grows with it.
func (c *Chunk) ListObject(obj *Object, known *Chunk) {
	if obj == nil {
		return
	}
	for i := 1; i < c.objMax; i++ {
		if c.objects[i] == obj {
			return
		}
	}

	// Put objects in holes in the object list
	for i := 1; i < c.objMax; i++ {
		if known != nil && known.Object(i) != nil {
			continue
		}
		if c.objects[i] == nil {
			c.objects[i] = obj
			obj.OIdx = i
			return
		}
	}

	// Extend the list
	oldMax := c.objMax
	c.objects[oldMax] = obj
	obj.OIdx = oldMax
	c.objects = append(c.objects, make([]*Object, c.objIncr)...)
	c.objMax += c.objIncr

	if known != nil && known.objMax < c.objMax {
		known.objects = append(known.objects, make([]*Object, c.objMax+1-len(known.objects))...)
		for i := known.objMax; i <= c.objMax; i++ {
			known.objects[i] = nil
		}
		known.objMax = c.objMax
	}

	c.log.Debug("object list extended",
		zap.Int("old_max", oldMax),
		zap.Int("new_max", c.objMax),
		zap.Bool("known_synced", known != nil))
}

// DelistObject removes obj from the chunk's object index. Delisting an
// object that was never listed does nothing.
//
// When c is the active level (known != nil) and the known chunk still lists
// the player's copy of obj at the same index, obj stays listed until the copy
// is forgotten. The copy found there must be obj.Known.
func (c *Chunk) DelistObject(obj *Object, known *Chunk) error {
	if obj == nil || obj.OIdx == 0 {
		return nil
	}
	if c.Object(obj.OIdx) != obj {
		return fmt.Errorf("%w: %v is not at index %d", ErrObjectList, obj, obj.OIdx)
	}

	// Don't delist an actual object if it still has a listed known object
	if known != nil {
		if kobj := known.Object(obj.OIdx); kobj != nil {
			if kobj != obj.Known {
				return fmt.Errorf("%w: known index %d holds %v, not the copy of %v",
					ErrObjectList, obj.OIdx, kobj, obj)
			}
			return nil
		}
	}

	c.objects[obj.OIdx] = nil
	obj.OIdx = 0
	return nil
}

// CheckObjectLists verifies that the object indexes of a chunk and its known
// chunk agree with each other and with the object piles on the map.
// Every violation found is reported.
func CheckObjectLists(c, known *Chunk) error {
	var err error
	if c.objMax != known.objMax {
		err = multierr.Append(err, fmt.Errorf("%w: capacity %d, known capacity %d",
			ErrObjectList, c.objMax, known.objMax))
	}

	seen := mapset.New[*Object]()
	limit := min(c.objMax, known.objMax)
	for i := 0; i < limit; i++ {
		obj := c.objects[i]
		kobj := known.objects[i]

		if obj != nil {
			if seen.Has(obj) {
				err = multierr.Append(err, fmt.Errorf("%w: %v listed twice", ErrObjectList, obj))
			}
			seen.Put(obj)
			if obj.OIdx != i {
				err = multierr.Append(err, fmt.Errorf("%w: index %d holds %v", ErrObjectList, i, obj))
			}
			if !obj.Grid.IsZero() && !c.Pile(obj.Grid).Contains(obj) {
				err = multierr.Append(err, fmt.Errorf("%w: %v not in pile at %v", ErrObjectList, obj, obj.Grid))
			}
		}

		if kobj != nil {
			if obj == nil {
				err = multierr.Append(err, fmt.Errorf("%w: known index %d has no real object", ErrObjectList, i))
				continue
			}
			if kobj != obj.Known {
				err = multierr.Append(err, fmt.Errorf("%w: known index %d does not hold the copy of %v", ErrObjectList, i, obj))
			}
			if !kobj.Grid.IsZero() && !known.Pile(kobj.Grid).Contains(kobj) {
				err = multierr.Append(err, fmt.Errorf("%w: known %v not in pile at %v", ErrObjectList, kobj, kobj.Grid))
			}
			if kobj.OIdx != i {
				err = multierr.Append(err, fmt.Errorf("%w: known index %d holds known %v", ErrObjectList, i, kobj))
			}
		}
	}
	return err
}
