// Package setup checks freshly generated levels before play starts.
package setup

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"darkdepths/pkg/engine/feature"
	"darkdepths/pkg/engine/world"
)

// ErrUnsolvable is returned when the down staircase cannot be reached
var ErrUnsolvable = errors.New("level unsolvable")

// Walkable reports whether the player can eventually cross loc: it is
// passable now, or a door or rubble that can be opened or cleared.
func Walkable(c *world.Chunk, loc world.Loc) bool {
	return c.HasFlag(loc, feature.FlagPassable) ||
		c.HasFlag(loc, feature.FlagDoor) ||
		c.HasFlag(loc, feature.FlagRubble)
}

// Reachable returns every walkable square reachable from start by BFS in
// all eight directions. Squares for which blocked returns true are treated
// as walls; blocked may be nil.
func Reachable(c *world.Chunk, start world.Loc, blocked func(world.Loc) bool) *mapset.Set[world.Loc] {
	reachable := mapset.New[world.Loc]()
	queue := []world.Loc{start}
	dirs := world.AllDirections()

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if reachable.Has(current) || !c.InBoundsFully(current) || !Walkable(c, current) {
			continue
		}
		if blocked != nil && blocked(current) {
			continue
		}

		reachable.Put(current)

		for _, d := range dirs {
			n := current.Add(d.Delta())
			if !reachable.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	return &reachable
}

// CheckSolvable verifies the down staircase can be reached from the up one
func CheckSolvable(c *world.Chunk, up, down world.Loc) error {
	if !Reachable(c, up, nil).Has(down) {
		return fmt.Errorf("%w: no path from %v to %v", ErrUnsolvable, up, down)
	}
	return nil
}

// UnreachableObjects returns the floor objects the player could never
// walk to from start
func UnreachableObjects(c *world.Chunk, start world.Loc) []*world.Object {
	reachable := Reachable(c, start, nil)

	var out []*world.Object
	c.ForEachObject(func(_ int, obj *world.Object) {
		if obj.HeldMIdx != 0 || obj.Grid.IsZero() {
			return
		}
		if !reachable.Has(obj.Grid) {
			out = append(out, obj)
		}
	})
	return out
}
