// Package generator carves dungeon levels into freshly allocated chunks.
package generator

import (
	"errors"
	"math/rand"

	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/depth"
)

// ErrGeneration is returned when a level could not be carved
var ErrGeneration = errors.New("level generation failed")

// LevelGenerator is an interface for level generation algorithms
type LevelGenerator interface {
	Generate(c *world.Chunk, rng *rand.Rand, p depth.Profile) (*Layout, error)
	Name() string
}

// Available generators
var (
	Cavern = &CavernGenerator{}
	BSP    = &BSPGenerator{}
)

// DefaultGenerator is the default level generator
var DefaultGenerator LevelGenerator = BSP

// ForBand picks the generator suited to a band
func ForBand(b depth.Band) LevelGenerator {
	if b == depth.Caverns {
		return Cavern
	}
	return DefaultGenerator
}

// Room is a named rectangle of room squares
type Room struct {
	Name                string
	X, Y, Width, Height int
}

// Center returns the middle square of the room
func (r Room) Center() world.Loc {
	return world.L(r.X+r.Width/2, r.Y+r.Height/2)
}

// Contains reports whether loc lies inside the room
func (r Room) Contains(loc world.Loc) bool {
	return loc.X >= r.X && loc.X < r.X+r.Width && loc.Y >= r.Y && loc.Y < r.Y+r.Height
}

// Layout describes a generated level
type Layout struct {
	Rooms []Room

	// Up is the up staircase where the player arrives, Down the down
	// staircase furthest from it
	Up   world.Loc
	Down world.Loc
}

// RoomAt returns the room containing loc
func (l *Layout) RoomAt(loc world.Loc) (Room, bool) {
	for _, r := range l.Rooms {
		if r.Contains(loc) {
			return r, true
		}
	}
	return Room{}, false
}
