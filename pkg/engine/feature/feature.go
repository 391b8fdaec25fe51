// Package feature provides the terrain feature registry.
// Features are loaded once from a YAML table and looked up by name; the ids
// stay fixed for the lifetime of the loaded game data.
package feature

import (
	"strings"

	"github.com/leonelquinteros/gotext"
)

// translate looks up feature names in the loaded locale. A function variable
// keeps go vet's non-constant format string check quiet.
var translate = gotext.Get

// Flag is a terrain property bit
type Flag uint32

// Terrain flags
const (
	FlagLOS Flag = 1 << iota
	FlagProject
	FlagPassable
	FlagFloor
	FlagWall
	FlagRock
	FlagDoor
	FlagDoorClosed
	FlagStair
	FlagRubble
	FlagMagma
	FlagQuartz
	FlagGold
	FlagPermanent
	FlagFiery
	FlagTrap
)

var flagNames = map[string]Flag{
	"LOS":         FlagLOS,
	"PROJECT":     FlagProject,
	"PASSABLE":    FlagPassable,
	"FLOOR":       FlagFloor,
	"WALL":        FlagWall,
	"ROCK":        FlagRock,
	"DOOR":        FlagDoor,
	"DOOR_CLOSED": FlagDoorClosed,
	"STAIR":       FlagStair,
	"RUBBLE":      FlagRubble,
	"MAGMA":       FlagMagma,
	"QUARTZ":      FlagQuartz,
	"GOLD":        FlagGold,
	"PERMANENT":   FlagPermanent,
	"FIERY":       FlagFiery,
	"TRAP":        FlagTrap,
}

// ParseFlag converts a flag name from the terrain table into a Flag
func ParseFlag(name string) (Flag, bool) {
	f, ok := flagNames[strings.ToUpper(strings.TrimSpace(name))]
	return f, ok
}

// Feature is one terrain type
type Feature struct {
	Idx   int
	Name  string
	Glyph rune
	Flags Flag
}

// Has reports whether the feature carries every bit in f
func (ft *Feature) Has(f Flag) bool {
	return ft != nil && ft.Flags&f == f
}

// DisplayName returns the translated name of the feature.
// Untranslated names are returned unchanged.
func (ft *Feature) DisplayName() string {
	if ft == nil {
		return ""
	}
	return translate(ft.Name)
}
