// Package depth defines the bands of the dungeon and how each band shapes the
// levels generated in it: room naming, room density, mineral veins, and how
// many objects and monsters a level starts with.
package depth

import (
	"github.com/leonelquinteros/gotext"
)

// Band is the thematic layer a dungeon level belongs to
type Band int

const (
	Shallows Band = iota // Cellars and old foundations
	Mines                // Worked tunnels and galleries
	Caverns              // Natural caves, magma and quartz
	Deeps                // Lava and ancient halls
)

// bandDepth is the number of levels in each band before the last
const bandDepth = 5

// MaxDepth is the deepest level that can be generated
const MaxDepth = 127

// BandOf returns the band for the given level depth. Depth 0 and below are
// treated as the first level.
func BandOf(depth int) Band {
	if depth <= 0 {
		return Shallows
	}
	b := Band((depth - 1) / bandDepth)
	if b > Deeps {
		return Deeps
	}
	return b
}

// String returns the band name
func (b Band) String() string {
	switch b {
	case Shallows:
		return "shallows"
	case Mines:
		return "mines"
	case Caverns:
		return "caverns"
	default:
		return "deeps"
	}
}

// Profile holds the generation parameters for one level
type Profile struct {
	Band Band

	// MinNodeSize is the smallest partition a room can be placed in
	MinNodeSize int

	// Veins is the number of mineral veins cut through the rock, and
	// TreasureOneIn the chance a vein square holds treasure
	Veins         int
	TreasureOneIn int

	// Lava is the number of lava pools, deeper bands only
	Lava int

	Objects  int
	Monsters int
	Traps    int
}

// ProfileFor returns the generation profile for a level depth
func ProfileFor(depth int) Profile {
	if depth <= 0 {
		depth = 1
	}
	if depth > MaxDepth {
		depth = MaxDepth
	}
	b := BandOf(depth)

	p := Profile{
		Band:          b,
		MinNodeSize:   10 - int(b),
		Veins:         2 + depth/3,
		TreasureOneIn: 10,
		Objects:       6 + depth/2,
		Monsters:      4 + depth/2,
		Traps:         1 + depth/4,
	}
	if b >= Caverns {
		p.TreasureOneIn = 6
		p.Lava = int(b) - 1
	}
	return p
}

// FlavourText returns the translated message shown on arriving in a band
func FlavourText(b Band) string {
	switch b {
	case Mines:
		return gotext.Get("LEVEL_FLAVOUR_MINES")
	case Caverns:
		return gotext.Get("LEVEL_FLAVOUR_CAVERNS")
	case Deeps:
		return gotext.Get("LEVEL_FLAVOUR_DEEPS")
	default:
		return gotext.Get("LEVEL_FLAVOUR_SHALLOWS")
	}
}

// RoomNames returns thematic room base names and adjectives for the band
func RoomNames(b Band) (bases []string, adjectives []string) {
	adjectives = []string{
		"Collapsed", "Damp", "Dusty", "Flooded",
		"Forgotten", "Narrow", "Silent", "Sunken",
	}
	switch b {
	case Shallows:
		bases = []string{
			"Cellar", "Storeroom", "Wine Vault", "Root Cellar", "Cistern",
			"Crypt", "Ossuary", "Guardroom", "Well Chamber", "Undercroft",
		}
	case Mines:
		bases = []string{
			"Gallery", "Ore Chamber", "Shaft Head", "Cart Depot", "Smelting Pit",
			"Timbered Hall", "Foreman's Room", "Powder Store", "Sump", "Adit",
		}
	case Caverns:
		bases = []string{
			"Grotto", "Vault of Pillars", "Crystal Hollow", "Fungus Cave", "Chasm",
			"Dripstone Hall", "Bat Roost", "Echoing Cave", "Pool Chamber", "Rift",
		}
	default:
		bases = []string{
			"Throne Hall", "Forge", "Lava Chamber", "Sepulchre", "Pit",
			"Obsidian Hall", "Ancient Shrine", "Sunless Court", "Ash Hall", "Deep Vault",
		}
	}
	return bases, adjectives
}
