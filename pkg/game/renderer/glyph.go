package renderer

import (
	"strings"

	"darkdepths/pkg/engine/feature"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/state"
)

// Icons that do not come from the terrain table
const (
	PlayerIcon = '@'
	IconPile   = '&'
	IconTrap   = '^'
	IconVoid   = ' '
)

// objectIcons maps a word in an object's kind to its icon
var objectIcons = []struct {
	word string
	icon rune
}{
	{"gold", '$'},
	{"potion", '!'},
	{"flask", '!'},
	{"scroll", '?'},
	{"ration", ','},
	{"torch", '~'},
	{"shot", '{'},
	{"armour", '('},
	{"dagger", '|'},
}

// ObjectIcon returns the icon for an object kind
func ObjectIcon(kind string) rune {
	for _, oi := range objectIcons {
		if strings.Contains(kind, oi.word) {
			return oi.icon
		}
	}
	return '*'
}

// FeatureGlyph returns the icon and style of a terrain feature
func FeatureGlyph(reg *feature.Registry, feat int) (rune, TextStyle) {
	f := reg.Get(feat)
	if f == nil || feat == reg.Terrain().None {
		return IconVoid, StyleNormal
	}
	switch {
	case f.Has(feature.FlagGold):
		return f.Glyph, StyleTreasure
	case f.Has(feature.FlagMagma), f.Has(feature.FlagQuartz):
		return f.Glyph, StyleMineral
	case f.Has(feature.FlagFiery):
		return f.Glyph, StyleLava
	case f.Has(feature.FlagStair):
		return f.Glyph, StyleStair
	case f.Has(feature.FlagDoor) && !f.Has(feature.FlagWall):
		return f.Glyph, StyleDoor
	case f.Has(feature.FlagWall), f.Has(feature.FlagRubble):
		return f.Glyph, StyleWall
	default:
		return f.Glyph, StyleFloor
	}
}

// Glyph returns what the player sees at loc: themselves, a monster in view,
// or their memory of the square.
func Glyph(g *state.Game, loc world.Loc) (rune, TextStyle) {
	if loc == g.Player {
		return PlayerIcon, StylePlayer
	}

	if mon := g.Cave.MonsterAt(loc); mon.Alive() && inView(g, loc) {
		return []rune(mon.Race)[0], StyleMonster
	}

	ksq := g.Known.Square(loc)
	if ksq == nil {
		return IconVoid, StyleNormal
	}
	switch n := ksq.Obj.Len(); {
	case n > 1:
		return IconPile, StyleItem
	case n == 1:
		return ObjectIcon(ksq.Obj.Top().Kind), StyleItem
	}
	if ksq.Has(world.SquareTrap) {
		return IconTrap, StyleTrap
	}
	return FeatureGlyph(g.Known.Features(), ksq.Feat)
}

// inView reports whether the player can currently see loc
func inView(g *state.Game, loc world.Loc) bool {
	return world.Distance(g.Player, loc) <= state.ViewRadius && g.Cave.LOS(g.Player, loc)
}
