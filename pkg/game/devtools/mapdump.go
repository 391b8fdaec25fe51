// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"darkdepths/pkg/engine/terminal"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/renderer"
	"darkdepths/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// realSymbol returns the symbol for the real contents of a square, with no
// player overlay
func realSymbol(c *world.Chunk, loc world.Loc) rune {
	sq := c.Square(loc)
	if sq == nil {
		return ' '
	}
	if sq.Mon != 0 {
		return 'm'
	}
	switch n := sq.Obj.Len(); {
	case n > 1:
		return renderer.IconPile
	case n == 1:
		return renderer.ObjectIcon(sq.Obj.Top().Kind)
	}
	if sq.Trap != nil {
		return renderer.IconTrap
	}
	icon, _ := renderer.FeatureGlyph(c.Features(), sq.Feat)
	return icon
}

// WriteMapGrid writes one map to w: the player's memory when known is set,
// the real level otherwise. Lines are cut to width runes when width > 0.
func WriteMapGrid(w io.Writer, g *state.Game, known bool, width int) {
	c := g.Cave
	line := make([]rune, 0, c.Width())
	for y := 0; y < c.Height(); y++ {
		line = line[:0]
		for x := 0; x < c.Width(); x++ {
			loc := world.L(x, y)
			var r rune
			switch {
			case known:
				r, _ = renderer.Glyph(g, loc)
			case loc == g.Player:
				r = renderer.PlayerIcon
			default:
				r = realSymbol(c, loc)
			}
			line = append(line, r)
		}
		fmt.Fprintln(w, terminal.Clip(string(line), width))
	}
}

// DumpRevealedMapToFile writes a full debug dump to map.txt: metadata, legend,
// the remembered map, the real map, and object and monster lists.
func DumpRevealedMapToFile(g *state.Game) (string, error) {
	if g.Cave == nil {
		return "", fmt.Errorf("no level")
	}

	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, g); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

// WriteDump writes the debug dump of the active level to w
func WriteDump(w io.Writer, g *state.Game) error {
	c := g.Cave

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (level layout, objects, monsters) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "depth: %d\n", g.Depth)
	fmt.Fprintf(w, "level_seed: %d\n", g.LevelSeed)
	fmt.Fprintf(w, "turn: %d\n", g.Turn)
	fmt.Fprintf(w, "created_at: %d\n", c.CreatedAt)
	fmt.Fprintf(w, "height: %d\n", c.Height())
	fmt.Fprintf(w, "width: %d\n", c.Width())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, y=row, x=column)\n")
	fmt.Fprintf(w, "player: %d,%d\n", g.Player.X, g.Player.Y)
	if g.Layout != nil {
		fmt.Fprintf(w, "up_staircase: %d,%d\n", g.Layout.Up.X, g.Layout.Up.Y)
		fmt.Fprintf(w, "down_staircase: %d,%d\n", g.Layout.Down.X, g.Layout.Down.Y)
		fmt.Fprintf(w, "rooms: %d\n", len(g.Layout.Rooms))
	}
	fmt.Fprintf(w, "object_capacity: %d\n", c.ObjMax())
	fmt.Fprintf(w, "known_object_capacity: %d\n", g.Known.ObjMax())
	fmt.Fprintf(w, "monster_high_water: %d\n", c.MonsterMax())
	fmt.Fprintf(w, "monsters_alive: %d\n", c.MonsterCount())
	fmt.Fprintln(w, "")

	// --- Feature counts ---
	fmt.Fprintln(w, "--- Feature counts ---")
	reg := c.Features()
	for i := 0; i < reg.Max(); i++ {
		if n := c.FeatCount(i); n > 0 {
			fmt.Fprintf(w, "  %s: %d\n", reg.Get(i).Name, n)
		}
	}
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, ". = floor  # = wall  % = mineral vein  * = vein with treasure  + = closed door  ' = open door  < > = stairs  : = rubble  ^ = trap  & = pile  m = monster  @ = player")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (player memory) ---")
	WriteMapGrid(w, g, true, 0)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (real level) ---")
	WriteMapGrid(w, g, false, 0)
	fmt.Fprintln(w, "")

	// --- Object index ---
	fmt.Fprintln(w, "Objects:")
	c.ForEachObject(func(idx int, obj *world.Object) {
		known := g.Known.Object(idx) != nil
		fmt.Fprintf(w, "  idx: %d kind: %q number: %d x: %d y: %d held_by: %d known: %v\n",
			idx, obj.Kind, obj.Number, obj.Grid.X, obj.Grid.Y, obj.HeldMIdx, known)
	})
	fmt.Fprintln(w, "")

	// --- Monsters ---
	fmt.Fprintln(w, "Monsters:")
	for i := 1; i < c.MonsterMax(); i++ {
		mon := c.Monster(i)
		if !mon.Alive() {
			continue
		}
		fmt.Fprintf(w, "  midx: %d race: %q hp: %d x: %d y: %d carrying: %d\n",
			mon.MIdx, mon.Race, mon.HP, mon.Grid.X, mon.Grid.Y, mon.Held.Len())
	}
	fmt.Fprintln(w, "")

	// --- Inventory ---
	fmt.Fprintln(w, "Player inventory:")
	if len(g.Inventory) == 0 {
		fmt.Fprintln(w, "  (none)")
	} else {
		names := make([]string, 0, len(g.Inventory))
		for _, obj := range g.Inventory {
			names = append(names, obj.Name())
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintf(w, "  item_name: %q\n", n)
		}
	}
	fmt.Fprintln(w, "")

	// --- Integrity ---
	fmt.Fprintln(w, "Integrity:")
	if err := g.CheckIntegrity(); err != nil {
		fmt.Fprintf(w, "  FAILED: %v\n", err)
	} else {
		fmt.Fprintln(w, "  ok")
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END MAP DUMP ===")
	return nil
}
