package feature

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Names of the terrain constants every terrain table must provide
const (
	NameNone       = "unknown grid"
	NameFloor      = "open floor"
	NameClosed     = "closed door"
	NameOpen       = "open door"
	NameBroken     = "broken door"
	NameLess       = "up staircase"
	NameMore       = "down staircase"
	NameSecret     = "secret door"
	NameRubble     = "pile of rubble"
	NamePassRubble = "pile of passable rubble"
	NameMagma      = "magma vein"
	NameQuartz     = "quartz vein"
	NameMagmaK     = "magma vein with treasure"
	NameQuartzK    = "quartz vein with treasure"
	NameGranite    = "granite wall"
	NamePerm       = "permanent wall"
	NameLava       = "lava"
)

// Terrain holds the resolved ids of the named terrain constants
type Terrain struct {
	None       int
	Floor      int
	Closed     int
	Open       int
	Broken     int
	Less       int
	More       int
	Secret     int
	Rubble     int
	PassRubble int
	Magma      int
	Quartz     int
	MagmaK     int
	QuartzK    int
	Granite    int
	Perm       int
	Lava       int
}

// Registry is the loaded terrain table. It is read-only after Load.
type Registry struct {
	feats   []Feature
	byName  map[string]int
	terrain Terrain
}

type terrainEntry struct {
	Name  string   `yaml:"name"`
	Glyph string   `yaml:"glyph"`
	Flags []string `yaml:"flags"`
}

type terrainFile struct {
	Features []terrainEntry `yaml:"features"`
}

// Load reads a terrain table from a YAML file and resolves the terrain constants
func Load(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read terrain table %s: %w", path, err)
	}
	reg, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("terrain table %s: %w", path, err)
	}
	return reg, nil
}

// Parse builds a registry from YAML terrain table contents.
// Feature ids are assigned in file order starting at 0.
func Parse(raw []byte) (*Registry, error) {
	var f terrainFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse terrain table: %w", err)
	}

	reg := &Registry{
		feats:  make([]Feature, 0, len(f.Features)),
		byName: make(map[string]int, len(f.Features)),
	}
	for i, e := range f.Features {
		if e.Name == "" {
			return nil, fmt.Errorf("feature %d has no name", i)
		}
		if _, dup := reg.byName[e.Name]; dup {
			return nil, fmt.Errorf("duplicate feature %q", e.Name)
		}
		ft := Feature{Idx: i, Name: e.Name, Glyph: ' '}
		if e.Glyph != "" {
			ft.Glyph, _ = utf8.DecodeRuneInString(e.Glyph)
		}
		for _, name := range e.Flags {
			flag, ok := ParseFlag(name)
			if !ok {
				return nil, fmt.Errorf("feature %q: unknown flag %q", e.Name, name)
			}
			ft.Flags |= flag
		}
		reg.feats = append(reg.feats, ft)
		reg.byName[e.Name] = i
	}

	if err := reg.setTerrain(); err != nil {
		return nil, err
	}
	return reg, nil
}

// Lookup finds a terrain feature index by name
func (r *Registry) Lookup(name string) (int, error) {
	idx, ok := r.byName[name]
	if !ok {
		return -1, fmt.Errorf("failed to find terrain feature %s", name)
	}
	return idx, nil
}

// setTerrain resolves every named constant; a missing name fails the load
func (r *Registry) setTerrain() error {
	targets := []struct {
		name string
		dst  *int
	}{
		{NameNone, &r.terrain.None},
		{NameFloor, &r.terrain.Floor},
		{NameClosed, &r.terrain.Closed},
		{NameOpen, &r.terrain.Open},
		{NameBroken, &r.terrain.Broken},
		{NameLess, &r.terrain.Less},
		{NameMore, &r.terrain.More},
		{NameSecret, &r.terrain.Secret},
		{NameRubble, &r.terrain.Rubble},
		{NamePassRubble, &r.terrain.PassRubble},
		{NameMagma, &r.terrain.Magma},
		{NameQuartz, &r.terrain.Quartz},
		{NameMagmaK, &r.terrain.MagmaK},
		{NameQuartzK, &r.terrain.QuartzK},
		{NameGranite, &r.terrain.Granite},
		{NamePerm, &r.terrain.Perm},
		{NameLava, &r.terrain.Lava},
	}
	for _, t := range targets {
		idx, err := r.Lookup(t.name)
		if err != nil {
			return err
		}
		*t.dst = idx
	}
	return nil
}

// Terrain returns the resolved terrain constants
func (r *Registry) Terrain() Terrain {
	return r.terrain
}

// Max returns the number of features in the table
func (r *Registry) Max() int {
	return len(r.feats)
}

// Get returns the feature with the given index, or nil if out of range
func (r *Registry) Get(idx int) *Feature {
	if idx < 0 || idx >= len(r.feats) {
		return nil
	}
	return &r.feats[idx]
}

// Has reports whether feature idx carries the flag
func (r *Registry) Has(idx int, f Flag) bool {
	return r.Get(idx).Has(f)
}
