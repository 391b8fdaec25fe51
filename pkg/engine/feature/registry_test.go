package feature

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_ResolvesTerrain(t *testing.T) {
	reg := Default()
	if reg.Max() != 17 {
		t.Fatalf("Max() = %d, want 17", reg.Max())
	}
	ter := reg.Terrain()
	if ter.None != 0 {
		t.Errorf("Terrain().None = %d, want 0", ter.None)
	}
	if ter.Floor != 1 {
		t.Errorf("Terrain().Floor = %d, want 1", ter.Floor)
	}
	if ter.Lava != 16 {
		t.Errorf("Terrain().Lava = %d, want 16", ter.Lava)
	}
	if got := reg.Get(ter.Granite).Name; got != NameGranite {
		t.Errorf("Get(Granite).Name = %q, want %q", got, NameGranite)
	}
}

func TestLookup(t *testing.T) {
	reg := Default()
	tests := []struct {
		name string
		want int
	}{
		{NameNone, 0},
		{NameClosed, 2},
		{NamePassRubble, 9},
		{NamePerm, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	reg := Default()
	idx, err := reg.Lookup("chocolate wall")
	if err == nil {
		t.Fatal("Lookup(unknown) error = nil, want error")
	}
	if idx != -1 {
		t.Errorf("Lookup(unknown) = %d, want -1", idx)
	}
}

func TestParse_MissingConstant(t *testing.T) {
	raw := []byte("features:\n  - name: unknown grid\n  - name: open floor\n")
	_, err := Parse(raw)
	if err == nil {
		t.Fatal("Parse(incomplete table) error = nil, want error")
	}
	if !strings.Contains(err.Error(), NameClosed) {
		t.Errorf("error = %q, want it to name %q", err, NameClosed)
	}
}

func TestParse_UnknownFlag(t *testing.T) {
	raw := []byte("features:\n  - name: unknown grid\n    flags: [SPARKLY]\n")
	if _, err := Parse(raw); err == nil {
		t.Fatal("Parse(unknown flag) error = nil, want error")
	}
}

func TestParse_DuplicateName(t *testing.T) {
	raw := []byte("features:\n  - name: lava\n  - name: lava\n")
	if _, err := Parse(raw); err == nil {
		t.Fatal("Parse(duplicate) error = nil, want error")
	}
}

func TestFlags(t *testing.T) {
	reg := Default()
	ter := reg.Terrain()
	if !reg.Has(ter.Floor, FlagLOS|FlagPassable) {
		t.Error("floor should be LOS and PASSABLE")
	}
	if reg.Has(ter.Granite, FlagLOS) {
		t.Error("granite should block LOS")
	}
	if !reg.Has(ter.Closed, FlagDoorClosed) {
		t.Error("closed door should have DOOR_CLOSED")
	}
	if reg.Has(-1, FlagLOS) || reg.Has(reg.Max(), FlagLOS) {
		t.Error("out of range feature should have no flags")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrain.yaml")
	if err := os.WriteFile(path, defaultTable, 0o644); err != nil {
		t.Fatal(err)
	}
	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	if reg.Max() != Default().Max() {
		t.Errorf("Load().Max() = %d, want %d", reg.Max(), Default().Max())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load(missing) error = nil, want error")
	}
}

func TestDisplayName_Untranslated(t *testing.T) {
	reg := Default()
	ft := reg.Get(reg.Terrain().Floor)
	if got := ft.DisplayName(); got != NameFloor {
		t.Errorf("DisplayName() = %q, want %q", got, NameFloor)
	}
}
