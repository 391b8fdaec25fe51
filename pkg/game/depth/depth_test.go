package depth

import "testing"

func TestBandOf(t *testing.T) {
	tests := []struct {
		depth int
		want  Band
	}{
		{-3, Shallows},
		{0, Shallows},
		{1, Shallows},
		{5, Shallows},
		{6, Mines},
		{11, Caverns},
		{16, Deeps},
		{100, Deeps},
	}
	for _, tt := range tests {
		if got := BandOf(tt.depth); got != tt.want {
			t.Errorf("BandOf(%d) = %v, want %v", tt.depth, got, tt.want)
		}
	}
}

func TestProfileFor_DeeperIsDenser(t *testing.T) {
	shallow := ProfileFor(1)
	deep := ProfileFor(20)
	if deep.MinNodeSize >= shallow.MinNodeSize {
		t.Errorf("MinNodeSize deep = %d, shallow = %d, want deep smaller", deep.MinNodeSize, shallow.MinNodeSize)
	}
	if deep.Monsters <= shallow.Monsters {
		t.Errorf("Monsters deep = %d, shallow = %d, want deep larger", deep.Monsters, shallow.Monsters)
	}
	if shallow.Lava != 0 {
		t.Errorf("ProfileFor(1).Lava = %d, want 0", shallow.Lava)
	}
	if deep.Lava == 0 {
		t.Error("ProfileFor(20).Lava = 0, want lava in the deeps")
	}
}

func TestProfileFor_ClampsDepth(t *testing.T) {
	if got, want := ProfileFor(0), ProfileFor(1); got != want {
		t.Errorf("ProfileFor(0) = %+v, want %+v", got, want)
	}
	if got, want := ProfileFor(MaxDepth+50), ProfileFor(MaxDepth); got != want {
		t.Errorf("ProfileFor(MaxDepth+50) = %+v, want %+v", got, want)
	}
}

func TestRoomNames_EveryBand(t *testing.T) {
	for b := Shallows; b <= Deeps; b++ {
		bases, adjectives := RoomNames(b)
		if len(bases) == 0 || len(adjectives) == 0 {
			t.Errorf("RoomNames(%v) returned an empty list", b)
		}
	}
}
