package world

import "testing"

func TestDDD_MatchesPremultipliedTables(t *testing.T) {
	for i, d := range DDD {
		if DDXDDD[i] != DDX[d] {
			t.Errorf("DDXDDD[%d] = %d, want DDX[%v] = %d", i, DDXDDD[i], d, DDX[d])
		}
		if DDYDDD[i] != DDY[d] {
			t.Errorf("DDYDDD[%d] = %d, want DDY[%v] = %d", i, DDYDDD[i], d, DDY[d])
		}
	}
	if DDD[8] != Here {
		t.Errorf("DDD[8] = %v, want Here", DDD[8])
	}
}

func TestDirection_Delta(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Loc
	}{
		{North, L(0, -1)},
		{South, L(0, 1)},
		{East, L(1, 0)},
		{West, L(-1, 0)},
		{NorthEast, L(1, -1)},
		{SouthWest, L(-1, 1)},
		{Here, L(0, 0)},
		{DirNone, L(0, 0)},
		{Direction(42), L(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Delta(); got != tt.want {
				t.Errorf("%v.Delta() = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestAllDirections(t *testing.T) {
	dirs := AllDirections()
	if len(dirs) != 8 {
		t.Fatalf("len(AllDirections()) = %d, want 8", len(dirs))
	}
	for _, d := range dirs {
		if !d.IsValid() {
			t.Errorf("AllDirections() contains invalid %v", d)
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Loc
		want int
	}{
		{L(5, 5), L(5, 5), 0},
		{L(0, 0), L(3, 0), 3},
		{L(0, 0), L(3, 4), 5},
		{L(0, 0), L(4, 3), 5},
		{L(2, 2), L(1, 1), 1},
		{L(0, 0), L(2, 2), 3},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
