package generate

import (
	"testing"

	"meadowgen/internal/gamemap"
)

func sameGrid(t *testing.T, got, want *gamemap.GameMap) {
	t.Helper()
	for y := 0; y < want.Height; y++ {
		for x := 0; x < want.Width; x++ {
			if got.At(x, y) != want.At(x, y) {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, got.At(x, y), want.At(x, y))
			}
		}
	}
}

func TestPlace3x3(t *testing.T) {
	gmap := gamemap.New(10, 10)
	if !Place3x3(gmap, 5, 5) {
		t.Fatal("3x3 should fit on an empty grid")
	}
	if gmap.At(5, 5) != gamemap.Obj3x3 {
		t.Errorf("anchor = %v, want obj3x3", gmap.At(5, 5))
	}
	if n := gmap.Count(gamemap.Used3x3); n != 8 {
		t.Errorf("used3x3 cells = %d, want 8", n)
	}
	for x := 4; x <= 6; x++ {
		for y := 4; y <= 6; y++ {
			if gmap.At(x, y).PropSize() != 3 {
				t.Errorf("(%d,%d) not part of the 3x3", x, y)
			}
		}
	}
}

func TestPlaceIsAtomic(t *testing.T) {
	cases := []struct {
		name  string
		place func(*gamemap.GameMap) bool
	}{
		{"3x3", func(g *gamemap.GameMap) bool { return Place3x3(g, 5, 5) }},
		{"2x2", func(g *gamemap.GameMap) bool { return Place2x2(g, 5, 5) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gmap := gamemap.New(10, 10)
			gmap.Set(6, 6, gamemap.Floor)
			before := gmap.Clone()
			if tc.place(gmap) {
				t.Fatal("placement should fail with an occupied cell")
			}
			sameGrid(t, gmap, before)
		})
	}
}

func TestPlaceRejectsBorderAnchor(t *testing.T) {
	gmap := gamemap.New(10, 10)
	if Place3x3(gmap, 0, 5) || Place3x3(gmap, 5, 9) {
		t.Error("3x3 anchors on the border must be rejected")
	}
	if Place2x2(gmap, 9, 4) {
		t.Error("2x2 anchors on the border must be rejected")
	}
	if gmap.Count(gamemap.Empty) != 100 {
		t.Error("rejected placements must not write")
	}
}

func TestPlaceLargestPrefersStraight3x3(t *testing.T) {
	gmap := gamemap.New(10, 10)
	if got := PlaceLargest(gmap, 4, 4, 1, 0); got != gamemap.Obj3x3 {
		t.Fatalf("placed %v, want obj3x3", got)
	}
	if gmap.At(6, 4) != gamemap.Obj3x3 {
		t.Error("straight-out probe (x+2, y) should win")
	}

	vertical := gamemap.New(10, 10)
	PlaceLargest(vertical, 4, 4, 0, -1)
	if vertical.At(4, 2) != gamemap.Obj3x3 {
		t.Error("straight-down probe (x, y-2) should win")
	}
}

func TestPlaceLargestShiftedProbe(t *testing.T) {
	gmap := gamemap.New(12, 12)
	// Blocks the straight 3x3 at (6,5); the y+1 shift is free.
	gmap.Set(7, 4, gamemap.Floor)
	if got := PlaceLargest(gmap, 4, 5, 1, 0); got != gamemap.Obj3x3 {
		t.Fatalf("placed %v, want obj3x3", got)
	}
	if gmap.At(6, 6) != gamemap.Obj3x3 {
		t.Error("expected the y+1 shifted probe to win")
	}
}

func TestPlaceLargestFallsBackTo2x2(t *testing.T) {
	gmap := gamemap.New(10, 10)
	// (7,4) sits inside every 3x3 probe and the first 2x2 probe.
	gmap.Set(7, 4, gamemap.Floor)
	if got := PlaceLargest(gmap, 4, 4, 1, 0); got != gamemap.Obj2x2 {
		t.Fatalf("placed %v, want obj2x2", got)
	}
	if gmap.At(6, 5) != gamemap.Obj2x2 {
		t.Errorf("anchor (6,5) = %v, want obj2x2", gmap.At(6, 5))
	}
	if gmap.Count(gamemap.Used2x2) != 3 || gmap.Count(gamemap.Obj3x3) != 0 {
		t.Error("expected exactly one 2x2 and no 3x3")
	}
}

func TestPlaceLargestFallsBackTo1x1(t *testing.T) {
	gmap := gamemap.New(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			gmap.Set(x, y, gamemap.DarkGrass)
		}
	}
	gmap.Set(5, 4, gamemap.Empty)
	if got := PlaceLargest(gmap, 4, 4, 1, 0); got != gamemap.Obj1x1 {
		t.Fatalf("placed %v, want obj1x1", got)
	}
	if gmap.At(5, 4) != gamemap.Obj1x1 {
		t.Error("1x1 should land on the target cell")
	}
}

func TestPlaceLargestOutOfBounds(t *testing.T) {
	gmap := gamemap.New(10, 10)
	before := gmap.Clone()
	for _, c := range []struct{ x, y, dx, dy int }{
		{0, 4, -1, 0},
		{1, 4, -1, 0}, // target on the reserved border
		{4, 8, 0, 1},
		{9, 9, 0, 0},
	} {
		if got := PlaceLargest(gmap, c.x, c.y, c.dx, c.dy); got != gamemap.Empty {
			t.Errorf("PlaceLargest(%d,%d,%d,%d) = %v, want no placement", c.x, c.y, c.dx, c.dy, got)
		}
	}
	sameGrid(t, gmap, before)
}

func TestPlaceLargestZeroOffsetCoversSeed(t *testing.T) {
	gmap := gamemap.New(10, 10)
	if got := PlaceLargest(gmap, 5, 5, 0, 0); got != gamemap.Obj3x3 {
		t.Fatalf("placed %v, want obj3x3", got)
	}
	if gmap.At(5, 5) != gamemap.Obj3x3 {
		t.Error("zero offset should centre the first 3x3 on the seed")
	}
}
