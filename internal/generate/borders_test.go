package generate

import (
	"testing"

	"meadowgen/internal/gamemap"
)

// checkPropIntegrity verifies every multi-cell prop is whole: each anchor
// owns exactly the companion cells its size implies.
func checkPropIntegrity(t *testing.T, gmap *gamemap.GameMap) {
	t.Helper()
	if u, o := gmap.Count(gamemap.Used3x3), gmap.Count(gamemap.Obj3x3); u != 8*o {
		t.Errorf("used3x3=%d, want 8*obj3x3=%d", u, 8*o)
	}
	if u, o := gmap.Count(gamemap.Used2x2), gmap.Count(gamemap.Obj2x2); u != 3*o {
		t.Errorf("used2x2=%d, want 3*obj2x2=%d", u, 3*o)
	}
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			switch gmap.At(x, y) {
			case gamemap.Obj3x3:
				for dx := -1; dx <= 1; dx++ {
					for dy := -1; dy <= 1; dy++ {
						if (dx != 0 || dy != 0) && gmap.At(x+dx, y+dy) != gamemap.Used3x3 {
							t.Errorf("3x3 at (%d,%d) missing companion (%d,%d)", x, y, x+dx, y+dy)
						}
					}
				}
			case gamemap.Obj2x2:
				for _, d := range []gamemap.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}} {
					if gmap.At(x+d.X, y+d.Y) != gamemap.Used2x2 {
						t.Errorf("2x2 at (%d,%d) missing companion (%d,%d)", x, y, x+d.X, y+d.Y)
					}
				}
			}
		}
	}
}

func TestFillMapLeavesNoInteriorEmpty(t *testing.T) {
	for _, size := range []int{5, 12, 17} {
		gmap := gamemap.New(size, size)
		FillMap(gmap)
		FillMap(gmap)
		for y := 1; y < size-1; y++ {
			for x := 1; x < size-1; x++ {
				if gmap.At(x, y) == gamemap.Empty {
					t.Fatalf("size=%d: interior (%d,%d) still empty", size, x, y)
				}
			}
		}
		if gmap.Count(gamemap.Obj3x3) == 0 {
			t.Errorf("size=%d: an empty grid should take at least one 3x3", size)
		}
		checkPropIntegrity(t, gmap)
	}
}

func TestFillMapSkipsOccupiedCells(t *testing.T) {
	gmap := gamemap.New(9, 9)
	gmap.Set(4, 4, gamemap.LightGrass)
	gmap.Set(2, 6, gamemap.Floor)
	FillMap(gmap)
	FillMap(gmap)
	if gmap.At(4, 4) != gamemap.LightGrass || gmap.At(2, 6) != gamemap.Floor {
		t.Fatal("FillMap must not overwrite non-empty cells")
	}
	checkPropIntegrity(t, gmap)
}

func TestExpansionFrontier(t *testing.T) {
	gmap := gamemap.New(15, 15)
	Place3x3(gmap, 7, 7)
	Place2x2(gmap, 2, 2)

	frontier := expansionFrontier(gmap)
	// 12 cells ring the 3x3 and 8 ring the 2x2.
	if len(frontier) != 20 {
		t.Fatalf("frontier has %d cells, want 20", len(frontier))
	}
	seen := map[gamemap.Point]bool{}
	for _, p := range frontier {
		if seen[p] {
			t.Fatalf("duplicate frontier cell %v", p)
		}
		seen[p] = true
		if gmap.At(p.X, p.Y) != gamemap.Empty {
			t.Fatalf("frontier cell %v is not empty", p)
		}
	}
	for _, p := range []gamemap.Point{{X: 5, Y: 7}, {X: 9, Y: 6}, {X: 7, Y: 5}, {X: 8, Y: 9}, {X: 1, Y: 2}, {X: 4, Y: 3}, {X: 2, Y: 4}} {
		if !seen[p] {
			t.Errorf("expected %v in the frontier", p)
		}
	}
}

func TestExpandBordersGrowsProps(t *testing.T) {
	gmap := gamemap.New(21, 21)
	Place3x3(gmap, 10, 10)

	placed := ExpandBorders(gmap, 3)
	if placed == 0 {
		t.Fatal("expected the border to grow")
	}
	if gmap.At(10, 10) != gamemap.Obj3x3 {
		t.Fatal("existing props must not be reassigned")
	}
	// The first ring is always covered within two passes.
	for _, p := range []gamemap.Point{{X: 10, Y: 8}, {X: 12, Y: 10}, {X: 10, Y: 12}, {X: 8, Y: 10}} {
		if gmap.At(p.X, p.Y) == gamemap.Empty {
			t.Errorf("cell %v next to the seed prop is still empty", p)
		}
	}
	checkPropIntegrity(t, gmap)
}

func TestAddBordersPacksAroundGrass(t *testing.T) {
	gmap := gamemap.New(20, 20)
	for y := 8; y <= 11; y++ {
		for x := 8; x <= 11; x++ {
			gmap.Set(x, y, gamemap.DarkGrass)
		}
	}
	placed := AddBorders(gmap)
	if placed == 0 {
		t.Fatal("expected props along the grass boundary")
	}
	if gmap.Count(gamemap.Obj3x3) == 0 {
		t.Error("open space around the grass should take 3x3 props")
	}
	if gmap.Count(gamemap.DarkGrass) != 16 {
		t.Error("border packing must not overwrite grass")
	}
	checkPropIntegrity(t, gmap)
}
