package generate

import (
	"math/rand"
	"testing"

	"meadowgen/internal/gamemap"
)

func carveConfig(size int, margin int) *Config {
	cfg := DefaultConfig()
	cfg.WorldWidth = float64(size)
	cfg.WorldHeight = float64(size)
	cfg.Margin = margin
	return &cfg
}

func TestCreateFloorsReachesThreshold(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		cfg := carveConfig(60, 5)
		gmap := gamemap.New(60, 60)
		res := CreateFloors(gmap, cfg, rand.New(rand.NewSource(seed)))

		if res.CapHit {
			t.Fatalf("seed=%d: hit the iteration cap after %d iterations", seed, res.Iterations)
		}
		if res.FillRatio <= cfg.FillThreshold {
			t.Errorf("seed=%d: fill ratio %v not above threshold %v", seed, res.FillRatio, cfg.FillThreshold)
		}
		if got := gmap.FillRatio(); got != res.FillRatio {
			t.Errorf("seed=%d: reported ratio %v, grid ratio %v", seed, res.FillRatio, got)
		}
		if res.PeakWalkers < 1 || res.PeakWalkers > cfg.MaxWalkers {
			t.Errorf("seed=%d: peak walkers %d outside [1,%d]", seed, res.PeakWalkers, cfg.MaxWalkers)
		}
	}
}

func TestCreateFloorsStopsAtCap(t *testing.T) {
	cfg := carveConfig(40, 5)
	cfg.FillThreshold = 0.99 // unreachable inside the margins
	cfg.MaxIterations = 500
	gmap := gamemap.New(40, 40)

	res := CreateFloors(gmap, cfg, rand.New(rand.NewSource(1)))
	if !res.CapHit {
		t.Fatal("expected the iteration cap to be hit")
	}
	if res.Iterations != cfg.MaxIterations {
		t.Fatalf("ran %d iterations, want exactly %d", res.Iterations, cfg.MaxIterations)
	}
	if res.FillRatio >= cfg.FillThreshold {
		t.Fatalf("ratio %v should be below the unreachable threshold", res.FillRatio)
	}
}

func TestCreateFloorsStaysInsideMargin(t *testing.T) {
	const size, margin = 50, 8
	for seed := int64(0); seed < 5; seed++ {
		cfg := carveConfig(size, margin)
		gmap := gamemap.New(size, size)
		CreateFloors(gmap, cfg, rand.New(rand.NewSource(seed)))

		// Walkers clamp to [margin, size-margin]; thickening adds one more cell.
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if gmap.At(x, y) != gamemap.Floor {
					continue
				}
				if x < margin || y < margin || x > size-margin+1 || y > size-margin+1 {
					t.Fatalf("seed=%d: floor at (%d,%d) outside the carving margin", seed, x, y)
				}
			}
		}
	}
}

func TestWalkerPathIsTwoThick(t *testing.T) {
	cfg := carveConfig(20, 2)
	cfg.ChanceDestroy = 0
	cfg.ChanceRedirect = 0
	cfg.ChanceSpawn = 0
	cfg.FillThreshold = 1
	cfg.MaxIterations = 3
	gmap := gamemap.New(20, 20)

	carve(gmap, cfg, rand.New(rand.NewSource(1)), []walker{{dir: gamemap.Right, x: 5, y: 5}})

	for x := 5; x <= 7; x++ {
		for _, y := range []int{5, 6} {
			if gmap.At(x, y) != gamemap.Floor {
				t.Errorf("expected floor at (%d,%d)", x, y)
			}
		}
	}
	if gmap.FloorCount() != 6 {
		t.Errorf("FloorCount = %d, want 6", gmap.FloorCount())
	}

	vertical := gamemap.New(20, 20)
	carve(vertical, cfg, rand.New(rand.NewSource(1)), []walker{{dir: gamemap.Up, x: 5, y: 5}})
	for y := 5; y <= 7; y++ {
		if vertical.At(5, y) != gamemap.Floor || vertical.At(6, y) != gamemap.Floor {
			t.Errorf("vertical path should cover (5,%d) and (6,%d)", y, y)
		}
	}
}

func TestCreateFloorsDeterministic(t *testing.T) {
	cfg := carveConfig(40, 5)
	a := gamemap.New(40, 40)
	b := gamemap.New(40, 40)
	ra := CreateFloors(a, cfg, rand.New(rand.NewSource(9)))
	rb := CreateFloors(b, cfg, rand.New(rand.NewSource(9)))
	if ra != rb {
		t.Fatalf("results differ: %+v vs %+v", ra, rb)
	}
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("grids differ at (%d,%d)", x, y)
			}
		}
	}
}
