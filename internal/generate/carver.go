package generate

import (
	"math"
	"math/rand"

	"meadowgen/internal/gamemap"
)

// walker is a carving agent moving one cell per iteration.
type walker struct {
	dir  gamemap.Point
	x, y float64
}

// CarveResult summarises one CreateFloors run.
type CarveResult struct {
	Iterations  int
	CapHit      bool
	FillRatio   float64
	PeakWalkers int
}

func randomDirection(rng *rand.Rand) gamemap.Point {
	return gamemap.Directions[rng.Intn(len(gamemap.Directions))]
}

// newWalkers seeds the population with one walker at the grid centre.
func newWalkers(gmap *gamemap.GameMap, rng *rand.Rand) []walker {
	return []walker{{
		dir: randomDirection(rng),
		x:   math.Round(float64(gmap.Width) / 2),
		y:   math.Round(float64(gmap.Height) / 2),
	}}
}

// CreateFloors runs the drunkard's walk until the floor ratio exceeds
// cfg.FillThreshold or cfg.MaxIterations iterations have run.
func CreateFloors(gmap *gamemap.GameMap, cfg *Config, rng *rand.Rand) CarveResult {
	return carve(gmap, cfg, rng, newWalkers(gmap, rng))
}

func carve(gmap *gamemap.GameMap, cfg *Config, rng *rand.Rand, walkers []walker) CarveResult {
	floors := gmap.FloorCount()
	cells := float64(gmap.CellCount())
	paint := func(x, y int) {
		if gmap.At(x, y) != gamemap.Floor {
			gmap.Set(x, y, gamemap.Floor)
			floors++
		}
	}

	res := CarveResult{PeakWalkers: len(walkers)}
	for res.Iterations < cfg.MaxIterations {
		res.Iterations++

		for _, w := range walkers {
			x, y := int(math.Round(w.x)), int(math.Round(w.y))
			paint(x, y)
			// Two cells thick: right of vertical paths, above horizontal ones.
			if w.dir.Y != 0 {
				paint(x+1, y)
			}
			if w.dir.X != 0 {
				paint(x, y+1)
			}
		}

		n := len(walkers)
		for i := 0; i < n; i++ {
			if rng.Float64() < cfg.ChanceDestroy && len(walkers) > 1 {
				walkers = append(walkers[:i], walkers[i+1:]...)
				break
			}
		}

		for i := range walkers {
			if rng.Float64() < cfg.ChanceRedirect {
				walkers[i].dir = randomDirection(rng)
			}
		}

		n = len(walkers)
		for i := 0; i < n; i++ {
			if rng.Float64() < cfg.ChanceSpawn && len(walkers) < cfg.MaxWalkers {
				walkers = append(walkers, walker{
					dir: randomDirection(rng),
					x:   walkers[i].x,
					y:   walkers[i].y,
				})
			}
		}
		if len(walkers) > res.PeakWalkers {
			res.PeakWalkers = len(walkers)
		}

		for i := range walkers {
			walkers[i].x += float64(walkers[i].dir.X)
			walkers[i].y += float64(walkers[i].dir.Y)
		}

		minX, maxX := float64(cfg.Margin), float64(gmap.Width-cfg.Margin)
		minY, maxY := float64(cfg.Margin), float64(gmap.Height-cfg.Margin)
		for i := range walkers {
			walkers[i].x = clamp(walkers[i].x, minX, maxX)
			walkers[i].y = clamp(walkers[i].y, minY, maxY)
		}

		if float64(floors)/cells > cfg.FillThreshold {
			res.FillRatio = float64(floors) / cells
			return res
		}
	}
	res.CapHit = true
	res.FillRatio = float64(floors) / cells
	return res
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
