package generate

import (
	"meadowgen/internal/gamemap"
	"meadowgen/internal/noise"

	"github.com/zyedidia/generic/mapset"
)

// orthogonal neighbour offsets in the order the painters visit them.
var orthogonal = [4]gamemap.Point{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}

// AddGrass paints floor cells as light or dark grass from the noise field
// and forces a dark-grass seam wherever floor meets empty space, then widens
// single-file light grass strips.
func AddGrass(gmap *gamemap.GameMap, field *noise.Field, cfg *Config) {
	edges := paintGrass(gmap, field, cfg.LightGrassThreshold, cfg.DarkGrassThreshold)
	CleanupLightGrass(gmap, edges)
}

// paintGrass returns the set of cells forced to dark grass along the
// floor/empty boundary. A neighbour counts as empty if it was Empty before
// the pass started, so the seam does not depend on scan order.
func paintGrass(gmap *gamemap.GameMap, field *noise.Field, light, dark float64) mapset.Set[gamemap.Point] {
	edges := mapset.New[gamemap.Point]()
	seam := mapset.New[gamemap.Point]() // cells this pass converted from Empty
	for x := 0; x < gmap.Width-1; x++ {
		for y := 0; y < gmap.Height-1; y++ {
			if gmap.At(x, y) != gamemap.Floor {
				continue
			}
			if v := field.At(x, y); v > light {
				gmap.Set(x, y, gamemap.LightGrass)
			} else if v > dark {
				gmap.Set(x, y, gamemap.DarkGrass)
			}

			for _, d := range orthogonal {
				n := gamemap.Point{X: x + d.X, Y: y + d.Y}
				if !gmap.InBounds(n.X, n.Y) {
					continue
				}
				if gmap.At(n.X, n.Y) != gamemap.Empty && !seam.Has(n) {
					continue
				}
				gmap.Set(x, y, gamemap.DarkGrass)
				gmap.Set(n.X, n.Y, gamemap.DarkGrass)
				seam.Put(n)
				edges.Put(gamemap.Point{X: x, Y: y})
				edges.Put(n)
			}
		}
	}
	return edges
}

// CleanupLightGrass widens light grass cells squeezed between dark grass on
// both sides by converting the right (or upper) neighbour. Cells in edges,
// or touching Empty, are left alone.
func CleanupLightGrass(gmap *gamemap.GameMap, edges mapset.Set[gamemap.Point]) {
	widen := func(x, y int) {
		if edges.Has(gamemap.Point{X: x, Y: y}) {
			return
		}
		for _, d := range orthogonal {
			nx, ny := x+d.X, y+d.Y
			if gmap.InBounds(nx, ny) && gmap.At(nx, ny) == gamemap.Empty {
				return
			}
		}
		gmap.Set(x, y, gamemap.LightGrass)
	}

	for x := 1; x < gmap.Width-1; x++ {
		for y := 1; y < gmap.Height-1; y++ {
			if gmap.At(x, y) != gamemap.LightGrass {
				continue
			}
			if gmap.At(x+1, y) == gamemap.DarkGrass && gmap.At(x-1, y) == gamemap.DarkGrass {
				widen(x+1, y)
			}
			if gmap.At(x, y+1) == gamemap.DarkGrass && gmap.At(x, y-1) == gamemap.DarkGrass {
				widen(x, y+1)
			}
		}
	}
}
