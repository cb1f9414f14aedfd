package generate

import (
	"meadowgen/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// AddBorders packs props into the empty cells bordering dark grass, one
// placement attempt per empty neighbour. Returns placements made.
func AddBorders(gmap *gamemap.GameMap) int {
	placed := 0
	for x := 0; x < gmap.Width-1; x++ {
		for y := 0; y < gmap.Height-1; y++ {
			if gmap.At(x, y) != gamemap.DarkGrass {
				continue
			}
			for _, d := range orthogonal {
				nx, ny := x+d.X, y+d.Y
				if !gmap.InBounds(nx, ny) || gmap.At(nx, ny) != gamemap.Empty {
					continue
				}
				if PlaceLargest(gmap, x, y, d.X, d.Y) != gamemap.Empty {
					placed++
				}
			}
		}
	}
	return placed
}

// ExpandBorders grows the packed border outward. Each pass gathers the empty
// cells touching a 2x2 or 3x3 prop placed before the pass started, then
// tries a placement at each one still empty. Returns placements made.
func ExpandBorders(gmap *gamemap.GameMap, passes int) int {
	placed := 0
	for range passes {
		for _, c := range expansionFrontier(gmap) {
			if gmap.At(c.X, c.Y) != gamemap.Empty {
				continue
			}
			if PlaceLargest(gmap, c.X, c.Y, 0, 0) != gamemap.Empty {
				placed++
			}
		}
	}
	return placed
}

// expansionFrontier lists, in scan order and without duplicates, the empty
// cells orthogonally adjacent to multi-cell props.
func expansionFrontier(gmap *gamemap.GameMap) []gamemap.Point {
	seen := mapset.New[gamemap.Point]()
	var frontier []gamemap.Point
	for x := 0; x < gmap.Width; x++ {
		for y := 0; y < gmap.Height; y++ {
			if !gmap.At(x, y).IsMultiCell() {
				continue
			}
			for _, d := range orthogonal {
				p := gamemap.Point{X: x + d.X, Y: y + d.Y}
				if !gmap.InBounds(p.X, p.Y) || gmap.At(p.X, p.Y) != gamemap.Empty || seen.Has(p) {
					continue
				}
				seen.Put(p)
				frontier = append(frontier, p)
			}
		}
	}
	return frontier
}

// FillMap gives every empty interior cell one placement attempt. A cell can
// survive a pass when its attempt lands a 2x2 just above it; the next pass
// always covers it, so two passes leave no interior cell Empty. Returns
// placements made.
func FillMap(gmap *gamemap.GameMap) int {
	placed := 0
	for x := 1; x < gmap.Width-1; x++ {
		for y := 1; y < gmap.Height-1; y++ {
			if gmap.At(x, y) != gamemap.Empty {
				continue
			}
			if PlaceLargest(gmap, x, y, 0, 0) != gamemap.Empty {
				placed++
			}
		}
	}
	return placed
}
