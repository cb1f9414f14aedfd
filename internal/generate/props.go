package generate

import (
	"math/rand"

	"meadowgen/internal/gamemap"
)

// Prop is one placed prop handed to the rendering collaborator.
type Prop struct {
	Size int // side length in cells: 1, 2 or 3
	X, Y int // anchor cell
	// WorldX, WorldY is the anchor cell centre in world units, with the
	// world origin at the middle of the map.
	WorldX, WorldY float64
	Variant        int
}

// Props lists every prop anchor in gmap in scan order and picks a sprite
// variant for each one.
func Props(gmap *gamemap.GameMap, cfg *Config, rng *rand.Rand) []Prop {
	var props []Prop
	for x := 0; x < gmap.Width; x++ {
		for y := 0; y < gmap.Height; y++ {
			s := gmap.At(x, y)
			if !s.IsAnchor() {
				continue
			}
			size := s.PropSize()
			props = append(props, Prop{
				Size:    size,
				X:       x,
				Y:       y,
				WorldX:  (float64(x)+0.5)*cfg.CellSize - cfg.WorldWidth/2,
				WorldY:  (float64(y)+0.5)*cfg.CellSize - cfg.WorldHeight/2,
				Variant: rng.Intn(cfg.PropVariants[size-1]),
			})
		}
	}
	return props
}
