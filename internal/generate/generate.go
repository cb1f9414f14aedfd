// Package generate builds a tile level in fixed phases: a drunkard's walk
// carves floor, a neighbour-majority pass fills holes, noise paints grass,
// and square props (3x3, 2x2, 1x1) pack every remaining empty cell.
package generate

import (
	"fmt"
	"time"

	"meadowgen/internal/gamemap"
	"meadowgen/internal/noise"
)

// Stats summarises one Generate call.
type Stats struct {
	Seed          int64
	NoiseSeed     int64
	Width, Height int
	Carve         CarveResult
	HolesFilled   int
	BorderProps   int
	ExpandProps   int
	FillProps     int
	Props3x3      int
	Props2x2      int
	Props1x1      int
	Elapsed       time.Duration
}

// Generate runs every phase once and returns the finished grid. The grid is
// never exposed before all phases complete.
func Generate(cfg *Config) (gmap *gamemap.GameMap, stats Stats, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, Stats{}, err
	}
	start := time.Now()
	log := cfg.logger()
	rng := cfg.rng()

	w, h := cfg.GridSize()
	stats = Stats{Seed: cfg.Seed, NoiseSeed: cfg.NoiseSeed, Width: w, Height: h}

	src := cfg.Noise
	if src == nil {
		if src, err = noise.New(cfg.NoiseKind, cfg.NoiseSeed); err != nil {
			return nil, Stats{}, fmt.Errorf("setup: %w", err)
		}
	}
	field, err := noise.NewField(src, w, h, cfg.NoiseScale)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("setup: %w", err)
	}
	gmap = gamemap.New(w, h)

	phase := "setup"
	defer func() {
		if r := recover(); r != nil {
			oor, ok := r.(*gamemap.OutOfRangeError)
			if !ok {
				panic(r)
			}
			gmap, stats, err = nil, Stats{}, fmt.Errorf("%s: %w", phase, oor)
		}
	}()

	phase = "create floors"
	stats.Carve = CreateFloors(gmap, cfg, rng)
	if stats.Carve.CapHit {
		log.Warn("floor carving hit iteration cap",
			"iterations", stats.Carve.Iterations,
			"fill_ratio", stats.Carve.FillRatio,
			"threshold", cfg.FillThreshold)
	}

	phase = "fill holes"
	for range cfg.HoleFillPasses {
		stats.HolesFilled += FillHoles(gmap, cfg.HoleFillNeighbors)
	}

	phase = "add grass"
	AddGrass(gmap, field, cfg)

	phase = "add borders"
	stats.BorderProps = AddBorders(gmap)

	phase = "expand borders"
	stats.ExpandProps = ExpandBorders(gmap, cfg.ExpandPasses)

	phase = "fill map"
	for range cfg.FillMapPasses {
		stats.FillProps += FillMap(gmap)
	}

	stats.Props3x3 = gmap.Count(gamemap.Obj3x3)
	stats.Props2x2 = gmap.Count(gamemap.Obj2x2)
	stats.Props1x1 = gmap.Count(gamemap.Obj1x1)
	stats.Elapsed = time.Since(start)

	log.Info("level generated",
		"seed", cfg.Seed,
		"noise_seed", cfg.NoiseSeed,
		"size", fmt.Sprintf("%dx%d", w, h),
		"iterations", stats.Carve.Iterations,
		"fill_ratio", stats.Carve.FillRatio,
		"props", stats.Props3x3+stats.Props2x2+stats.Props1x1,
		"elapsed", stats.Elapsed)
	return gmap, stats, nil
}
