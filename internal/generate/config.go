package generate

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"meadowgen/internal/noise"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid generator config")

// Config drives one level generation run. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// Grid size is WorldWidth/CellSize by WorldHeight/CellSize cells.
	WorldWidth, WorldHeight float64
	CellSize                float64

	Seed      int64
	NoiseSeed int64
	NoiseKind noise.Kind
	// NoiseScale divides cell coordinates before sampling; larger values
	// give broader grass patches.
	NoiseScale float64

	// Floor carving.
	FillThreshold  float64 // stop once floor/cells exceeds this
	ChanceDestroy  float64
	ChanceRedirect float64
	ChanceSpawn    float64
	MaxWalkers     int
	Margin         int // walkers stay this many cells away from every edge
	MaxIterations  int

	HoleFillPasses    int
	HoleFillNeighbors int // an empty cell with more floor neighbours than this becomes floor

	LightGrassThreshold float64
	DarkGrassThreshold  float64

	ExpandPasses  int
	FillMapPasses int

	// PropVariants is the number of sprite variants for 1x1, 2x2 and 3x3
	// props, in that order.
	PropVariants [3]int

	// Optional overrides. Rand defaults to a source seeded with Seed and
	// Noise to noise.New(NoiseKind, NoiseSeed).
	Rand   *rand.Rand
	Noise  noise.Source
	Logger *slog.Logger
}

// DefaultConfig returns the standard 150x150 level settings.
func DefaultConfig() Config {
	return Config{
		WorldWidth:          150,
		WorldHeight:         150,
		CellSize:            1,
		NoiseKind:           noise.KindPerlin,
		NoiseScale:          12.5,
		FillThreshold:       0.2,
		ChanceDestroy:       0.05,
		ChanceRedirect:      0.3,
		ChanceSpawn:         0.03,
		MaxWalkers:          12,
		Margin:              10,
		MaxIterations:       100000,
		HoleFillPasses:      2,
		HoleFillNeighbors:   6,
		LightGrassThreshold: 0.4,
		DarkGrassThreshold:  0.2,
		ExpandPasses:        3,
		FillMapPasses:       2,
		PropVariants:        [3]int{3, 3, 3},
	}
}

// GridSize returns the grid dimensions in cells.
func (c *Config) GridSize() (int, int) {
	if c.CellSize <= 0 {
		return 0, 0
	}
	w := int(math.Round(c.WorldWidth / c.CellSize))
	h := int(math.Round(c.WorldHeight / c.CellSize))
	return w, h
}

// Validate reports the first setting that would make generation misbehave.
func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %v must be positive", ErrInvalidConfig, c.CellSize)
	}
	w, h := c.GridSize()
	if w < 3 || h < 3 {
		return fmt.Errorf("%w: grid %dx%d is smaller than 3x3", ErrInvalidConfig, w, h)
	}
	if c.Margin < 2 {
		return fmt.Errorf("%w: margin %d must be at least 2", ErrInvalidConfig, c.Margin)
	}
	if w-2*c.Margin < 2 || h-2*c.Margin < 2 {
		return fmt.Errorf("%w: margin %d leaves no room to carve in a %dx%d grid", ErrInvalidConfig, c.Margin, w, h)
	}
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"fill threshold", c.FillThreshold},
		{"destroy chance", c.ChanceDestroy},
		{"redirect chance", c.ChanceRedirect},
		{"spawn chance", c.ChanceSpawn},
	} {
		if p.v < 0 || p.v > 1 || math.IsNaN(p.v) {
			return fmt.Errorf("%w: %s %v outside [0,1]", ErrInvalidConfig, p.name, p.v)
		}
	}
	if c.MaxWalkers < 1 {
		return fmt.Errorf("%w: max walkers %d must be at least 1", ErrInvalidConfig, c.MaxWalkers)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations %d must be at least 1", ErrInvalidConfig, c.MaxIterations)
	}
	if c.HoleFillPasses < 0 || c.ExpandPasses < 0 || c.FillMapPasses < 0 {
		return fmt.Errorf("%w: pass counts must not be negative", ErrInvalidConfig)
	}
	if c.NoiseScale <= 0 {
		return fmt.Errorf("%w: noise scale %v must be positive", ErrInvalidConfig, c.NoiseScale)
	}
	if c.Noise == nil {
		switch c.NoiseKind {
		case noise.KindPerlin, noise.KindSimplex, "":
		default:
			return fmt.Errorf("%w: unknown noise kind %q", ErrInvalidConfig, c.NoiseKind)
		}
	}
	for i, n := range c.PropVariants {
		if n < 1 {
			return fmt.Errorf("%w: prop variants[%d] = %d must be at least 1", ErrInvalidConfig, i, n)
		}
	}
	return nil
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (c *Config) rng() *rand.Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return rand.New(rand.NewSource(c.Seed))
}
