package generate

import (
	"flag"
	"strconv"

	"meadowgen/internal/noise"
)

// BindFlags registers the generation flags on fs. Current field values
// become the flag defaults.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "floor carving seed")
	fs.Int64Var(&c.NoiseSeed, "noise-seed", c.NoiseSeed, "grass noise seed (defaults to -seed)")
	fs.Func("size", "world width and height (default "+strconv.FormatFloat(c.WorldWidth, 'g', -1, 64)+")", func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		c.WorldWidth, c.WorldHeight = v, v
		return nil
	})
	fs.Float64Var(&c.WorldWidth, "width", c.WorldWidth, "world width")
	fs.Float64Var(&c.WorldHeight, "height", c.WorldHeight, "world height")
	fs.Float64Var(&c.FillThreshold, "fill", c.FillThreshold, "floor fill ratio that stops carving")
	fs.IntVar(&c.Margin, "margin", c.Margin, "cells walkers keep from every edge")
	fs.IntVar(&c.MaxWalkers, "walkers", c.MaxWalkers, "maximum concurrent walkers")
	fs.Func("noise", "grass noise: perlin or simplex (default "+string(c.NoiseKind)+")", func(s string) error {
		c.NoiseKind = noise.Kind(s)
		return nil
	})
	fs.Float64Var(&c.NoiseScale, "noise-scale", c.NoiseScale, "cells per noise unit")
}

// SyncNoiseSeed copies Seed into NoiseSeed unless -noise-seed was given.
// Call it after fs.Parse.
func (c *Config) SyncNoiseSeed(fs *flag.FlagSet) {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "noise-seed" {
			set = true
		}
	})
	if !set {
		c.NoiseSeed = c.Seed
	}
}
