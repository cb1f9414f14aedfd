// Package noise provides seeded coherent-noise sources and the precomputed
// per-cell sample field the grass painter reads.
package noise

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source samples 2D coherent noise in [0,1]. Implementations must be
// deterministic for a given seed.
type Source interface {
	Sample(x, y float64) float64
}

// Kind names a built-in Source implementation.
type Kind string

const (
	KindPerlin  Kind = "perlin"
	KindSimplex Kind = "simplex"
)

// Perlin wraps aquilax/go-perlin and remaps its output into [0,1].
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin creates a Perlin source. alpha=2, beta=2, n=3 gives the soft,
// blotchy pattern used for grass patches.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(2, 2, 3, seed)}
}

// Sample returns the noise value at (x, y) in [0,1].
func (p *Perlin) Sample(x, y float64) float64 {
	return clamp01(p.p.Noise2D(x, y)*0.5 + 0.5)
}

// Simplex wraps the normalized OpenSimplex generator.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex creates an OpenSimplex source.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.NewNormalized(seed)}
}

// Sample returns the noise value at (x, y) in [0,1].
func (s *Simplex) Sample(x, y float64) float64 {
	return clamp01(s.n.Eval2(x, y))
}

// New returns the built-in source named by kind.
func New(kind Kind, seed int64) (Source, error) {
	switch kind {
	case KindPerlin, "":
		return NewPerlin(seed), nil
	case KindSimplex:
		return NewSimplex(seed), nil
	}
	return nil, fmt.Errorf("unknown noise kind %q", kind)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
