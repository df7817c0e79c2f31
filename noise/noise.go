// Package noise produces deterministic coherent noise for the terrain and
// climate generators. A Source supplies raw gradient noise in roughly [-1, 1];
// Fractal layers several octaves of a Source and normalises the sum to [0, 1].
//
// Sources are immutable after construction. A single Source or Fractal may be
// shared freely between chunk generation goroutines.
package noise

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source is a seeded coherent-noise function. Implementations return values
// in approximately [-1, 1] and must be pure: the same coordinates always
// produce the same value.
type Source interface {
	At2(x, z float64) float64
	At3(x, y, z float64) float64
}

type perlinSource struct {
	p *perlin.Perlin
}

// NewPerlin returns a Perlin noise Source for the seed. Perlin noise is used
// for the climate fields, where its broad, smooth features suit continent
// scale temperature and humidity patterns.
func NewPerlin(seed int64) Source {
	return perlinSource{p: perlin.NewPerlin(2, 2, 3, seed)}
}

func (s perlinSource) At2(x, z float64) float64 { return s.p.Noise2D(x, z) }

func (s perlinSource) At3(x, y, z float64) float64 { return s.p.Noise3D(x, y, z) }

type simplexSource struct {
	n opensimplex.Noise
}

// NewSimplex returns an OpenSimplex noise Source for the seed. Simplex noise
// drives elevation, terrain roughness and cave carving.
func NewSimplex(seed int64) Source {
	return simplexSource{n: opensimplex.New(seed)}
}

func (s simplexSource) At2(x, z float64) float64 { return s.n.Eval2(x, z) }

func (s simplexSource) At3(x, y, z float64) float64 { return s.n.Eval3(x, y, z) }

// FractalConfig holds the octave parameters of a Fractal. The zero value is
// not usable; all fields must be set explicitly or through defaults chosen by
// the caller.
type FractalConfig struct {
	// Octaves is the number of noise layers summed. Must be at least 1.
	Octaves int
	// Frequency scales the input coordinates of the first octave. Lower
	// values produce larger features. Must be positive.
	Frequency float64
	// Persistence is the amplitude falloff applied per octave. Must be
	// positive; values at or below 1 keep the sum bounded.
	Persistence float64
	// Lacunarity is the frequency multiplier applied per octave. If zero,
	// it defaults to 2.
	Lacunarity float64
}

func (c FractalConfig) validate() error {
	if c.Octaves <= 0 {
		return fmt.Errorf("noise: octave count must be positive, got %d", c.Octaves)
	}
	if c.Frequency <= 0 {
		return fmt.Errorf("noise: frequency must be positive, got %v", c.Frequency)
	}
	if c.Persistence <= 0 {
		return fmt.Errorf("noise: persistence must be positive, got %v", c.Persistence)
	}
	return nil
}

// Fractal sums octaves of a Source into fractal Brownian motion. Sample
// results are normalised to [0, 1] regardless of octave count, so generators
// can treat fractal output as a fraction of the configured range.
type Fractal struct {
	src Source

	octaves     int
	frequency   float64
	persistence float64
	lacunarity  float64
	maxAmp      float64
}

// NewFractal builds a Fractal over src. Invalid configuration is rejected
// here, not per sample; sampling itself has no error conditions.
func NewFractal(src Source, c FractalConfig) (*Fractal, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if c.Lacunarity == 0 {
		c.Lacunarity = 2
	}
	maxAmp, amp := 0.0, 1.0
	for i := 0; i < c.Octaves; i++ {
		maxAmp += amp
		amp *= c.Persistence
	}
	return &Fractal{
		src:         src,
		octaves:     c.Octaves,
		frequency:   c.Frequency,
		persistence: c.Persistence,
		lacunarity:  c.Lacunarity,
		maxAmp:      maxAmp,
	}, nil
}

// MustFractal is NewFractal for statically known configuration. It panics on
// invalid configuration, which is a programming error.
func MustFractal(src Source, c FractalConfig) *Fractal {
	f, err := NewFractal(src, c)
	if err != nil {
		panic(err)
	}
	return f
}

// Sample2D returns the fractal noise value at (x, z), normalised to [0, 1].
func (f *Fractal) Sample2D(x, z float64) float64 {
	total, freq, amp := 0.0, f.frequency, 1.0
	for i := 0; i < f.octaves; i++ {
		total += f.src.At2(x*freq, z*freq) * amp
		freq *= f.lacunarity
		amp *= f.persistence
	}
	return clamp01(total/f.maxAmp*0.5 + 0.5)
}

// Sample3D returns the fractal noise value at (x, y, z), normalised to [0, 1].
func (f *Fractal) Sample3D(x, y, z float64) float64 {
	total, freq, amp := 0.0, f.frequency, 1.0
	for i := 0; i < f.octaves; i++ {
		total += f.src.At3(x*freq, y*freq, z*freq) * amp
		freq *= f.lacunarity
		amp *= f.persistence
	}
	return clamp01(total/f.maxAmp*0.5 + 0.5)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
