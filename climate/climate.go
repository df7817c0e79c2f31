// Package climate computes the temperature and humidity fields that drive
// biome classification. Both fields are pure functions of the world seed and
// a column coordinate; a Model holds no per-query state and may be shared
// between generation goroutines.
package climate

import (
	"github.com/fresh-voxel/engine/internal/worldseed"
	"github.com/fresh-voxel/engine/noise"
)

// Field labels for derived seeds. Temperature and humidity must never share
// a seed: reusing one collapses the two-axis biome table to a line.
const (
	temperatureLabel = "climate/temperature"
	humidityLabel    = "climate/humidity"
)

// Config holds the tunable climate parameters. The zero value is usable;
// defaults are applied by withDefaults.
type Config struct {
	// LatitudeScale converts a world Z coordinate into a [0, 1] distance
	// from the equator at z=0. Defaults to 0.0001, placing the poles
	// 10000 blocks out.
	LatitudeScale float64
	// LatitudeWeight is the share of temperature contributed by latitude,
	// the remainder coming from noise. Defaults to 0.7.
	LatitudeWeight float64
	// TemperatureFrequency and HumidityFrequency scale the climate noise
	// fields. The two fields intentionally use slightly different scales
	// so their features do not line up. Default 0.002 and 0.0025.
	TemperatureFrequency float64
	HumidityFrequency    float64
	// Octaves is the octave count of both climate fields. Defaults to 4.
	Octaves int
}

func (c Config) withDefaults() Config {
	if c.LatitudeScale <= 0 {
		c.LatitudeScale = 0.0001
	}
	if c.LatitudeWeight <= 0 {
		c.LatitudeWeight = 0.7
	}
	if c.TemperatureFrequency <= 0 {
		c.TemperatureFrequency = 0.002
	}
	if c.HumidityFrequency <= 0 {
		c.HumidityFrequency = 0.0025
	}
	if c.Octaves <= 0 {
		c.Octaves = 4
	}
	return c
}

// Model produces temperature and humidity samples for world columns.
type Model struct {
	temperature *noise.Fractal
	humidity    *noise.Fractal

	latitudeScale  float64
	latitudeWeight float64
}

// NewModel constructs a Model for the world seed. The temperature and
// humidity noise generators are seeded independently through derived seeds.
func NewModel(seed int64, conf Config) (*Model, error) {
	conf = conf.withDefaults()

	temp, err := noise.NewFractal(noise.NewPerlin(worldseed.Derive(seed, temperatureLabel)), noise.FractalConfig{
		Octaves:     conf.Octaves,
		Frequency:   conf.TemperatureFrequency,
		Persistence: 0.5,
	})
	if err != nil {
		return nil, err
	}
	humid, err := noise.NewFractal(noise.NewPerlin(worldseed.Derive(seed, humidityLabel)), noise.FractalConfig{
		Octaves:     conf.Octaves,
		Frequency:   conf.HumidityFrequency,
		Persistence: 0.5,
	})
	if err != nil {
		return nil, err
	}
	return &Model{
		temperature:    temp,
		humidity:       humid,
		latitudeScale:  conf.LatitudeScale,
		latitudeWeight: conf.LatitudeWeight,
	}, nil
}

// Temperature returns the temperature at a world column in [0, 1]. Latitude
// dominates, producing pole-to-equator bands, with noise perturbing the
// boundaries so they do not run in straight lines.
func (m *Model) Temperature(worldX, worldZ int) float64 {
	latitude := min(abs(float64(worldZ))*m.latitudeScale, 1)
	latitudeTemp := 1 - latitude

	n := m.temperature.Sample2D(float64(worldX), float64(worldZ))
	return clamp01(latitudeTemp*m.latitudeWeight + n*(1-m.latitudeWeight))
}

// Humidity returns the humidity at a world column in [0, 1]. Humidity has no
// latitude term so that it stays independent of temperature.
func (m *Model) Humidity(worldX, worldZ int) float64 {
	return clamp01(m.humidity.Sample2D(float64(worldX), float64(worldZ)))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
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
