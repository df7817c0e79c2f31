package biome

import (
	"fmt"

	"github.com/fresh-voxel/engine/climate"
	"github.com/fresh-voxel/engine/noise"
)

// Thresholds holds the elevation and temperature cutoffs of the classifier.
// Bands are half-open: a value equal to an upper bound falls into the next
// band, so every sample maps to exactly one biome.
type Thresholds struct {
	// Elevation cutoffs, checked before any climate band.
	DeepOcean float64
	Ocean     float64
	Beach     float64
	Hills     float64
	Mountains float64

	// SnowLine is the temperature below which high mountains are snowy.
	SnowLine float64

	// Cold and Warm bound the three temperature bands of the climate
	// table: cold below Cold, temperate below Warm, warm at or above it.
	Cold float64
	Warm float64
}

// DefaultThresholds returns the engine's built-in classifier thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DeepOcean: 0.15,
		Ocean:     0.30,
		Beach:     0.35,
		Hills:     0.60,
		Mountains: 0.75,
		SnowLine:  0.30,
		Cold:      0.33,
		Warm:      0.66,
	}
}

func (t Thresholds) validate() error {
	if !(t.DeepOcean < t.Ocean && t.Ocean < t.Beach && t.Beach < t.Hills && t.Hills < t.Mountains) {
		return fmt.Errorf("biome: elevation thresholds must be strictly increasing: %+v", t)
	}
	if !(t.Cold > 0 && t.Cold < t.Warm && t.Warm < 1) {
		return fmt.Errorf("biome: temperature bands must satisfy 0 < cold < warm < 1: %+v", t)
	}
	return nil
}

// Humidity sub-band cutoffs within each temperature band. These fine splits
// follow the biome table and are not externally tunable.
const (
	coldIceCut    = 0.2
	coldTundraCut = 0.5

	temperatePlainsCut = 0.4
	temperateForestCut = 0.7

	warmHotDesertCut = 0.15
	warmSavannaCut   = 0.4
	warmJungleCut    = 0.7
	warmSwampCut     = 0.85

	desertHeatCut = 0.85
	swampElevCut  = 0.45
)

// Classifier assigns a biome to every world column. Elevation bands are
// checked before the climate table so that oceans, beaches, hills and
// mountains always follow the terrain rather than the weather.
type Classifier struct {
	climate   *climate.Model
	elevation *noise.Fractal
	t         Thresholds
}

// NewClassifier builds a Classifier from the climate model and the shared
// elevation field. The same elevation field must be handed to the terrain
// synthesizer; classifying against one field and shaping terrain against
// another puts deserts underwater.
func NewClassifier(cm *climate.Model, elevation *noise.Fractal, t Thresholds) (*Classifier, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &Classifier{climate: cm, elevation: elevation, t: t}, nil
}

// Elevation returns the normalised terrain elevation in [0, 1] at a column.
func (c *Classifier) Elevation(worldX, worldZ int) float64 {
	return c.elevation.Sample2D(float64(worldX), float64(worldZ))
}

// At returns the biome at a world column.
func (c *Classifier) At(worldX, worldZ int) ID {
	elevation := c.Elevation(worldX, worldZ)
	temperature := c.climate.Temperature(worldX, worldZ)
	humidity := c.climate.Humidity(worldX, worldZ)
	return c.Select(temperature, humidity, elevation)
}

// Select maps a (temperature, humidity, elevation) triple to a biome.
// Exposed separately from At so tests and tools can probe the table with
// synthetic climate values.
func (c *Classifier) Select(temperature, humidity, elevation float64) ID {
	t := c.t

	switch {
	case elevation < t.DeepOcean:
		return DeepOcean
	case elevation < t.Ocean:
		return Ocean
	case elevation < t.Beach:
		return Beach
	case elevation > t.Mountains:
		if temperature < t.SnowLine {
			return SnowyMountains
		}
		return Mountains
	case elevation > t.Hills:
		return Hills
	}

	switch {
	case temperature < t.Cold:
		switch {
		case humidity < coldIceCut:
			return IcePlains
		case humidity < coldTundraCut:
			return Tundra
		default:
			return Taiga
		}
	case temperature < t.Warm:
		switch {
		case humidity < temperatePlainsCut:
			return Plains
		case humidity < temperateForestCut:
			return Forest
		default:
			return DenseForest
		}
	default:
		switch {
		case humidity < warmHotDesertCut:
			return HotDesert
		case humidity < warmSavannaCut:
			if temperature > desertHeatCut {
				return Desert
			}
			return Savanna
		case humidity < warmJungleCut:
			return Savanna
		case humidity > warmSwampCut && elevation < swampElevCut:
			return Swamp
		default:
			return Jungle
		}
	}
}
