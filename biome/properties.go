package biome

import (
	"fmt"

	"github.com/fresh-voxel/engine/voxel"
	"github.com/go-gl/mathgl/mgl64"
)

// Properties describes the climate reference values, terrain shaping
// parameters, surface materials and vegetation densities of a biome. Records
// are plain values; the registry hands out copies and is never mutated after
// construction.
type Properties struct {
	Name string

	// Climate reference values in [0, 1].
	Temperature float64
	Humidity    float64
	Rainfall    float64

	// Terrain shaping. HeightVariation and Roughness are in [0, 1];
	// HeightOffset is in [-1, 1], scaled by the synthesizer.
	HeightVariation float64
	HeightOffset    float64
	Roughness       float64

	// Column materials, top to bottom.
	Surface    voxel.Material
	SubSurface voxel.Material
	Deep       voxel.Material

	// MapColor is the biome's colour on generated overview maps.
	MapColor mgl64.Vec3

	// Vegetation densities in [0, 1].
	TreeDensity   float64
	GrassDensity  float64
	FlowerDensity float64
}

// Registry is an immutable table of Properties keyed by biome ID. A Registry
// is validated once at construction and may be shared between generation
// goroutines without synchronisation.
type Registry struct {
	props [idCount]Properties
}

// NewRegistry validates the table and returns a Registry. Every biome ID must
// have a record with in-range fields; a missing or malformed record is a
// configuration error and generation must not start.
func NewRegistry(props map[ID]Properties) (*Registry, error) {
	r := &Registry{}
	for id := ID(0); id < idCount; id++ {
		p, ok := props[id]
		if !ok {
			return nil, fmt.Errorf("biome: missing properties for %v", id)
		}
		if p.Name == "" {
			return nil, fmt.Errorf("biome: %v has no name", id)
		}
		for _, f := range []struct {
			name     string
			v        float64
			min, max float64
		}{
			{"temperature", p.Temperature, 0, 1},
			{"humidity", p.Humidity, 0, 1},
			{"rainfall", p.Rainfall, 0, 1},
			{"heightVariation", p.HeightVariation, 0, 1},
			{"heightOffset", p.HeightOffset, -1, 1},
			{"roughness", p.Roughness, 0, 1},
			{"treeDensity", p.TreeDensity, 0, 1},
			{"grassDensity", p.GrassDensity, 0, 1},
			{"flowerDensity", p.FlowerDensity, 0, 1},
		} {
			if f.v < f.min || f.v > f.max {
				return nil, fmt.Errorf("biome: %v %s = %v outside [%v, %v]", id, f.name, f.v, f.min, f.max)
			}
		}
		r.props[id] = p
	}
	return r, nil
}

// DefaultRegistry returns the registry holding the engine's built-in biome
// table.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultProperties())
	if err != nil {
		// The built-in table is static data; failing to validate it is a
		// programming error.
		panic(err)
	}
	return r
}

// Properties returns the record for the biome ID.
func (r *Registry) Properties(id ID) Properties {
	if int(id) >= len(r.props) {
		return r.props[Plains]
	}
	return r.props[id]
}

func defaultProperties() map[ID]Properties {
	return map[ID]Properties{
		Tundra: {
			Name: "Tundra", Temperature: 0.1, Humidity: 0.3, Rainfall: 0.2,
			HeightVariation: 0.3, HeightOffset: 0, Roughness: 0.4,
			Surface: voxel.Snow, SubSurface: voxel.Dirt, Deep: voxel.Stone,
			MapColor:    mgl64.Vec3{0.8, 0.9, 1.0},
			TreeDensity: 0.01, GrassDensity: 0.2, FlowerDensity: 0.01,
		},
		Taiga: {
			Name: "Taiga", Temperature: 0.2, Humidity: 0.5, Rainfall: 0.4,
			HeightVariation: 0.5, HeightOffset: 0.1, Roughness: 0.5,
			Surface: voxel.Grass, SubSurface: voxel.Dirt, Deep: voxel.Stone,
			MapColor:    mgl64.Vec3{0.3, 0.5, 0.3},
			TreeDensity: 0.3, GrassDensity: 0.4, FlowerDensity: 0.05,
		},
		SnowyMountains: {
			Name: "Snowy Mountains", Temperature: 0, Humidity: 0.6, Rainfall: 0.5,
			HeightVariation: 1, HeightOffset: 0.8, Roughness: 0.9,
			Surface: voxel.Snow, SubSurface: voxel.Stone, Deep: voxel.Stone,
			MapColor: mgl64.Vec3{1, 1, 1},
		},
		IcePlains: {
			Name: "Ice Plains", Temperature: 0.05, Humidity: 0.1, Rainfall: 0.1,
			HeightVariation: 0.2, HeightOffset: 0, Roughness: 0.2,
			Surface: voxel.Ice, SubSurface: voxel.Snow, Deep: voxel.Stone,
			MapColor: mgl64.Vec3{0.7, 0.9, 1.0},
		},
		Plains: {
			Name: "Plains", Temperature: 0.5, Humidity: 0.3, Rainfall: 0.4,
			HeightVariation: 0.2, HeightOffset: 0, Roughness: 0.3,
			Surface: voxel.Grass, SubSurface: voxel.Dirt, Deep: voxel.Stone,
			MapColor:    mgl64.Vec3{0.5, 0.8, 0.3},
			TreeDensity: 0.05, GrassDensity: 0.7, FlowerDensity: 0.2,
		},
		Forest: {
			Name: "Forest", Temperature: 0.5, Humidity: 0.6, Rainfall: 0.6,
			HeightVariation: 0.4, HeightOffset: 0.1, Roughness: 0.5,
			Surface: voxel.Grass, SubSurface: voxel.Dirt, Deep: voxel.Stone,
			MapColor:    mgl64.Vec3{0.2, 0.6, 0.2},
			TreeDensity: 0.4, GrassDensity: 0.6, FlowerDensity: 0.15,
		},
		DenseForest: {
			Name: "Dense Forest", Temperature: 0.55, Humidity: 0.8, Rainfall: 0.8,
			HeightVariation: 0.5, HeightOffset: 0.15, Roughness: 0.6,
			Surface: voxel.Grass, SubSurface: voxel.Dirt, Deep: voxel.Stone,
			MapColor:    mgl64.Vec3{0.15, 0.5, 0.15},
			TreeDensity: 0.7, GrassDensity: 0.8, FlowerDensity: 0.1,
		},
		Mountains: {
			Name: "Mountains", Temperature: 0.4, Humidity: 0.4, Rainfall: 0.5,
			HeightVariation: 0.9, HeightOffset: 0.7, Roughness: 0.9,
			Surface: voxel.Stone, SubSurface: voxel.Stone, Deep: voxel.Stone,
			MapColor:    mgl64.Vec3{0.6, 0.6, 0.6},
			TreeDensity: 0.1, GrassDensity: 0.2, FlowerDensity: 0.05,
		},
		Hills: {
			Name: "Hills", Temperature: 0.5, Humidity: 0.5, Rainfall: 0.5,
			HeightVariation: 0.6, HeightOffset: 0.3, Roughness: 0.6,
			Surface: voxel.Grass, SubSurface: voxel.Dirt, Deep: voxel.Stone,
			MapColor:    mgl64.Vec3{0.4, 0.7, 0.3},
			TreeDensity: 0.2, GrassDensity: 0.5, FlowerDensity: 0.1,
		},
		Desert: {
			Name: "Desert", Temperature: 0.8, Humidity: 0.1, Rainfall: 0,
			HeightVariation: 0.3, HeightOffset: 0, Roughness: 0.4,
			Surface: voxel.Sand, SubSurface: voxel.Sand, Deep: voxel.Sandstone,
			MapColor:     mgl64.Vec3{0.9, 0.8, 0.5},
			GrassDensity: 0.05, FlowerDensity: 0.01,
		},
		HotDesert: {
			Name: "Hot Desert", Temperature: 1, Humidity: 0, Rainfall: 0,
			HeightVariation: 0.4, HeightOffset: 0, Roughness: 0.5,
			Surface: voxel.RedSand, SubSurface: voxel.RedSand, Deep: voxel.RedSandstone,
			MapColor: mgl64.Vec3{1, 0.6, 0.3},
		},
		Savanna: {
			Name: "Savanna", Temperature: 0.75, Humidity: 0.3, Rainfall: 0.3,
			HeightVariation: 0.3, HeightOffset: 0, Roughness: 0.4,
			Surface: voxel.Grass, SubSurface: voxel.Dirt, Deep: voxel.Stone,
			MapColor:    mgl64.Vec3{0.8, 0.7, 0.4},
			TreeDensity: 0.08, GrassDensity: 0.4, FlowerDensity: 0.05,
		},
		Jungle: {
			Name: "Jungle", Temperature: 0.9, Humidity: 0.9, Rainfall: 1,
			HeightVariation: 0.5, HeightOffset: 0.1, Roughness: 0.7,
			Surface: voxel.Grass, SubSurface: voxel.Dirt, Deep: voxel.Stone,
			MapColor:    mgl64.Vec3{0.1, 0.7, 0.1},
			TreeDensity: 0.8, GrassDensity: 0.9, FlowerDensity: 0.3,
		},
		Swamp: {
			Name: "Swamp", Temperature: 0.7, Humidity: 1, Rainfall: 0.9,
			HeightVariation: 0.1, HeightOffset: -0.2, Roughness: 0.3,
			Surface: voxel.Mud, SubSurface: voxel.Dirt, Deep: voxel.Stone,
			MapColor:    mgl64.Vec3{0.3, 0.5, 0.3},
			TreeDensity: 0.3, GrassDensity: 0.7, FlowerDensity: 0.2,
		},
		Beach: {
			Name: "Beach", Temperature: 0.6, Humidity: 0.5, Rainfall: 0.3,
			HeightVariation: 0.1, HeightOffset: -0.05, Roughness: 0.2,
			Surface: voxel.Sand, SubSurface: voxel.Sand, Deep: voxel.Stone,
			MapColor:     mgl64.Vec3{0.9, 0.9, 0.7},
			GrassDensity: 0.1,
		},
		Ocean: {
			Name: "Ocean", Temperature: 0.5, Humidity: 1, Rainfall: 0.7,
			HeightVariation: 0.2, HeightOffset: -0.5, Roughness: 0.3,
			Surface: voxel.Sand, SubSurface: voxel.Sand, Deep: voxel.Stone,
			MapColor: mgl64.Vec3{0.2, 0.4, 0.8},
		},
		DeepOcean: {
			Name: "Deep Ocean", Temperature: 0.4, Humidity: 1, Rainfall: 0.7,
			HeightVariation: 0.3, HeightOffset: -0.8, Roughness: 0.4,
			Surface: voxel.Gravel, SubSurface: voxel.Gravel, Deep: voxel.Stone,
			MapColor: mgl64.Vec3{0.1, 0.2, 0.6},
		},
		River: {
			Name: "River", Temperature: 0.5, Humidity: 1, Rainfall: 0.6,
			HeightVariation: 0.1, HeightOffset: -0.15, Roughness: 0.2,
			Surface: voxel.Sand, SubSurface: voxel.Sand, Deep: voxel.Stone,
			MapColor:    mgl64.Vec3{0.3, 0.5, 0.9},
			TreeDensity: 0.05, GrassDensity: 0.3, FlowerDensity: 0.1,
		},
	}
}
