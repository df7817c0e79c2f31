// Package terrain synthesises surface heights and voxel materials for world
// columns from blended biome properties and terrain noise. The synthesizer is
// stateless per query and safe for concurrent use.
package terrain

import (
	"fmt"

	"github.com/fresh-voxel/engine/biome"
	"github.com/fresh-voxel/engine/internal/worldseed"
	"github.com/fresh-voxel/engine/noise"
	"github.com/fresh-voxel/engine/voxel"
)

// Derived-seed labels for the synthesizer's own noise fields.
const (
	roughnessLabel = "terrain/roughness"
	caveLabel      = "terrain/caves"
)

// Config holds the tunable shape parameters of the synthesizer. The zero
// value is usable; defaults are applied by withDefaults.
type Config struct {
	// WorldHeight is the vertical extent of the world in voxels. Defaults
	// to 128.
	WorldHeight int
	// BaseHeight is the surface height of a flat biome with zero offset.
	// Defaults to 64.
	BaseHeight int
	// SeaLevel is the height up to which open terrain is flooded.
	// Defaults to 62.
	SeaLevel int
	// OffsetScale converts a biome's normalised height offset into
	// voxels. Defaults to 32.
	OffsetScale float64
	// VariationScale converts a biome's normalised height variation into
	// voxels of roughness amplitude. Defaults to 16.
	VariationScale float64
	// BlendRadius is the sampling radius handed to the biome blender in
	// transition zones. Defaults to 64.
	BlendRadius float64
	// TransitionCheckDistance is the offset, in voxels, at which
	// neighbouring biomes are probed to detect a transition zone.
	// Defaults to 16.
	TransitionCheckDistance int
}

func (c Config) withDefaults() Config {
	if c.WorldHeight <= 0 {
		c.WorldHeight = 128
	}
	if c.BaseHeight <= 0 {
		c.BaseHeight = 64
	}
	if c.SeaLevel <= 0 {
		c.SeaLevel = 62
	}
	if c.OffsetScale <= 0 {
		c.OffsetScale = 32
	}
	if c.VariationScale <= 0 {
		c.VariationScale = 16
	}
	if c.BlendRadius <= 0 {
		c.BlendRadius = 64
	}
	if c.TransitionCheckDistance <= 0 {
		c.TransitionCheckDistance = 16
	}
	return c
}

// Material depth bands below the surface.
const (
	subSurfaceDepth = 1
	deepDepth       = 4
)

// Cave carving parameters. Caves only open up well below the surface so they
// never puncture the material banding visible from above.
const (
	caveMinDepth  = 5
	caveThreshold = 0.55
	caveFrequency = 0.05
)

// Column is the synthesised result for one world column.
type Column struct {
	// Biome is the dominant biome of the column.
	Biome biome.ID
	// Surface is the terrain height of the column.
	Surface int
	// Transitional reports whether blended properties were used.
	Transitional bool
	// Materials holds one material per voxel, index 0 at the bottom of
	// the world. Its length is Config.WorldHeight.
	Materials []voxel.Material
	// Properties are the biome properties the column was shaped with.
	Properties biome.Properties
}

// Synthesizer turns biome properties and noise into concrete terrain.
type Synthesizer struct {
	registry  *biome.Registry
	classify  *biome.Classifier
	blender   *biome.Blender
	roughness *noise.Fractal
	caves     *noise.Fractal
	veg       *vegetation
	conf      Config
}

// New builds a Synthesizer. The classifier must share its elevation field
// with no other noise configuration than the one used here; both consume the
// same injected field, keeping biome placement and terrain height consistent.
func New(seed int64, reg *biome.Registry, cls *biome.Classifier, bl *biome.Blender, conf Config) (*Synthesizer, error) {
	if reg == nil || cls == nil || bl == nil {
		return nil, fmt.Errorf("terrain: registry, classifier and blender are required")
	}
	conf = conf.withDefaults()

	rough, err := noise.NewFractal(noise.NewSimplex(worldseed.Derive(seed, roughnessLabel)), noise.FractalConfig{
		Octaves:     4,
		Frequency:   0.01,
		Persistence: 0.5,
	})
	if err != nil {
		return nil, err
	}
	caves, err := noise.NewFractal(noise.NewSimplex(worldseed.Derive(seed, caveLabel)), noise.FractalConfig{
		Octaves:     2,
		Frequency:   caveFrequency,
		Persistence: 0.5,
	})
	if err != nil {
		return nil, err
	}
	return &Synthesizer{
		registry:  reg,
		classify:  cls,
		blender:   bl,
		roughness: rough,
		caves:     caves,
		veg:       newVegetation(seed),
		conf:      conf,
	}, nil
}

// Config returns the synthesizer's effective configuration.
func (s *Synthesizer) Config() Config { return s.conf }

// PropertiesAt returns the biome properties shaping the column. Columns in a
// transition zone pay for blending; all other columns use the raw registry
// record, which is the cheap path and the common case.
func (s *Synthesizer) PropertiesAt(worldX, worldZ int) (biome.Blended, bool) {
	if s.blender.TransitionZone(worldX, worldZ, s.conf.TransitionCheckDistance) {
		return s.blender.BlendedProperties(worldX, worldZ, s.conf.BlendRadius), true
	}
	id := s.classify.At(worldX, worldZ)
	return biome.Blended{Properties: s.registry.Properties(id), Dominant: id}, false
}

// HeightAt returns the surface height of the column.
func (s *Synthesizer) HeightAt(worldX, worldZ int) int {
	props, _ := s.PropertiesAt(worldX, worldZ)
	return s.heightFor(props.Properties, worldX, worldZ)
}

func (s *Synthesizer) heightFor(p biome.Properties, worldX, worldZ int) int {
	// Roughness noise is recentred to [-1, 1] so variation cuts valleys
	// as well as raising peaks.
	r := s.roughness.Sample2D(float64(worldX), float64(worldZ))*2 - 1

	h := float64(s.conf.BaseHeight) + p.HeightOffset*s.conf.OffsetScale + p.HeightVariation*s.conf.VariationScale*r
	height := int(h)
	if height < 1 {
		height = 1
	}
	if height >= s.conf.WorldHeight {
		height = s.conf.WorldHeight - 1
	}
	return height
}

// MaterialAt returns the material of a single voxel. Callers filling whole
// columns should use ColumnAt instead, which computes the column properties
// once.
func (s *Synthesizer) MaterialAt(worldX, y, worldZ int) voxel.Material {
	props, _ := s.PropertiesAt(worldX, worldZ)
	surface := s.heightFor(props.Properties, worldX, worldZ)
	return s.materialFor(props.Properties, surface, worldX, y, worldZ)
}

func (s *Synthesizer) materialFor(p biome.Properties, surface, worldX, y, worldZ int) voxel.Material {
	if y == 0 {
		return voxel.Bedrock
	}
	if y > surface {
		if y <= s.conf.SeaLevel {
			return voxel.Water
		}
		return voxel.Air
	}

	depth := surface - y
	if depth >= caveMinDepth {
		if s.caves.Sample3D(float64(worldX), float64(y), float64(worldZ)) > caveThreshold {
			return voxel.Air
		}
	}
	switch {
	case depth < subSurfaceDepth:
		return p.Surface
	case depth < deepDepth:
		return p.SubSurface
	default:
		return p.Deep
	}
}

// ColumnAt synthesises the full column at (worldX, worldZ).
func (s *Synthesizer) ColumnAt(worldX, worldZ int) Column {
	props, transitional := s.PropertiesAt(worldX, worldZ)
	surface := s.heightFor(props.Properties, worldX, worldZ)

	col := Column{
		Biome:        props.Dominant,
		Surface:      surface,
		Transitional: transitional,
		Materials:    make([]voxel.Material, s.conf.WorldHeight),
		Properties:   props.Properties,
	}
	for y := 0; y < s.conf.WorldHeight; y++ {
		col.Materials[y] = s.materialFor(props.Properties, surface, worldX, y, worldZ)
	}
	return col
}

// VegetationAt returns the deterministic vegetation decision for the column
// under the given properties.
func (s *Synthesizer) VegetationAt(worldX, worldZ int, p biome.Properties) Vegetation {
	return s.veg.at(worldX, worldZ, p)
}
