package chunkgen

import (
	"fmt"

	"github.com/fresh-voxel/engine/biome"
	"github.com/fresh-voxel/engine/climate"
	"github.com/fresh-voxel/engine/internal/worldseed"
	"github.com/fresh-voxel/engine/noise"
	"github.com/fresh-voxel/engine/terrain"
	"github.com/fresh-voxel/engine/voxel"
)

// elevationLabel seeds the single elevation field shared by biome
// classification and terrain synthesis.
const elevationLabel = "terrain/elevation"

// Generator materialises chunks from a world seed. All state is immutable
// after construction, so one Generator may serve any number of goroutines.
type Generator struct {
	seed  int64
	synth *terrain.Synthesizer
	cls   *biome.Classifier
	reg   *biome.Registry
	sea   int
}

// GeneratorConfig assembles the sub-system configurations of a Generator.
// Zero values select the engine defaults throughout.
type GeneratorConfig struct {
	Climate    climate.Config
	Thresholds biome.Thresholds
	Terrain    terrain.Config
	// Registry overrides the built-in biome table. Nil selects the
	// default registry.
	Registry *biome.Registry
	// ElevationFrequency and ElevationOctaves shape the shared elevation
	// field. Defaults: 0.001 and 4.
	ElevationFrequency float64
	ElevationOctaves   int
}

func (c GeneratorConfig) withDefaults() GeneratorConfig {
	if c.Thresholds == (biome.Thresholds{}) {
		c.Thresholds = biome.DefaultThresholds()
	}
	if c.Registry == nil {
		c.Registry = biome.DefaultRegistry()
	}
	if c.ElevationFrequency <= 0 {
		c.ElevationFrequency = 0.001
	}
	if c.ElevationOctaves <= 0 {
		c.ElevationOctaves = 4
	}
	return c
}

// NewGenerator builds a Generator for the seed. Configuration errors surface
// here; generation itself cannot fail.
func NewGenerator(seed int64, conf GeneratorConfig) (*Generator, error) {
	conf = conf.withDefaults()

	model, err := climate.NewModel(seed, conf.Climate)
	if err != nil {
		return nil, fmt.Errorf("chunkgen: climate model: %w", err)
	}
	elevation, err := noise.NewFractal(noise.NewSimplex(worldseed.Derive(seed, elevationLabel)), noise.FractalConfig{
		Octaves:     conf.ElevationOctaves,
		Frequency:   conf.ElevationFrequency,
		Persistence: 0.5,
	})
	if err != nil {
		return nil, fmt.Errorf("chunkgen: elevation field: %w", err)
	}
	cls, err := biome.NewClassifier(model, elevation, conf.Thresholds)
	if err != nil {
		return nil, fmt.Errorf("chunkgen: classifier: %w", err)
	}
	blender := biome.NewBlender(cls, conf.Registry)
	synth, err := terrain.New(seed, conf.Registry, cls, blender, conf.Terrain)
	if err != nil {
		return nil, fmt.Errorf("chunkgen: synthesizer: %w", err)
	}
	return &Generator{
		seed:  seed,
		synth: synth,
		cls:   cls,
		reg:   conf.Registry,
		sea:   synth.Config().SeaLevel,
	}, nil
}

// Seed returns the world seed the generator was built with.
func (g *Generator) Seed() int64 { return g.seed }

// Synthesizer exposes the underlying terrain synthesizer for per-column
// queries outside chunk materialisation.
func (g *Generator) Synthesizer() *terrain.Synthesizer { return g.synth }

// Classifier exposes the biome classifier sharing the generator's elevation
// field.
func (g *Generator) Classifier() *biome.Classifier { return g.cls }

// Generate materialises the chunk at pos and returns it.
func (g *Generator) Generate(pos ChunkPos) *Chunk {
	c := NewChunk(pos, g.synth.Config().WorldHeight)
	g.GenerateChunk(pos, c)
	return c
}

// GenerateChunk fills c with terrain for the chunk at pos. The chunk's
// height must match the synthesizer's world height.
func (g *Generator) GenerateChunk(pos ChunkPos, c *Chunk) {
	baseX := int(pos.X()) * ChunkSize
	baseZ := int(pos.Z()) * ChunkSize

	var cols [ChunkSize][ChunkSize]terrain.Column
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			col := g.synth.ColumnAt(baseX+x, baseZ+z)
			cols[x][z] = col

			c.SetBiome(x, z, col.Biome)
			c.SetHeight(x, z, col.Surface)
			for y := 0; y < len(col.Materials) && y < c.Height(); y++ {
				c.SetBlock(x, y, z, col.Materials[y])
			}
		}
	}

	// Decoration pass. Vegetation only takes root on grassy land above
	// sea level; canopy and trunks stay inside the chunk so generation
	// of one chunk never reaches into a neighbour.
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			col := cols[x][z]
			if col.Biome.Aquatic() || col.Surface <= g.sea {
				continue
			}
			if c.Block(x, col.Surface, z) != voxel.Grass {
				continue
			}
			veg := g.synth.VegetationAt(baseX+x, baseZ+z, col.Properties)
			switch {
			case veg.Tree && x >= 1 && x < ChunkSize-1 && z >= 1 && z < ChunkSize-1:
				g.plantTree(c, x, col.Surface, z)
			case veg.Grass:
				c.SetBlock(x, col.Surface+1, z, voxel.TallGrass)
			case veg.Flower:
				c.SetBlock(x, col.Surface+1, z, voxel.Flower)
			}
		}
	}
}

// plantTree places a small tree with its trunk base directly above surface.
func (g *Generator) plantTree(c *Chunk, x, surface, z int) {
	const trunkHeight = 4
	for dy := 1; dy <= trunkHeight; dy++ {
		c.SetBlock(x, surface+dy, z, voxel.Wood)
	}
	top := surface + trunkHeight
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			for dy := 0; dy <= 1; dy++ {
				if dx == 0 && dz == 0 && dy == 0 {
					continue
				}
				if c.Block(x+dx, top+dy, z+dz) == voxel.Air {
					c.SetBlock(x+dx, top+dy, z+dz, voxel.Leaves)
				}
			}
		}
	}
	c.SetBlock(x, top+2, z, voxel.Leaves)
}
