package terrain

import (
	"github.com/fresh-voxel/engine/biome"
	"github.com/segmentio/fasthash/fnv1a"
)

// Vegetation is the per-column vegetation decision. At most one of the three
// flags is set; trees win over grass, grass over flowers.
type Vegetation struct {
	Tree   bool
	Grass  bool
	Flower bool
}

// vegetation rolls deterministic dice per column. Each roll hashes the world
// seed, the column coordinates and a per-kind salt, so the three decisions
// are independent of each other and of every noise field.
type vegetation struct {
	seed uint64
}

func newVegetation(seed int64) *vegetation {
	return &vegetation{seed: uint64(seed)}
}

const (
	saltTree   = 0x74726565
	saltGrass  = 0x67726173
	saltFlower = 0x666c6f77
)

func (v *vegetation) roll(worldX, worldZ int, salt uint64) float64 {
	h := fnv1a.Init64
	h = fnv1a.AddUint64(h, v.seed)
	h = fnv1a.AddUint64(h, uint64(int64(worldX)))
	h = fnv1a.AddUint64(h, uint64(int64(worldZ)))
	h = fnv1a.AddUint64(h, salt)
	// 53 bits of hash give a uniform float in [0, 1).
	return float64(h>>11) / (1 << 53)
}

func (v *vegetation) at(worldX, worldZ int, p biome.Properties) Vegetation {
	// Tree density is interpreted per column area: a density of 1 covers
	// roughly one in eight columns.
	if v.roll(worldX, worldZ, saltTree) < p.TreeDensity/8 {
		return Vegetation{Tree: true}
	}
	if v.roll(worldX, worldZ, saltGrass) < p.GrassDensity/4 {
		return Vegetation{Grass: true}
	}
	if v.roll(worldX, worldZ, saltFlower) < p.FlowerDensity/8 {
		return Vegetation{Flower: true}
	}
	return Vegetation{}
}
