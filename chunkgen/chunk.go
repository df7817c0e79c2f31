// Package chunkgen materialises terrain into chunks and runs the background
// generation pipeline: a bounded worker pool that pre-computes chunks off the
// main thread, with optional write-through to a LevelDB-backed column store.
package chunkgen

import (
	"github.com/fresh-voxel/engine/biome"
	"github.com/fresh-voxel/engine/voxel"
)

// ChunkSize is the horizontal edge length of a chunk in voxels.
const ChunkSize = 16

// ChunkPos is the position of a chunk in chunk coordinates.
type ChunkPos [2]int32

// X returns the X coordinate of the chunk position.
func (p ChunkPos) X() int32 { return p[0] }

// Z returns the Z coordinate of the chunk position.
func (p ChunkPos) Z() int32 { return p[1] }

// key packs the chunk position into a single int64 for use as an index key.
func (p ChunkPos) key() int64 {
	return int64(p[0])<<32 | int64(uint32(p[1]))
}

// Chunk holds the generated voxel data of a 16x16 column area. A chunk is
// not safe for concurrent mutation; the pool hands each generated chunk to
// exactly one consumer.
type Chunk struct {
	pos    ChunkPos
	height int

	blocks  []voxel.Material
	biomes  [ChunkSize * ChunkSize]biome.ID
	heights [ChunkSize * ChunkSize]int16
}

// NewChunk creates an empty chunk of the given height at pos.
func NewChunk(pos ChunkPos, height int) *Chunk {
	return &Chunk{
		pos:    pos,
		height: height,
		blocks: make([]voxel.Material, ChunkSize*ChunkSize*height),
	}
}

// Pos returns the chunk's position.
func (c *Chunk) Pos() ChunkPos { return c.pos }

// Height returns the vertical extent of the chunk in voxels.
func (c *Chunk) Height() int { return c.height }

func (c *Chunk) blockIndex(x, y, z int) int {
	return (x*ChunkSize+z)*c.height + y
}

// Block returns the material at the local chunk coordinates.
func (c *Chunk) Block(x, y, z int) voxel.Material {
	if y < 0 || y >= c.height {
		return voxel.Air
	}
	return c.blocks[c.blockIndex(x, y, z)]
}

// SetBlock sets the material at the local chunk coordinates. Out-of-range
// heights are ignored.
func (c *Chunk) SetBlock(x, y, z int, m voxel.Material) {
	if y < 0 || y >= c.height {
		return
	}
	c.blocks[c.blockIndex(x, y, z)] = m
}

// Biome returns the dominant biome of the local column.
func (c *Chunk) Biome(x, z int) biome.ID {
	return c.biomes[x*ChunkSize+z]
}

// SetBiome sets the dominant biome of the local column.
func (c *Chunk) SetBiome(x, z int, id biome.ID) {
	c.biomes[x*ChunkSize+z] = id
}

// HeightAt returns the surface height of the local column.
func (c *Chunk) HeightAt(x, z int) int {
	return int(c.heights[x*ChunkSize+z])
}

// SetHeight sets the surface height of the local column.
func (c *Chunk) SetHeight(x, z, h int) {
	c.heights[x*ChunkSize+z] = int16(h)
}
