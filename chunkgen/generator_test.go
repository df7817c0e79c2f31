package chunkgen_test

import (
	"testing"

	"github.com/fresh-voxel/engine/chunkgen"
	"github.com/fresh-voxel/engine/voxel"
)

func newGenerator(t *testing.T, seed int64) *chunkgen.Generator {
	t.Helper()
	g, err := chunkgen.NewGenerator(seed, chunkgen.GeneratorConfig{})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return g
}

func chunksEqual(a, b *chunkgen.Chunk) bool {
	if a.Height() != b.Height() {
		return false
	}
	for x := 0; x < chunkgen.ChunkSize; x++ {
		for z := 0; z < chunkgen.ChunkSize; z++ {
			if a.Biome(x, z) != b.Biome(x, z) || a.HeightAt(x, z) != b.HeightAt(x, z) {
				return false
			}
			for y := 0; y < a.Height(); y++ {
				if a.Block(x, y, z) != b.Block(x, y, z) {
					return false
				}
			}
		}
	}
	return true
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	g1 := newGenerator(t, 12345)
	g2 := newGenerator(t, 12345)
	for _, pos := range []chunkgen.ChunkPos{{0, 0}, {3, -2}, {-40, 17}, {625, 125}} {
		if !chunksEqual(g1.Generate(pos), g2.Generate(pos)) {
			t.Fatalf("chunk %v differs across generators with equal seed", pos)
		}
	}
}

func TestGenerateSeedSensitivity(t *testing.T) {
	t.Parallel()

	a := newGenerator(t, 1).Generate(chunkgen.ChunkPos{0, 0})
	b := newGenerator(t, 2).Generate(chunkgen.ChunkPos{0, 0})
	if chunksEqual(a, b) {
		t.Fatal("different seeds produced an identical chunk")
	}
}

// TestChunkMatchesColumns verifies chunk materialisation agrees with direct
// per-column synthesis below the surface. Above the surface the decoration
// pass may add vegetation, so only the terrain itself is compared.
func TestChunkMatchesColumns(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, 777)
	pos := chunkgen.ChunkPos{5, -9}
	c := g.Generate(pos)

	synth := g.Synthesizer()
	for x := 0; x < chunkgen.ChunkSize; x += 5 {
		for z := 0; z < chunkgen.ChunkSize; z += 5 {
			worldX := int(pos.X())*chunkgen.ChunkSize + x
			worldZ := int(pos.Z())*chunkgen.ChunkSize + z
			col := synth.ColumnAt(worldX, worldZ)

			if got := c.Biome(x, z); got != col.Biome {
				t.Errorf("biome at (%d, %d) = %v, want %v", worldX, worldZ, got, col.Biome)
			}
			if got := c.HeightAt(x, z); got != col.Surface {
				t.Errorf("height at (%d, %d) = %d, want %d", worldX, worldZ, got, col.Surface)
			}
			for y := 0; y <= col.Surface; y++ {
				if got := c.Block(x, y, z); got != col.Materials[y] {
					t.Errorf("block at (%d, %d, %d) = %v, want %v", worldX, y, worldZ, got, col.Materials[y])
				}
			}
		}
	}
}

// TestChunkSeams verifies columns on chunk borders match their neighbours'
// edge columns, so chunk-by-chunk generation produces seamless terrain.
func TestChunkSeams(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, 31337)
	left := g.Generate(chunkgen.ChunkPos{0, 0})
	right := g.Generate(chunkgen.ChunkPos{1, 0})

	for z := 0; z < chunkgen.ChunkSize; z++ {
		worldZ := z
		wantH := g.Synthesizer().HeightAt(chunkgen.ChunkSize, worldZ)
		if got := right.HeightAt(0, z); got != wantH {
			t.Errorf("right chunk edge height at z=%d: %d, want %d", z, got, wantH)
		}
		// Heights one column apart across the seam may differ, but the
		// two chunks must agree with the synthesizer, not each other.
		wantH = g.Synthesizer().HeightAt(chunkgen.ChunkSize-1, worldZ)
		if got := left.HeightAt(chunkgen.ChunkSize-1, z); got != wantH {
			t.Errorf("left chunk edge height at z=%d: %d, want %d", z, got, wantH)
		}
	}
}

func TestChunkAccessors(t *testing.T) {
	t.Parallel()

	c := chunkgen.NewChunk(chunkgen.ChunkPos{2, 3}, 128)
	if c.Pos() != (chunkgen.ChunkPos{2, 3}) {
		t.Fatalf("Pos = %v", c.Pos())
	}
	c.SetBlock(4, 60, 9, voxel.Stone)
	if got := c.Block(4, 60, 9); got != voxel.Stone {
		t.Fatalf("Block = %v, want stone", got)
	}
	// Out-of-range heights are ignored rather than panicking.
	c.SetBlock(0, 500, 0, voxel.Stone)
	if got := c.Block(0, 500, 0); got != voxel.Air {
		t.Fatalf("out-of-range Block = %v, want air", got)
	}
}
