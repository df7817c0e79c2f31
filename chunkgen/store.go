package chunkgen

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/df-mc/goleveldb/leveldb"
	"github.com/fresh-voxel/engine/biome"
	"github.com/fresh-voxel/engine/voxel"
)

// storeVersion is bumped whenever the chunk encoding changes. Chunks written
// with an older version are treated as cache misses and regenerated.
const storeVersion = 1

// Store persists generated chunks in a LevelDB database so that repeated
// visits to the same region skip generation entirely. The store is a cache:
// a missing or stale entry is never an error.
type Store struct {
	db   *leveldb.DB
	seed int64
}

// OpenStore opens (or creates) the chunk store at path for the world seed.
// Chunks are keyed by seed, so one database may safely hold multiple worlds.
func OpenStore(path string, seed int64) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("chunkgen: open store: %w", err)
	}
	return &Store{db: db, seed: seed}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) chunkKey(pos ChunkPos) []byte {
	key := make([]byte, 3+8+4+4)
	copy(key, "col")
	binary.LittleEndian.PutUint64(key[3:], uint64(s.seed))
	binary.LittleEndian.PutUint32(key[11:], uint32(pos.X()))
	binary.LittleEndian.PutUint32(key[15:], uint32(pos.Z()))
	return key
}

// Put writes the chunk to the store.
func (s *Store) Put(c *Chunk) error {
	if err := s.db.Put(s.chunkKey(c.Pos()), encodeChunk(c), nil); err != nil {
		return fmt.Errorf("chunkgen: store chunk %v: %w", c.Pos(), err)
	}
	return nil
}

// Get loads the chunk at pos. The second return value reports whether the
// chunk was present; absence is not an error.
func (s *Store) Get(pos ChunkPos) (*Chunk, bool, error) {
	data, err := s.db.Get(s.chunkKey(pos), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("chunkgen: load chunk %v: %w", pos, err)
	}
	c, err := decodeChunk(pos, data)
	if err != nil {
		// A corrupt or outdated entry behaves like a miss so the chunk
		// is simply regenerated.
		return nil, false, nil
	}
	return c, true, nil
}

func encodeChunk(c *Chunk) []byte {
	buf := make([]byte, 0, 1+4+len(c.blocks)+len(c.biomes)+len(c.heights)*2)
	buf = append(buf, storeVersion)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(c.height))
	for _, b := range c.blocks {
		buf = append(buf, byte(b))
	}
	for _, b := range c.biomes {
		buf = append(buf, byte(b))
	}
	for _, h := range c.heights {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(h))
	}
	return buf
}

func decodeChunk(pos ChunkPos, data []byte) (*Chunk, error) {
	if len(data) < 5 || data[0] != storeVersion {
		return nil, errors.New("chunkgen: unsupported chunk encoding")
	}
	height := int(binary.LittleEndian.Uint32(data[1:5]))
	want := 5 + ChunkSize*ChunkSize*height + ChunkSize*ChunkSize + ChunkSize*ChunkSize*2
	if height <= 0 || len(data) != want {
		return nil, errors.New("chunkgen: truncated chunk data")
	}
	c := NewChunk(pos, height)
	off := 5
	for i := range c.blocks {
		c.blocks[i] = voxel.Material(data[off+i])
	}
	off += len(c.blocks)
	for i := range c.biomes {
		c.biomes[i] = biome.ID(data[off+i])
	}
	off += len(c.biomes)
	for i := range c.heights {
		c.heights[i] = int16(binary.LittleEndian.Uint16(data[off+i*2:]))
	}
	return c, nil
}
