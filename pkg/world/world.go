package world

import "sync"

// Finisher applies a generation pass on top of base terrain. The
// structure scheduler implements this.
type Finisher interface {
	GenFinish(c *ChunkDesc)
}

type chunkKey struct {
	x, z int
}

// World produces fully generated chunks and caches them. Chunk
// generation runs under the world lock, so finishers that keep
// per-structure state are never invoked concurrently.
type World struct {
	terrain   *TerrainGen
	finishers []Finisher

	mu     sync.Mutex
	chunks map[chunkKey]*ChunkDesc
}

// NewWorld creates a world from a terrain pass and finisher passes,
// applied in order.
func NewWorld(terrain *TerrainGen, finishers ...Finisher) *World {
	return &World{
		terrain:   terrain,
		finishers: finishers,
		chunks:    make(map[chunkKey]*ChunkDesc),
	}
}

// Chunk returns the generated chunk at (chunkX, chunkZ), generating it
// on first access.
func (w *World) Chunk(chunkX, chunkZ int) *ChunkDesc {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := chunkKey{chunkX, chunkZ}
	if c, ok := w.chunks[key]; ok {
		return c
	}
	c := w.terrain.GenChunk(chunkX, chunkZ)
	for _, f := range w.finishers {
		f.GenFinish(c)
	}
	w.chunks[key] = c
	return c
}

// GetBlock returns the block state at a world position, generating the
// containing chunk if needed.
func (w *World) GetBlock(x, y, z int) uint16 {
	chunkX, chunkZ := BlockToChunk(x, z)
	relX, relZ := BlockToRel(x, z)
	return w.Chunk(chunkX, chunkZ).GetBlockType(relX, y, relZ)
}
