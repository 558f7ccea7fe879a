package world

import (
	"bytes"
	"encoding/binary"
)

const (
	// ChunkWidth is the X/Z extent of a chunk column.
	ChunkWidth = 16
	// ChunkHeight is the vertical extent of the world.
	ChunkHeight = 256

	sectionHeight    = 16
	sectionsPerChunk = ChunkHeight / sectionHeight
	sectionBlocks    = ChunkWidth * ChunkWidth * sectionHeight
)

// HeightMap stores one surface Y per column of a chunk, indexed by the
// chunk-local (x, z) of the column.
type HeightMap [ChunkWidth * ChunkWidth]int

// At returns the surface height of column (x, z), chunk-local.
func (h *HeightMap) At(x, z int) int {
	return h[z*ChunkWidth+x]
}

// Set stores the surface height of column (x, z), chunk-local.
func (h *HeightMap) Set(x, z, y int) {
	h[z*ChunkWidth+x] = y
}

// DivFloor returns a / b, rounding towards negative infinity.
func DivFloor(a, b int) int {
	if a < 0 && a%b != 0 {
		return a/b - 1
	}
	return a / b
}

// BlockToChunk converts world block X/Z into the coordinates of the
// chunk containing the block.
func BlockToChunk(x, z int) (chunkX, chunkZ int) {
	return DivFloor(x, ChunkWidth), DivFloor(z, ChunkWidth)
}

// BlockToRel converts world block X/Z into chunk-local coordinates.
func BlockToRel(x, z int) (relX, relZ int) {
	return x - DivFloor(x, ChunkWidth)*ChunkWidth, z - DivFloor(z, ChunkWidth)*ChunkWidth
}

// ChunkDesc is one chunk column being generated; the terrain filler and
// every structure generator write into it. Coordinates on the accessors
// are chunk-local; out-of-range reads return air and out-of-range
// writes are dropped.
type ChunkDesc struct {
	chunkX, chunkZ int
	blocks         [ChunkWidth * ChunkWidth * ChunkHeight]uint16
	biomes         BiomeMap
}

// NewChunkDesc creates an all-air chunk at the given chunk coordinates.
func NewChunkDesc(chunkX, chunkZ int) *ChunkDesc {
	return &ChunkDesc{chunkX: chunkX, chunkZ: chunkZ}
}

// GetChunkX returns the chunk X coordinate (world X / ChunkWidth).
func (c *ChunkDesc) GetChunkX() int { return c.chunkX }

// GetChunkZ returns the chunk Z coordinate.
func (c *ChunkDesc) GetChunkZ() int { return c.chunkZ }

func blockIndex(x, y, z int) int {
	return (y*ChunkWidth+z)*ChunkWidth + x
}

func inChunk(x, y, z int) bool {
	return x >= 0 && x < ChunkWidth && z >= 0 && z < ChunkWidth && y >= 0 && y < ChunkHeight
}

// GetBlockType returns the block state at chunk-local (x, y, z).
func (c *ChunkDesc) GetBlockType(x, y, z int) uint16 {
	if !inChunk(x, y, z) {
		return BlockAir
	}
	return c.blocks[blockIndex(x, y, z)]
}

// SetBlockType sets the block state at chunk-local (x, y, z).
func (c *ChunkDesc) SetBlockType(x, y, z int, state uint16) {
	if !inChunk(x, y, z) {
		return
	}
	c.blocks[blockIndex(x, y, z)] = state
}

// SetBiome sets the biome of column (x, z), chunk-local.
func (c *ChunkDesc) SetBiome(x, z int, b Biome) {
	c.biomes[z*ChunkWidth+x] = b
}

// BiomeAt returns the biome of column (x, z), chunk-local.
func (c *ChunkDesc) BiomeAt(x, z int) Biome {
	return c.biomes[z*ChunkWidth+x]
}

// TopBlock returns the state and Y of the highest non-air block in the
// column, or (air, -1) for an empty column.
func (c *ChunkDesc) TopBlock(x, z int) (uint16, int) {
	for y := ChunkHeight - 1; y >= 0; y-- {
		if s := c.blocks[blockIndex(x, y, z)]; s != BlockAir {
			return s, y
		}
	}
	return BlockAir, -1
}

// Serialize converts the chunk into the 1.8 chunk-data layout: block
// data for every non-empty 16-block section, then a biome byte per
// column. The returned bitmask flags the sections present.
func (c *ChunkDesc) Serialize() ([]byte, uint16) {
	var mask uint16
	for s := 0; s < sectionsPerChunk; s++ {
		for i := s * sectionBlocks; i < (s+1)*sectionBlocks; i++ {
			if c.blocks[i] != BlockAir {
				mask |= 1 << uint(s)
				break
			}
		}
	}

	var buf bytes.Buffer
	var tmp [2]byte
	for s := 0; s < sectionsPerChunk; s++ {
		if mask&(1<<uint(s)) == 0 {
			continue
		}
		for i := s * sectionBlocks; i < (s+1)*sectionBlocks; i++ {
			binary.LittleEndian.PutUint16(tmp[:], c.blocks[i])
			buf.Write(tmp[:])
		}
	}
	for _, b := range c.biomes {
		buf.WriteByte(byte(b))
	}
	return buf.Bytes(), mask
}
