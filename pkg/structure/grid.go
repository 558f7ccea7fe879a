package structure

import (
	"sync"

	"github.com/StoreStation/StructCraft/pkg/noise"
	"github.com/StoreStation/StructCraft/pkg/world"
)

// Structure is one generated instance anchored to a grid cell. It draws
// the parts of itself intersecting a chunk; chunks it does not touch
// must be left unchanged.
type Structure interface {
	DrawIntoChunk(c *world.ChunkDesc)
}

// Factory creates the structure for a grid cell, or nil when the cell
// stays empty. It must be pure: the same cell always yields the same
// structure.
type Factory interface {
	CreateStructure(gridX, gridZ, originX, originZ int) Structure
}

// GridGen schedules structures on a semi-random grid: the world is
// tiled into gridSize cells and each cell's structure origin is
// jittered by a coordinate hash, so placement is stable under any
// chunk access order. Implements world.Finisher.
type GridGen struct {
	factory       Factory
	noise         noise.Noise
	gridSize      int
	maxOffset     int
	maxStructSize int

	mu       sync.Mutex
	cache    map[cellKey]Structure
	cacheAge []cellKey
	maxCache int
}

type cellKey struct {
	x, z int
}

// NewGridGen creates a scheduler. maxStructSize is the largest reach of
// a structure from its origin, in blocks; it widens the cell scan so a
// structure is found from every chunk it touches.
func NewGridGen(factory Factory, seed int32, gridSize, maxOffset, maxStructSize int) *GridGen {
	return &GridGen{
		factory:       factory,
		noise:         noise.New(seed),
		gridSize:      gridSize,
		maxOffset:     maxOffset,
		maxStructSize: maxStructSize,
		cache:         make(map[cellKey]Structure),
		maxCache:      96,
	}
}

// GenFinish draws every structure whose cell could reach the chunk.
// The lock covers creation and drawing, so structures that track
// drawing state (ground snapping) never run concurrently.
func (g *GridGen) GenFinish(c *world.ChunkDesc) {
	g.mu.Lock()
	defer g.mu.Unlock()

	minX := c.GetChunkX()*world.ChunkWidth - g.maxStructSize
	maxX := c.GetChunkX()*world.ChunkWidth + world.ChunkWidth + g.maxStructSize
	minZ := c.GetChunkZ()*world.ChunkWidth - g.maxStructSize
	maxZ := c.GetChunkZ()*world.ChunkWidth + world.ChunkWidth + g.maxStructSize

	for gz := world.DivFloor(minZ, g.gridSize); gz <= world.DivFloor(maxZ, g.gridSize); gz++ {
		for gx := world.DivFloor(minX, g.gridSize); gx <= world.DivFloor(maxX, g.gridSize); gx++ {
			if s := g.structureForCell(gx, gz); s != nil {
				s.DrawIntoChunk(c)
			}
		}
	}
}

// structureForCell returns the cached structure for a cell, creating it
// on first access. Empty cells are cached too, as nil entries.
func (g *GridGen) structureForCell(gx, gz int) Structure {
	key := cellKey{gx, gz}
	if s, ok := g.cache[key]; ok {
		return s
	}

	originX := gx*g.gridSize + int(g.noise.IntNoise2D(int32(gx)+3, int32(gz)+5)/7)%g.maxOffset
	originZ := gz*g.gridSize + int(g.noise.IntNoise2D(int32(gx)-3, int32(gz)-5)/7)%g.maxOffset
	s := g.factory.CreateStructure(gx, gz, originX, originZ)

	if len(g.cacheAge) >= g.maxCache {
		oldest := g.cacheAge[0]
		g.cacheAge = g.cacheAge[1:]
		delete(g.cache, oldest)
	}
	g.cache[key] = s
	g.cacheAge = append(g.cacheAge, key)
	return s
}
