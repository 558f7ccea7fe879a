package village

import (
	"github.com/StoreStation/StructCraft/pkg/noise"
	"github.com/StoreStation/StructCraft/pkg/structure"
	"github.com/StoreStation/StructCraft/pkg/world"
)

// Gen decides per grid cell whether a village exists and with which
// style. It implements structure.Factory for the grid scheduler.
type Gen struct {
	seed      int32
	noise     noise.Noise
	biomeGen  world.BiomeGen
	heightGen world.HeightGen
	styles    *Registry

	maxDepth   int
	maxSize    int
	minDensity int
	maxDensity int
}

// NewGen creates the village factory. minDensity and maxDensity are in
// [0, 100]; maxSize is the village radius in blocks.
func NewGen(seed int32, biomeGen world.BiomeGen, heightGen world.HeightGen, styles *Registry, maxDepth, maxSize, minDensity, maxDensity int) *Gen {
	return &Gen{
		seed:       seed,
		noise:      noise.New(seed + 1000),
		biomeGen:   biomeGen,
		heightGen:  heightGen,
		styles:     styles,
		maxDepth:   maxDepth,
		maxSize:    maxSize,
		minDensity: minDensity,
		maxDensity: maxDensity,
	}
}

// CreateStructure returns the village for a grid cell, or nil. The
// biomes of the origin's chunk gate the cell: any biome outside the
// desert and plains families aborts it. When both families appear the
// last scanned cell wins; in practice the grid spacing is smaller than
// a biome, so mixed chunks are rare.
func (g *Gen) CreateStructure(gridX, gridZ, originX, originZ int) structure.Structure {
	chunkX, chunkZ := world.BlockToChunk(originX, originZ)
	biomes := g.biomeGen.GenBiomes(chunkX, chunkZ)

	// One hash picks the style candidates and the density, so a cell's
	// character is fixed before the biome scan.
	rnd := int(g.noise.IntNoise2D(int32(originX), int32(originZ)) / 11)
	desertPool := g.styles.Desert[rnd%len(g.styles.Desert)]
	plainsPool := g.styles.Plains[rnd%len(g.styles.Plains)]

	var pool *PiecePool
	for _, b := range biomes {
		switch b {
		case world.BiomeDesert, world.BiomeDesertM:
			pool = desertPool
		case world.BiomePlains, world.BiomeSavanna, world.BiomeSavannaM, world.BiomeSunflowerPlains:
			pool = plainsPool
		default:
			return nil
		}
	}
	if pool == nil {
		return nil
	}

	density := g.minDensity
	if g.maxDensity > g.minDensity {
		density = g.minDensity + rnd%(g.maxDensity-g.minDensity)
	}

	v := NewVillage(g.seed, originX, originZ, g.maxDepth, g.maxSize, density, pool, g.heightGen)
	if v == nil {
		return nil
	}
	return v
}
