package world

// TerrainGen fills chunks with base terrain: bedrock floor, biome
// filler below the surface, biome surface block, and sea-level water.
// Structures are applied afterwards by finishers.
type TerrainGen struct {
	biomes  BiomeGen
	heights HeightGen
}

// NewTerrainGen creates the base terrain pass.
func NewTerrainGen(biomes BiomeGen, heights HeightGen) *TerrainGen {
	return &TerrainGen{biomes: biomes, heights: heights}
}

// GenChunk generates the base terrain for chunk (chunkX, chunkZ).
func (t *TerrainGen) GenChunk(chunkX, chunkZ int) *ChunkDesc {
	c := NewChunkDesc(chunkX, chunkZ)
	biomes := t.biomes.GenBiomes(chunkX, chunkZ)
	heights := t.heights.GenHeightMap(chunkX, chunkZ)

	for z := 0; z < ChunkWidth; z++ {
		for x := 0; x < ChunkWidth; x++ {
			biome := biomes.At(x, z)
			c.SetBiome(x, z, biome)
			surface, filler := biome.SurfaceBlocks()
			surfH := heights.At(x, z)

			c.SetBlockType(x, 0, z, BlockBedrock)
			for y := 1; y < surfH; y++ {
				c.SetBlockType(x, y, z, filler)
			}
			if surfH < WaterLevel {
				// Sand floor under water, as on beaches
				c.SetBlockType(x, surfH, z, BlockSand)
				for y := surfH + 1; y <= WaterLevel; y++ {
					c.SetBlockType(x, y, z, BlockWater)
				}
			} else {
				c.SetBlockType(x, surfH, z, surface)
			}
		}
	}
	return c
}
