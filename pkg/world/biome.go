package world

import "github.com/StoreStation/StructCraft/pkg/noise"

// Biome identifies a biome by its Minecraft numeric ID.
type Biome byte

const (
	BiomeOcean           Biome = 0
	BiomePlains          Biome = 1
	BiomeDesert          Biome = 2
	BiomeExtremeHills    Biome = 3
	BiomeForest          Biome = 4
	BiomeSnowyTundra     Biome = 12
	BiomeSavanna         Biome = 35
	BiomeSunflowerPlains Biome = 129
	BiomeDesertM         Biome = 130
	BiomeSavannaM        Biome = 163
)

// Name returns a human-readable biome name.
func (b Biome) Name() string {
	switch b {
	case BiomeOcean:
		return "Ocean"
	case BiomePlains:
		return "Plains"
	case BiomeDesert:
		return "Desert"
	case BiomeExtremeHills:
		return "Extreme Hills"
	case BiomeForest:
		return "Forest"
	case BiomeSnowyTundra:
		return "Snowy Tundra"
	case BiomeSavanna:
		return "Savanna"
	case BiomeSunflowerPlains:
		return "Sunflower Plains"
	case BiomeDesertM:
		return "Desert M"
	case BiomeSavannaM:
		return "Savanna M"
	}
	return "Unknown"
}

// SurfaceBlocks returns the surface and filler block states used by the
// base terrain pass for this biome.
func (b Biome) SurfaceBlocks() (surface, filler uint16) {
	switch b {
	case BiomeOcean:
		return BlockSand, BlockSand
	case BiomeDesert, BiomeDesertM:
		return BlockSand, BlockSandstone
	case BiomeSnowyTundra:
		return BlockSnow, BlockDirt
	case BiomeExtremeHills:
		return BlockGrass, BlockStone
	default:
		return BlockGrass, BlockDirt
	}
}

// BiomeMap holds one biome per column of a chunk, row-major by Z.
type BiomeMap [ChunkWidth * ChunkWidth]Biome

// At returns the biome of column (x, z), chunk-local.
func (m *BiomeMap) At(x, z int) Biome {
	return m[z*ChunkWidth+x]
}

// BiomeGen produces the biome grid for a chunk.
type BiomeGen interface {
	GenBiomes(chunkX, chunkZ int) BiomeMap
}

// NoiseBiomeGen classifies biomes from low-frequency temperature and
// rainfall fields, Whittaker style, so biomes form large regions.
// The rarer M / sunflower variants are picked per region by an integer
// hash.
type NoiseBiomeGen struct {
	temp    *noise.Perlin
	rain    *noise.Perlin
	variant noise.Noise
}

// NewNoiseBiomeGen creates a biome generator for the given seed.
func NewNoiseBiomeGen(seed int64) *NoiseBiomeGen {
	return &NoiseBiomeGen{
		temp:    noise.NewPerlin(seed + 1),
		rain:    noise.NewPerlin(seed + 2),
		variant: noise.New(int32(seed) + 3),
	}
}

// GenBiomes returns the biome grid for the chunk.
func (g *NoiseBiomeGen) GenBiomes(chunkX, chunkZ int) BiomeMap {
	var m BiomeMap
	for z := 0; z < ChunkWidth; z++ {
		for x := 0; x < ChunkWidth; x++ {
			m[z*ChunkWidth+x] = g.BiomeAt(chunkX*ChunkWidth+x, chunkZ*ChunkWidth+z)
		}
	}
	return m
}

// BiomeAt classifies the biome at a world block position.
func (g *NoiseBiomeGen) BiomeAt(worldX, worldZ int) Biome {
	// Low-frequency coordinates for large biome regions
	const scale = 0.003
	bx := float64(worldX) * scale
	bz := float64(worldZ) * scale

	temp := clamp01((g.temp.OctaveNoise2D(bx, bz, 2, 2.0, 0.3) + 1) / 2)
	rain := clamp01((g.rain.OctaveNoise2D(bx+500, bz+500, 2, 2.0, 0.3) + 1) / 2)

	// Variant choice is constant over a whole region so M-variants do
	// not speckle inside their parent biome.
	const regionSize = 256
	rx := int32(DivFloor(worldX, regionSize))
	rz := int32(DivFloor(worldZ, regionSize))
	rare := g.variant.IntNoise2D(rx, rz)%10 == 0

	switch {
	case temp < 0.30: // Cold
		return BiomeSnowyTundra

	case temp < 0.62: // Temperate
		if rain > 0.65 {
			return BiomeForest
		}
		if rain > 0.35 {
			if rare {
				return BiomeSunflowerPlains
			}
			return BiomePlains
		}
		return BiomeExtremeHills

	default: // Warm
		if rain > 0.55 {
			if rare {
				return BiomeSavannaM
			}
			return BiomeSavanna
		}
		if rain > 0.30 {
			return BiomePlains
		}
		if rare {
			return BiomeDesertM
		}
		return BiomeDesert
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
