package world

import "github.com/StoreStation/StructCraft/pkg/noise"

// WaterLevel is the sea level.
const WaterLevel = 62

// HeightGen produces the terrain surface height map for a chunk. It
// must be deterministic and cheap to call repeatedly; callers memoize
// where it matters.
type HeightGen interface {
	GenHeightMap(chunkX, chunkZ int) HeightMap
}

// NoiseHeightGen derives surface height from octaved Perlin noise.
type NoiseHeightGen struct {
	terrain *noise.Perlin

	// BaseHeight is the mean surface Y; Variation the noise amplitude.
	BaseHeight int
	Variation  float64
}

// NewNoiseHeightGen creates a height generator for the given seed with
// the default plains-like profile.
func NewNoiseHeightGen(seed int64) *NoiseHeightGen {
	return &NoiseHeightGen{
		terrain:    noise.NewPerlin(seed),
		BaseHeight: 66,
		Variation:  14,
	}
}

// SurfaceHeight returns the solid surface Y for world-space (x, z).
func (g *NoiseHeightGen) SurfaceHeight(x, z int) int {
	const noiseScale = 0.015
	h := g.terrain.OctaveNoise2D(float64(x)*noiseScale, float64(z)*noiseScale, 3, 2.0, 0.5)
	y := g.BaseHeight + int(h*g.Variation)
	if y < 1 {
		y = 1
	}
	if y > ChunkHeight-2 {
		y = ChunkHeight - 2
	}
	return y
}

// GenHeightMap returns the surface heights of every column in the chunk.
func (g *NoiseHeightGen) GenHeightMap(chunkX, chunkZ int) HeightMap {
	var m HeightMap
	for z := 0; z < ChunkWidth; z++ {
		for x := 0; x < ChunkWidth; x++ {
			m.Set(x, z, g.SurfaceHeight(chunkX*ChunkWidth+x, chunkZ*ChunkWidth+z))
		}
	}
	return m
}

// FlatHeightGen reports the same surface height everywhere.
type FlatHeightGen struct {
	Y int
}

// GenHeightMap returns a uniform height map.
func (g FlatHeightGen) GenHeightMap(chunkX, chunkZ int) HeightMap {
	var m HeightMap
	for i := range m {
		m[i] = g.Y
	}
	return m
}
