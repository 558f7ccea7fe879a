// Command structcraft generates a rectangle of chunks with the village
// generator and either prints a top-down ASCII map or writes a
// compressed chunk snapshot.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"

	"github.com/StoreStation/StructCraft/pkg/config"
	"github.com/StoreStation/StructCraft/pkg/structure"
	"github.com/StoreStation/StructCraft/pkg/village"
	"github.com/StoreStation/StructCraft/pkg/world"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config; defaults apply when empty")
		seed       = flag.Int64("seed", -1, "world seed; overrides the config when >= 0")
		chunkX     = flag.Int("x", -8, "first chunk X")
		chunkZ     = flag.Int("z", -8, "first chunk Z")
		width      = flag.Int("w", 16, "width of the generated area, in chunks")
		height     = flag.Int("h", 16, "height of the generated area, in chunks")
		out        = flag.String("out", "", "write a zstd chunk snapshot here instead of printing a map")
		workers    = flag.Int("workers", 4, "parallel chunk generation workers")
	)
	flag.Parse()

	if err := run(*configPath, *seed, *chunkX, *chunkZ, *width, *height, *out, *workers); err != nil {
		slog.Error("generation failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, chunkX, chunkZ, width, height int, out string, workers int) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	if seed >= 0 {
		cfg.Seed = seed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("area must be positive, got %dx%d chunks", width, height)
	}

	w := buildWorld(cfg)
	slog.Info("generating", "seed", cfg.Seed,
		"chunks", fmt.Sprintf("%dx%d at (%d,%d)", width, height, chunkX, chunkZ))

	start := time.Now()
	if err := generateArea(w, chunkX, chunkZ, width, height, workers); err != nil {
		return err
	}
	slog.Info("generated", "chunks", width*height, "elapsed", time.Since(start))

	if out != "" {
		return writeSnapshot(w, out, chunkX, chunkZ, width, height)
	}
	printMap(os.Stdout, w, chunkX, chunkZ, width, height)
	return nil
}

// buildWorld wires the terrain passes: height, biomes, base terrain,
// then villages on the structure grid.
func buildWorld(cfg config.Config) *world.World {
	heightGen := world.NewNoiseHeightGen(cfg.Seed)
	heightGen.BaseHeight = cfg.Terrain.BaseHeight
	heightGen.Variation = cfg.Terrain.Variation
	biomeGen := world.NewNoiseBiomeGen(cfg.Seed)
	terrain := world.NewTerrainGen(biomeGen, heightGen)

	villages := village.NewGen(int32(cfg.Seed), biomeGen, heightGen, village.DefaultRegistry(),
		cfg.Village.MaxDepth, cfg.Village.MaxSize, cfg.Village.MinDensity, cfg.Village.MaxDensity)
	grid := structure.NewGridGen(villages, int32(cfg.Seed),
		cfg.Village.GridSize, cfg.Village.MaxOffset, cfg.Village.MaxSize)

	return world.NewWorld(terrain, grid)
}

// generateArea forces generation of every chunk in the rectangle.
func generateArea(w *world.World, chunkX, chunkZ, width, height, workers int) error {
	var g errgroup.Group
	g.SetLimit(workers)
	for cz := chunkZ; cz < chunkZ+height; cz++ {
		for cx := chunkX; cx < chunkX+width; cx++ {
			cx, cz := cx, cz
			g.Go(func() error {
				w.Chunk(cx, cz)
				return nil
			})
		}
	}
	return g.Wait()
}

// printMap renders one character per block column, top-down.
func printMap(out *os.File, w *world.World, chunkX, chunkZ, width, height int) {
	var sb strings.Builder
	for z := chunkZ * world.ChunkWidth; z < (chunkZ+height)*world.ChunkWidth; z++ {
		for x := chunkX * world.ChunkWidth; x < (chunkX+width)*world.ChunkWidth; x++ {
			cx, cz := world.BlockToChunk(x, z)
			relX, relZ := world.BlockToRel(x, z)
			top, _ := w.Chunk(cx, cz).TopBlock(relX, relZ)
			sb.WriteByte(blockChar(top))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(out, sb.String())
}

func blockChar(state uint16) byte {
	switch state >> 4 {
	case 8, 9:
		return '~'
	case 12, 24:
		return '.'
	case 13:
		return '#' // road
	case 5, 44, 126:
		return '=' // planks and slabs, mostly roofs
	case 17, 53:
		return 'A'
	case 80:
		return '*'
	case 0:
		return ' '
	default:
		return '"'
	}
}

// writeSnapshot dumps the serialized chunks into one zstd stream:
// per chunk a little-endian header (x, z int32, section mask uint16,
// payload length uint32) followed by the chunk payload.
func writeSnapshot(w *world.World, path string, chunkX, chunkZ, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}

	var header [14]byte
	for cz := chunkZ; cz < chunkZ+height; cz++ {
		for cx := chunkX; cx < chunkX+width; cx++ {
			data, mask := w.Chunk(cx, cz).Serialize()
			binary.LittleEndian.PutUint32(header[0:], uint32(int32(cx)))
			binary.LittleEndian.PutUint32(header[4:], uint32(int32(cz)))
			binary.LittleEndian.PutUint16(header[8:], mask)
			binary.LittleEndian.PutUint32(header[10:], uint32(len(data)))
			if _, err := enc.Write(header[:]); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			if _, err := enc.Write(data); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	slog.Info("snapshot written", "path", path)
	return nil
}
