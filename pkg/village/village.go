package village

import (
	"github.com/StoreStation/StructCraft/pkg/noise"
	"github.com/StoreStation/StructCraft/pkg/piece"
	"github.com/StoreStation/StructCraft/pkg/world"
)

// Village is one settlement instance. It decorates the shared style
// pool with a density filter for the breadth-first build, owns the
// resulting placed pieces, and draws the parts intersecting a chunk on
// demand. Instances are not safe for concurrent draws; the grid
// scheduler serializes them.
type Village struct {
	noise     noise.Noise
	density   int
	borders   piece.Cuboid
	pool      piece.Pool
	heightGen world.HeightGen

	roadBlock      uint16
	waterRoadBlock uint16

	pieces  []*piece.PlacedPiece
	heights map[heightKey]*world.HeightMap
}

type heightKey struct {
	chunkX, chunkZ int
}

// NewVillage builds a village rooted at (originX, originZ). Returns nil
// when the build yields no pieces. maxRoadDepth bounds the road graph;
// buildings hang one level deeper. maxSize is the radius of the
// bounding cuboid in blocks.
func NewVillage(seed int32, originX, originZ, maxRoadDepth, maxSize, density int, pool piece.Pool, heightGen world.HeightGen) *Village {
	v := &Village{
		noise:          noise.New(seed),
		density:        density,
		pool:           pool,
		heightGen:      heightGen,
		roadBlock:      world.BlockGravel,
		waterRoadBlock: world.BlockPlanks,
		heights:        make(map[heightKey]*world.HeightMap),
		borders: piece.NewCuboid(
			piece.Vec3{X: originX - maxSize, Y: 0, Z: originZ - maxSize},
			piece.Vec3{X: 2*maxSize + 1, Y: world.ChunkHeight, Z: 2*maxSize + 1},
		),
	}

	gen := piece.NewBFSGenerator(v, seed, v.borders)
	v.pieces = gen.PlacePieces(originX, 0, originZ, maxRoadDepth+1)
	if len(v.pieces) == 0 {
		return nil
	}

	// Pin the well to the terrain now and carry every purely
	// connector-driven descendant with it; pieces that snap on their own
	// are left for draw time.
	if root := v.pieces[0]; root.Prefab().MoveToGround() {
		if conn, ok := root.FirstConnector(); ok {
			dy := v.terrainHeight(conn.Pos.X, conn.Pos.Z) - conn.Pos.Y + 1
			root.MoveToGroundBy(dy)
			v.moveAllDescendants(0, dy)
		}
	}
	return v
}

// moveAllDescendants shifts the children of pieces[pivot] that do not
// snap to the ground themselves, recursing through grandchildren.
func (v *Village) moveAllDescendants(pivot, dy int) {
	for i := pivot + 1; i < len(v.pieces); i++ {
		p := v.pieces[i]
		if p.Parent() != pivot || p.Prefab().MoveToGround() {
			continue
		}
		p.MoveToGroundBy(dy)
		v.moveAllDescendants(i, dy)
	}
}

// terrainHeight returns the surface Y at a world block position,
// memoizing one height map per touched chunk.
func (v *Village) terrainHeight(x, z int) int {
	chunkX, chunkZ := world.BlockToChunk(x, z)
	key := heightKey{chunkX, chunkZ}
	hm, ok := v.heights[key]
	if !ok {
		m := v.heightGen.GenHeightMap(chunkX, chunkZ)
		hm = &m
		v.heights[key] = hm
	}
	relX, relZ := world.BlockToRel(x, z)
	return hm.At(relX, relZ)
}

// Pieces returns the placed pieces, starting piece first.
func (v *Village) Pieces() []*piece.PlacedPiece { return v.pieces }

// Borders returns the village's bounding cuboid.
func (v *Village) Borders() piece.Cuboid { return v.borders }

// Density returns the building density in [0, 100].
func (v *Village) Density() int { return v.density }

// DrawIntoChunk writes the village's blocks intersecting the chunk.
func (v *Village) DrawIntoChunk(c *world.ChunkDesc) {
	chunkBox := piece.NewCuboid(
		piece.Vec3{X: c.GetChunkX() * world.ChunkWidth, Y: 0, Z: c.GetChunkZ() * world.ChunkWidth},
		piece.Vec3{X: world.ChunkWidth, Y: world.ChunkHeight, Z: world.ChunkWidth},
	)

	for _, p := range v.pieces {
		if !p.HitBox().Intersects(chunkBox) {
			continue
		}
		if p.Prefab().Size().Y == 1 {
			v.drawRoad(c, p)
			continue
		}
		if p.Prefab().MoveToGround() && !p.HasBeenMovedToGround() {
			if conn, ok := p.FirstConnector(); ok {
				p.MoveToGroundBy(v.terrainHeight(conn.Pos.X, conn.Pos.Z) - conn.Pos.Y + 1)
			}
		}
		v.drawPiece(c, p)
	}
}

// drawRoad paints the road's footprint onto the terrain surface: the
// top block of each column becomes the road block, or the water road
// block where the surface is water. Nothing below the surface changes,
// and the road's own Y is ignored.
func (v *Village) drawRoad(c *world.ChunkDesc, road *piece.PlacedPiece) {
	box := road.HitBox()
	originX := c.GetChunkX() * world.ChunkWidth
	originZ := c.GetChunkZ() * world.ChunkWidth

	minX := max(box.Min.X, originX)
	maxX := min(box.Max.X, originX+world.ChunkWidth-1)
	minZ := max(box.Min.Z, originZ)
	maxZ := min(box.Max.Z, originZ+world.ChunkWidth-1)

	for z := minZ; z <= maxZ; z++ {
		for x := minX; x <= maxX; x++ {
			relX, relZ := x-originX, z-originZ
			y := v.terrainHeight(x, z)
			if world.IsWater(c.GetBlockType(relX, y, relZ)) {
				c.SetBlockType(relX, y, relZ, v.waterRoadBlock)
			} else {
				c.SetBlockType(relX, y, relZ, v.roadBlock)
			}
		}
	}
}

// drawPiece copies the piece's rotated prefab blocks into the chunk,
// clipped to the chunk extent.
func (v *Village) drawPiece(c *world.ChunkDesc, p *piece.PlacedPiece) {
	box := p.HitBox()
	originX := c.GetChunkX() * world.ChunkWidth
	originZ := c.GetChunkZ() * world.ChunkWidth

	minX := max(box.Min.X, originX)
	maxX := min(box.Max.X, originX+world.ChunkWidth-1)
	minZ := max(box.Min.Z, originZ)
	maxZ := min(box.Max.Z, originZ+world.ChunkWidth-1)
	minY := max(box.Min.Y, 0)
	maxY := min(box.Max.Y, world.ChunkHeight-1)

	for y := minY; y <= maxY; y++ {
		for z := minZ; z <= maxZ; z++ {
			for x := minX; x <= maxX; x++ {
				state := p.BlockAt(piece.Vec3{X: x, Y: y, Z: z})
				c.SetBlockType(x-originX, y, z-originZ, state)
			}
		}
	}
}

// Pool decoration: the density filter sits between the generator and
// the style pool. A road-to-building connector is satisfied only when
// the hash of its world position clears the density threshold.

func (v *Village) PiecesWithConnector(connectorType int) []*piece.Prefab {
	return v.pool.PiecesWithConnector(connectorType)
}

func (v *Village) StartingPieces() []*piece.Prefab {
	return v.pool.StartingPieces()
}

func (v *Village) PieceWeight(placed *piece.PlacedPiece, existing piece.Connector, candidate *piece.Prefab) int {
	if existing.Type == 1 {
		rnd := int(v.noise.IntNoise3D(int32(existing.Pos.X), int32(existing.Pos.Y), int32(existing.Pos.Z))/7) % 100
		if rnd > v.density {
			return 0
		}
	}
	return v.pool.PieceWeight(placed, existing, candidate)
}

func (v *Village) StartingPieceWeight(candidate *piece.Prefab) int {
	return v.pool.StartingPieceWeight(candidate)
}

func (v *Village) PiecePlaced(p *piece.Prefab) { v.pool.PiecePlaced(p) }

func (v *Village) Reset() { v.pool.Reset() }
