package village

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StoreStation/StructCraft/pkg/piece"
	"github.com/StoreStation/StructCraft/pkg/world"
)

const flatY = 64

func plainsPool() *PiecePool {
	return DefaultRegistry().Plains[0]
}

func testVillage(t *testing.T, seed int32, density int) *Village {
	t.Helper()
	v := NewVillage(seed, 0, 0, 2, 128, density, plainsPool(), world.FlatHeightGen{Y: flatY})
	require.NotNil(t, v)
	return v
}

func isRoad(p *piece.PlacedPiece) bool {
	return p.Prefab().Size().Y == 1
}

func TestVillageStartsWithWellAndRoads(t *testing.T) {
	v := testVillage(t, 1, 100)

	root := v.Pieces()[0]
	assert.True(t, root.Prefab().MoveToGround())
	require.NotEmpty(t, root.Prefab().Connectors())
	for _, c := range root.Prefab().Connectors() {
		assert.Equal(t, 2, c.Type, "a well offers only road crossings")
	}

	roads := 0
	for _, p := range v.Pieces() {
		if isRoad(p) {
			roads++
		}
	}
	assert.Greater(t, roads, 0, "a full-depth village must grow roads")
}

func TestVillageParentOrdering(t *testing.T) {
	v := testVillage(t, 1, 100)
	for i, p := range v.Pieces() {
		if i == 0 {
			assert.Equal(t, -1, p.Parent())
			continue
		}
		assert.GreaterOrEqual(t, p.Parent(), 0)
		assert.Less(t, p.Parent(), i)
	}
}

func TestVillageStaysInsideBorders(t *testing.T) {
	v := testVillage(t, 1, 100)
	for i, p := range v.Pieces() {
		box := p.HitBox()
		assert.GreaterOrEqual(t, box.Min.X, -128, "piece %d", i)
		assert.LessOrEqual(t, box.Max.X, 128, "piece %d", i)
		assert.GreaterOrEqual(t, box.Min.Z, -128, "piece %d", i)
		assert.LessOrEqual(t, box.Max.Z, 128, "piece %d", i)
	}
}

func TestVillageFootprintsDisjoint(t *testing.T) {
	v := testVillage(t, 1, 100)
	pieces := v.Pieces()
	for i := range pieces {
		for j := i + 1; j < len(pieces); j++ {
			a, b := pieces[i].HitBox(), pieces[j].HitBox()
			// Vertical snapping moves pieces only in Y, so the build-time
			// non-overlap guarantee survives as XZ disjointness.
			overlapXZ := a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
				a.Min.Z <= b.Max.Z && b.Min.Z <= a.Max.Z
			assert.False(t, overlapXZ, "pieces %d and %d share columns", i, j)
		}
	}
}

func TestVillageRoadTRule(t *testing.T) {
	v := testVillage(t, 1, 100)
	pieces := v.Pieces()
	for i, p := range pieces {
		if i == 0 || !isRoad(p) {
			continue
		}
		parent := pieces[p.Parent()]
		if p.Parent() == 0 || !isRoad(parent) {
			continue
		}
		// A road hanging off another road may only continue from one of
		// the parent's endpoints; crossings on non-root roads are closed.
		// So the block one step beyond a parent endpoint must fall inside
		// the child's box.
		ok := false
		for _, c := range parent.Prefab().Connectors() {
			if c.Type != -2 {
				continue
			}
			wc := parent.RotatedConnector(c)
			outside := wc.Pos.Add(wc.Dir.Offset())
			if p.HitBox().Contains(piece.NewCuboid(outside, piece.Vec3{X: 1, Y: 1, Z: 1})) {
				ok = true
			}
		}
		assert.True(t, ok, "piece %d: road chained onto a road crossing", i)
	}
}

func TestVillageGroundSnapRoot(t *testing.T) {
	v := testVillage(t, 1, 100)
	root := v.Pieces()[0]

	assert.True(t, root.HasBeenMovedToGround())
	conn, ok := root.FirstConnector()
	require.True(t, ok)
	assert.Equal(t, flatY+1, conn.Pos.Y, "anchor connector sits one above the surface")

	// Roads are purely connector-driven, so they follow the root's shift
	// and end up on the anchor plane.
	for i, p := range v.Pieces() {
		if isRoad(p) {
			assert.Equal(t, flatY+1, p.HitBox().Min.Y, "road %d is off the anchor plane", i)
		}
	}
}

func TestVillageDensityMonotonic(t *testing.T) {
	countBuildings := func(v *Village) int {
		n := 0
		for i, p := range v.Pieces() {
			if i > 0 && !isRoad(p) {
				n++
			}
		}
		return n
	}

	sparse := countBuildings(testVillage(t, 1, 0))
	dense := countBuildings(testVillage(t, 1, 100))
	assert.Greater(t, dense, 0, "full density must attach buildings")
	assert.LessOrEqual(t, sparse, dense)
}

func TestVillageDeterministic(t *testing.T) {
	a := testVillage(t, 9, 80)
	b := testVillage(t, 9, 80)
	require.Equal(t, len(a.Pieces()), len(b.Pieces()))
	for i := range a.Pieces() {
		assert.Equal(t, a.Pieces()[i].Origin(), b.Pieces()[i].Origin(), "piece %d", i)
		assert.Equal(t, a.Pieces()[i].Rotation(), b.Pieces()[i].Rotation(), "piece %d", i)
	}
}

func TestVillageSeedChangesLayout(t *testing.T) {
	a := testVillage(t, 1, 100)
	b := testVillage(t, 2, 100)

	ca := world.NewChunkDesc(0, 0)
	cb := world.NewChunkDesc(0, 0)
	a.DrawIntoChunk(ca)
	b.DrawIntoChunk(cb)

	da, _ := ca.Serialize()
	db, _ := cb.Serialize()
	assert.False(t, bytes.Equal(da, db), "different seeds must diverge")
}

func TestVillageDrawIdempotent(t *testing.T) {
	v := testVillage(t, 5, 100)

	c := world.NewChunkDesc(0, 0)
	for x := 0; x < world.ChunkWidth; x++ {
		for z := 0; z < world.ChunkWidth; z++ {
			c.SetBlockType(x, flatY, z, world.BlockGrass)
		}
	}

	v.DrawIntoChunk(c)
	first, _ := c.Serialize()
	v.DrawIntoChunk(c)
	second, _ := c.Serialize()
	assert.True(t, bytes.Equal(first, second), "second draw must be a no-op")
}

func TestVillageRoadSurface(t *testing.T) {
	v := testVillage(t, 1, 100)

	var road *piece.PlacedPiece
	for _, p := range v.Pieces() {
		if isRoad(p) {
			road = p
			break
		}
	}
	require.NotNil(t, road)

	// Columns under the road not covered by any building or the well,
	// grouped by chunk; pick the chunk holding the most.
	type column struct{ x, z int }
	byChunk := map[[2]int][]column{}
	box := road.HitBox()
	for x := box.Min.X; x <= box.Max.X; x++ {
		for z := box.Min.Z; z <= box.Max.Z; z++ {
			covered := false
			for _, q := range v.Pieces() {
				if isRoad(q) {
					continue
				}
				qb := q.HitBox()
				if x >= qb.Min.X && x <= qb.Max.X && z >= qb.Min.Z && z <= qb.Max.Z {
					covered = true
					break
				}
			}
			if !covered {
				cx, cz := world.BlockToChunk(x, z)
				byChunk[[2]int{cx, cz}] = append(byChunk[[2]int{cx, cz}], column{x, z})
			}
		}
	}
	var best [2]int
	for k := range byChunk {
		if len(byChunk[k]) > len(byChunk[best]) {
			best = k
		}
	}
	cols := byChunk[best]
	require.NotEmpty(t, cols)

	c := world.NewChunkDesc(best[0], best[1])
	for _, col := range cols {
		relX, relZ := world.BlockToRel(col.x, col.z)
		c.SetBlockType(relX, flatY-1, relZ, world.BlockStone)
		if (col.x+col.z)%2 == 0 {
			c.SetBlockType(relX, flatY, relZ, world.BlockStillWater)
		} else {
			c.SetBlockType(relX, flatY, relZ, world.BlockGrass)
		}
	}

	v.DrawIntoChunk(c)

	for _, col := range cols {
		relX, relZ := world.BlockToRel(col.x, col.z)
		want := world.BlockGravel
		if (col.x+col.z)%2 == 0 {
			want = world.BlockPlanks
		}
		assert.Equal(t, want, c.GetBlockType(relX, flatY, relZ), "column (%d,%d)", col.x, col.z)
		assert.Equal(t, world.BlockStone, c.GetBlockType(relX, flatY-1, relZ),
			"roads must not dig below the surface at (%d,%d)", col.x, col.z)
	}
}
