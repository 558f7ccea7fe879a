package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPool drives the generator with a fixed prefab set. A nil weightFn
// falls back to the prefabs' default weights.
type stubPool struct {
	starts   []*Prefab
	byType   map[int][]*Prefab
	weightFn func(placed *PlacedPiece, existing Connector, candidate *Prefab) int
	resets   int
	placed   []*Prefab
}

func (s *stubPool) PiecesWithConnector(t int) []*Prefab { return s.byType[t] }
func (s *stubPool) StartingPieces() []*Prefab           { return s.starts }
func (s *stubPool) StartingPieceWeight(c *Prefab) int   { return c.DefaultWeight() }
func (s *stubPool) PiecePlaced(p *Prefab)               { s.placed = append(s.placed, p) }
func (s *stubPool) Reset()                              { s.resets++ }

func (s *stubPool) PieceWeight(placed *PlacedPiece, existing Connector, candidate *Prefab) int {
	if s.weightFn != nil {
		return s.weightFn(placed, existing, candidate)
	}
	return candidate.DefaultWeight()
}

// chainPool builds a pool where a 3x1x3 starter feeds an endless chain
// of 3x1x3 segments, each offering one mating connector and one onward
// connector. Only the borders stop the chain.
func chainPool() *stubPool {
	starter := NewPrefab(Vec3{3, 1, 3}, false)
	starter.AddConnector(2, 0, 1, DirXP, 2)

	segment := NewPrefab(Vec3{3, 1, 3}, false)
	segment.AddConnector(0, 0, 1, DirXM, -2)
	segment.AddConnector(2, 0, 1, DirXP, 2)

	return &stubPool{
		starts: []*Prefab{starter},
		byType: map[int][]*Prefab{-2: {segment}},
	}
}

func testBorders() Cuboid {
	return NewCuboid(Vec3{-17, 0, -17}, Vec3{35, 16, 35})
}

func TestPlacePiecesChainFillsBorders(t *testing.T) {
	g := NewBFSGenerator(chainPool(), 1, testBorders())
	pieces := g.PlacePieces(0, 4, 0, 100)

	// The starter occupies 3 blocks around the origin and each segment
	// adds 3 more in one direction; 5 segments fit before the border.
	require.Len(t, pieces, 6)
	for i, p := range pieces {
		assert.Equal(t, i, p.Depth())
		assert.True(t, testBorders().Contains(p.HitBox()), "piece %d outside borders", i)
		if i == 0 {
			assert.Equal(t, -1, p.Parent())
		} else {
			assert.Equal(t, i-1, p.Parent())
		}
	}
}

func TestPlacePiecesNoOverlap(t *testing.T) {
	g := NewBFSGenerator(chainPool(), 7, testBorders())
	pieces := g.PlacePieces(0, 4, 0, 100)
	require.NotEmpty(t, pieces)
	for i := range pieces {
		for j := i + 1; j < len(pieces); j++ {
			assert.False(t, pieces[i].HitBox().Intersects(pieces[j].HitBox()),
				"pieces %d and %d overlap", i, j)
		}
	}
}

func TestPlacePiecesChildAttachesToParentConnector(t *testing.T) {
	g := NewBFSGenerator(chainPool(), 3, testBorders())
	pieces := g.PlacePieces(0, 4, 0, 1)
	require.Len(t, pieces, 2)

	conn, ok := pieces[0].FirstConnector()
	require.True(t, ok)
	target := conn.Pos.Add(conn.Dir.Offset())
	assert.True(t, pieces[1].HitBox().Contains(NewCuboid(target, Vec3{1, 1, 1})),
		"child %v does not cover the mating block %v", pieces[1].HitBox(), target)
}

func TestPlacePiecesMaxDepthZero(t *testing.T) {
	g := NewBFSGenerator(chainPool(), 42, testBorders())
	pieces := g.PlacePieces(0, 4, 0, 0)
	require.Len(t, pieces, 1)
	assert.Equal(t, 0, pieces[0].Depth())
}

func TestPlacePiecesMaxDepthLimitsChain(t *testing.T) {
	g := NewBFSGenerator(chainPool(), 42, testBorders())
	pieces := g.PlacePieces(0, 4, 0, 2)
	assert.Len(t, pieces, 3)
}

func TestPlacePiecesDeterministic(t *testing.T) {
	a := NewBFSGenerator(chainPool(), 99, testBorders()).PlacePieces(0, 4, 0, 100)
	b := NewBFSGenerator(chainPool(), 99, testBorders()).PlacePieces(0, 4, 0, 100)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Origin(), b[i].Origin(), "piece %d origin", i)
		assert.Equal(t, a[i].Rotation(), b[i].Rotation(), "piece %d rotation", i)
	}
}

func TestPlacePiecesZeroWeightRejectsAll(t *testing.T) {
	pool := chainPool()
	pool.weightFn = func(*PlacedPiece, Connector, *Prefab) int { return 0 }
	g := NewBFSGenerator(pool, 1, testBorders())
	pieces := g.PlacePieces(0, 4, 0, 100)
	assert.Len(t, pieces, 1, "only the starter should survive a zero weight")
}

func TestPlacePiecesEmptyPool(t *testing.T) {
	g := NewBFSGenerator(&stubPool{}, 1, testBorders())
	assert.Nil(t, g.PlacePieces(0, 4, 0, 2))
}

func TestPlacePiecesResetsPool(t *testing.T) {
	pool := chainPool()
	g := NewBFSGenerator(pool, 1, testBorders())
	g.PlacePieces(0, 4, 0, 0)
	assert.Equal(t, 2, pool.resets, "pool must be reset before and after a run")
}
