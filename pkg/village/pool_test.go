package village

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StoreStation/StructCraft/pkg/piece"
	"github.com/StoreStation/StructCraft/pkg/world"
)

func TestSynthesizedRoadLayout(t *testing.T) {
	road := synthesizeRoad(27)

	assert.Equal(t, piece.Vec3{X: 27, Y: 1, Z: 3}, road.Size())
	assert.Equal(t, 100, road.DefaultWeight())
	assert.False(t, road.MoveToGround())
	for x := 0; x < 27; x++ {
		for z := 0; z < 3; z++ {
			assert.Equal(t, world.BlockGravel, road.BlockAt(x, 0, z))
		}
	}

	byType := map[int][]piece.Connector{}
	for _, c := range road.Connectors() {
		byType[c.Type] = append(byType[c.Type], c)
	}

	require.Len(t, byType[-2], 2, "endpoints")
	assert.Equal(t, piece.Vec3{X: 0, Y: 0, Z: 1}, byType[-2][0].Pos)
	assert.Equal(t, piece.DirXM, byType[-2][0].Dir)
	assert.Equal(t, piece.Vec3{X: 26, Y: 0, Z: 1}, byType[-2][1].Pos)
	assert.Equal(t, piece.DirXP, byType[-2][1].Dir)

	// Crossing connectors at x = 1, 13, 25 on both edges
	require.Len(t, byType[2], 6)
	// Building connectors at x = 7, 19 on both edges
	require.Len(t, byType[1], 4)
	for _, c := range byType[1] {
		assert.True(t, c.Pos.X == 7 || c.Pos.X == 19)
		assert.True(t, c.Dir == piece.DirZM || c.Dir == piece.DirZP)
	}
}

func TestRoadLengths(t *testing.T) {
	pool := NewPiecePool([]*piece.Prefab{plainsWell()}, nil)

	var lengths []int
	for _, p := range pool.PiecesWithConnector(-2) {
		lengths = append(lengths, p.Size().X)
	}
	assert.Equal(t, []int{27, 39, 51}, lengths)
}

func TestPoolIndexesRoadsUnderAllTypes(t *testing.T) {
	pool := NewPiecePool([]*piece.Prefab{plainsWell()}, []*piece.Prefab{plainsCottage()})

	// Roads must be reachable from road ends (-2), T-crossings (2) and
	// building sides (1); buildings only from road attachments (-1).
	assert.Len(t, pool.PiecesWithConnector(-2), 3)
	assert.Len(t, pool.PiecesWithConnector(2), 3)
	assert.Len(t, pool.PiecesWithConnector(1), 3)
	assert.Len(t, pool.PiecesWithConnector(-1), 1)
	assert.Empty(t, pool.PiecesWithConnector(5))
}

func TestPoolRejectsRoadChainedOffCrossing(t *testing.T) {
	pool := NewPiecePool([]*piece.Prefab{plainsWell()}, []*piece.Prefab{plainsCottage()})
	road := synthesizeRoad(27)
	cottage := plainsCottage()

	crossing := piece.Connector{Pos: piece.Vec3{X: 1, Y: 0, Z: 0}, Dir: piece.DirZM, Type: 2}

	onWell := piece.NewPlacedPiece(plainsWell(), piece.Vec3{}, 0, -1, 0)
	assert.Equal(t, 100, pool.PieceWeight(onWell, crossing, road),
		"a crossing on the root well stays open")

	onRoad := piece.NewPlacedPiece(road, piece.Vec3{}, 0, 0, 1)
	assert.Equal(t, 0, pool.PieceWeight(onRoad, crossing, road),
		"a crossing on a non-root road must reject")

	assert.Equal(t, cottage.DefaultWeight(),
		pool.PieceWeight(onRoad, piece.Connector{Type: 1}, cottage),
		"building attachments are unaffected")
}

func TestPoolStartingPieces(t *testing.T) {
	well := plainsWell()
	pool := NewPiecePool([]*piece.Prefab{well}, nil)
	require.Len(t, pool.StartingPieces(), 1)
	assert.Same(t, well, pool.StartingPieces()[0])
	assert.Equal(t, 100, pool.StartingPieceWeight(well))
}
