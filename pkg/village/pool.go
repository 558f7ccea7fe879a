package village

import (
	"github.com/StoreStation/StructCraft/pkg/piece"
	"github.com/StoreStation/StructCraft/pkg/world"
)

// Road pieces are synthesized once per pool rather than supplied as
// prefabs: a 1-high, 3-wide gravel slab in several lengths, with
// endpoint connectors on the short faces, crossing connectors for
// perpendicular roads and attachment connectors for buildings along the
// long edges.
var roadLengths = []int{27, 39, 51}

// PiecePool holds the prefabs of one village style: a starting well,
// the building prefabs, and the synthesized roads. It is stateless
// after construction, so one pool may serve many villages concurrently.
type PiecePool struct {
	byType map[int][]*piece.Prefab
	starts []*piece.Prefab
}

// NewPiecePool creates a pool from starting prefabs (wells) and
// building prefabs, synthesizes the road pieces, and indexes everything
// by offered connector type.
func NewPiecePool(starting, buildings []*piece.Prefab) *PiecePool {
	p := &PiecePool{
		byType: make(map[int][]*piece.Prefab),
		starts: starting,
	}
	for _, b := range buildings {
		p.index(b)
	}
	for _, l := range roadLengths {
		p.index(synthesizeRoad(l))
	}
	return p
}

// index registers the prefab under every connector type it offers, once
// per type.
func (p *PiecePool) index(prefab *piece.Prefab) {
	seen := map[int]bool{}
	for _, c := range prefab.Connectors() {
		if seen[c.Type] {
			continue
		}
		seen[c.Type] = true
		p.byType[c.Type] = append(p.byType[c.Type], prefab)
	}
}

// synthesizeRoad builds one road prefab of the given length along X.
func synthesizeRoad(length int) *piece.Prefab {
	road := piece.NewPrefab(piece.Vec3{X: length, Y: 1, Z: 3}, false)
	road.Fill(world.BlockGravel)

	road.AddConnector(0, 0, 1, piece.DirXM, -2)
	road.AddConnector(length-1, 0, 1, piece.DirXP, -2)
	// Crossing points for perpendicular roads
	for x := 1; x < length; x += 12 {
		road.AddConnector(x, 0, 0, piece.DirZM, 2)
		road.AddConnector(x, 0, 2, piece.DirZP, 2)
	}
	// Attachment points for buildings
	for x := 7; x < length; x += 12 {
		road.AddConnector(x, 0, 0, piece.DirZM, 1)
		road.AddConnector(x, 0, 2, piece.DirZP, 1)
	}
	return road
}

// PiecesWithConnector returns the prefabs offering a connector of the
// given type, in registration order.
func (p *PiecePool) PiecesWithConnector(connectorType int) []*piece.Prefab {
	return p.byType[connectorType]
}

// StartingPieces returns the well prefabs.
func (p *PiecePool) StartingPieces() []*piece.Prefab {
	return p.starts
}

// PieceWeight returns the candidate's weight, rejecting a road chained
// onto another road's crossing connector below the root. Without this
// rule T-junctions sprout T-junctions and the road mesh degenerates.
func (p *PiecePool) PieceWeight(placed *piece.PlacedPiece, existing piece.Connector, candidate *piece.Prefab) int {
	if existing.Type == 2 && placed.Depth() > 0 && placed.Prefab().Size().Y == 1 {
		return 0
	}
	return candidate.DefaultWeight()
}

// StartingPieceWeight returns the starting prefab's weight.
func (p *PiecePool) StartingPieceWeight(candidate *piece.Prefab) int {
	return candidate.DefaultWeight()
}

// PiecePlaced is a no-op; the pool keeps no per-structure state.
func (p *PiecePool) PiecePlaced(*piece.Prefab) {}

// Reset is a no-op; the pool keeps no per-structure state.
func (p *PiecePool) Reset() {}
