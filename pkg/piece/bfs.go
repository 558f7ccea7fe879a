package piece

import "github.com/StoreStation/StructCraft/pkg/noise"

// BFSGenerator grows a structure from a starting piece by breadth-first
// connector expansion. All choices hash the connector's world position,
// so the result depends only on (seed, starting coordinate, pool
// contents), never on traversal order elsewhere in the world.
type BFSGenerator struct {
	pool    Pool
	noise   noise.Noise
	borders Cuboid
}

// freeConnector is a pending expansion site: a world-space connector on
// an already placed piece, with the depth a child would get.
type freeConnector struct {
	pieceIdx int
	conn     Connector
	depth    int
}

// NewBFSGenerator creates a generator drawing pieces from pool. Every
// placed piece must fit inside borders.
func NewBFSGenerator(pool Pool, seed int32, borders Cuboid) *BFSGenerator {
	return &BFSGenerator{
		pool:    pool,
		noise:   noise.New(seed),
		borders: borders,
	}
}

// PlacePieces builds the structure rooted at the given world
// coordinate. Pieces deeper than maxDepth are not placed; maxDepth 0
// yields just the starting piece. The returned list is ordered by
// insertion, every piece's parent index is smaller than its own, and
// ownership passes to the caller. Returns nil when no starting piece
// can be chosen.
func (g *BFSGenerator) PlacePieces(originX, originY, originZ, maxDepth int) []*PlacedPiece {
	g.pool.Reset()
	defer g.pool.Reset()

	start := g.placeStartingPiece(originX, originY, originZ)
	if start == nil {
		return nil
	}
	pieces := []*PlacedPiece{start}
	g.pool.PiecePlaced(start.Prefab())

	var queue []freeConnector
	for _, c := range start.Prefab().Connectors() {
		queue = append(queue, freeConnector{pieceIdx: 0, conn: start.RotatedConnector(c), depth: 1})
	}

	for len(queue) > 0 {
		free := queue[0]
		queue = queue[1:]
		if free.depth > maxDepth {
			continue
		}
		placed, used := g.tryPlaceAtConnector(pieces, free)
		if placed == nil {
			continue
		}
		idx := len(pieces)
		pieces = append(pieces, placed)
		g.pool.PiecePlaced(placed.Prefab())
		for i, c := range placed.Prefab().Connectors() {
			if i == used {
				continue
			}
			queue = append(queue, freeConnector{pieceIdx: idx, conn: placed.RotatedConnector(c), depth: free.depth + 1})
		}
	}
	return pieces
}

// placeStartingPiece picks and places the root prefab, centered on the
// origin, with a hash-chosen rotation.
func (g *BFSGenerator) placeStartingPiece(x, y, z int) *PlacedPiece {
	starts := g.pool.StartingPieces()
	total := 0
	for _, p := range starts {
		w := g.pool.StartingPieceWeight(p)
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return nil
	}

	rnd := int(g.noise.IntNoise3D(int32(x), int32(y), int32(z))/7) % total
	var chosen *Prefab
	for _, p := range starts {
		w := g.pool.StartingPieceWeight(p)
		if w <= 0 {
			continue
		}
		rnd -= w
		if rnd < 0 {
			chosen = p
			break
		}
	}

	rot := int(g.noise.IntNoise3D(int32(x), int32(y+1), int32(z))/7) % 4
	size := rotatedSize(chosen.Size(), rot)
	origin := Vec3{x - size.X/2, y, z - size.Z/2}
	return NewPlacedPiece(chosen, origin, rot, -1, 0)
}

// candidate is a legal placement of a prefab against a free connector.
type candidate struct {
	prefab  *Prefab
	connIdx int
	rot     int
	origin  Vec3
	weight  int
}

// tryPlaceAtConnector attempts to attach a new piece to the free
// connector. Returns the placed piece and the index of the consumed
// connector on its prefab, or nil when no legal candidate exists.
func (g *BFSGenerator) tryPlaceAtConnector(pieces []*PlacedPiece, free freeConnector) (*PlacedPiece, int) {
	wantType := -free.conn.Type
	wantDir := free.conn.Dir.Opposite()
	// The candidate's connector block sits one step beyond the existing
	// connector, along its face.
	target := free.conn.Pos.Add(free.conn.Dir.Offset())
	parent := pieces[free.pieceIdx]

	var cands []candidate
	total := 0
	for _, prefab := range g.pool.PiecesWithConnector(wantType) {
		for ci, conn := range prefab.Connectors() {
			if conn.Type != wantType {
				continue
			}
			for rot := 0; rot < 4; rot++ {
				if conn.Dir.Rotated(rot) != wantDir {
					continue
				}
				origin := target.Sub(rotateLocal(conn.Pos, prefab.Size(), rot))
				hit := NewCuboid(origin, rotatedSize(prefab.Size(), rot))
				if !g.borders.Contains(hit) {
					continue
				}
				if overlapsAny(pieces, hit) {
					continue
				}
				w := g.pool.PieceWeight(parent, free.conn, prefab)
				if w <= 0 {
					continue
				}
				cands = append(cands, candidate{prefab: prefab, connIdx: ci, rot: rot, origin: origin, weight: w})
				total += w
			}
		}
	}
	if total <= 0 {
		return nil, 0
	}

	rnd := int(g.noise.IntNoise3D(int32(free.conn.Pos.X), int32(free.conn.Pos.Y), int32(free.conn.Pos.Z))/7) % total
	for _, c := range cands {
		rnd -= c.weight
		if rnd < 0 {
			return NewPlacedPiece(c.prefab, c.origin, c.rot, free.pieceIdx, free.depth), c.connIdx
		}
	}
	return nil, 0
}

func overlapsAny(pieces []*PlacedPiece, hit Cuboid) bool {
	for _, p := range pieces {
		if p.HitBox().Intersects(hit) {
			return true
		}
	}
	return false
}
