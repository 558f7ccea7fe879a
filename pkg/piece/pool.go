package piece

// Pool supplies prefabs and weights to the BFS generator. The existing
// connector passed to PieceWeight is in world space.
//
// Implementations may keep per-structure bookkeeping behind PiecePlaced
// and Reset, but then callers must not run two generations against the
// same pool concurrently; stateless pools are safe to share.
//
// PiecesWithConnector and StartingPieces must return prefabs in a
// stable order: the generator's weighted draw walks the returned slice,
// so order changes would change the structures generated.
type Pool interface {
	// PiecesWithConnector returns the prefabs offering a connector of
	// the given type.
	PiecesWithConnector(connectorType int) []*Prefab

	// StartingPieces returns the prefabs a structure may start from.
	StartingPieces() []*Prefab

	// PieceWeight returns the selection weight for attaching candidate
	// to the existing connector on placed; 0 rejects the candidate.
	PieceWeight(placed *PlacedPiece, existing Connector, candidate *Prefab) int

	// StartingPieceWeight returns the selection weight for a starting
	// prefab; 0 rejects it.
	StartingPieceWeight(candidate *Prefab) int

	// PiecePlaced notifies the pool that a prefab was placed.
	PiecePlaced(p *Prefab)

	// Reset clears per-structure bookkeeping. The generator calls it
	// before and after each run.
	Reset()
}
