package piece

// PlacedPiece is a prefab instance with a world pose. Parent links are
// indices into the owning list; the starting piece has parent -1 and
// every later entry's parent index is strictly smaller than its own.
type PlacedPiece struct {
	prefab   *Prefab
	origin   Vec3 // world position of the rotated prefab's min corner
	rotation int  // quarter turns CCW about Y
	parent   int
	depth    int
	hitBox   Cuboid

	movedToGround bool
}

// NewPlacedPiece places a prefab at the given origin and rotation.
func NewPlacedPiece(prefab *Prefab, origin Vec3, rotation, parent, depth int) *PlacedPiece {
	return &PlacedPiece{
		prefab:   prefab,
		origin:   origin,
		rotation: rotation & 3,
		parent:   parent,
		depth:    depth,
		hitBox:   NewCuboid(origin, rotatedSize(prefab.Size(), rotation)),
	}
}

// Prefab returns the shared prefab this piece instantiates.
func (p *PlacedPiece) Prefab() *Prefab { return p.prefab }

// Origin returns the world position of the piece's min corner.
func (p *PlacedPiece) Origin() Vec3 { return p.origin }

// Rotation returns the piece's rotation in quarter turns.
func (p *PlacedPiece) Rotation() int { return p.rotation }

// Parent returns the index of the parent piece, or -1 for the root.
func (p *PlacedPiece) Parent() int { return p.parent }

// Depth returns the BFS depth (0 for the starting piece).
func (p *PlacedPiece) Depth() int { return p.depth }

// HitBox returns the world-space cuboid the piece occupies.
func (p *PlacedPiece) HitBox() Cuboid { return p.hitBox }

// RotatedConnector maps a prefab-local connector into world space.
func (p *PlacedPiece) RotatedConnector(c Connector) Connector {
	return Connector{
		Pos:  p.origin.Add(rotateLocal(c.Pos, p.prefab.Size(), p.rotation)),
		Dir:  c.Dir.Rotated(p.rotation),
		Type: c.Type,
	}
}

// FirstConnector returns the piece's first connector in world space.
// The first connector marks the ground anchor for terrain snapping.
func (p *PlacedPiece) FirstConnector() (Connector, bool) {
	conns := p.prefab.Connectors()
	if len(conns) == 0 {
		return Connector{}, false
	}
	return p.RotatedConnector(conns[0]), true
}

// BlockAt returns the prefab block for a world position inside the
// piece's hit box.
func (p *PlacedPiece) BlockAt(world Vec3) uint16 {
	local := world.Sub(p.origin)
	// Invert the rotation: rotating by the complementary count maps the
	// rotated box back onto prefab space.
	inv := (4 - p.rotation) & 3
	orig := rotateLocal(local, rotatedSize(p.prefab.Size(), p.rotation), inv)
	return p.prefab.BlockAt(orig.X, orig.Y, orig.Z)
}

// MoveToGroundBy shifts the piece vertically and marks it snapped.
func (p *PlacedPiece) MoveToGroundBy(dy int) {
	p.origin.Y += dy
	p.hitBox = p.hitBox.MoveY(dy)
	p.movedToGround = true
}

// HasBeenMovedToGround reports whether the piece was already snapped.
func (p *PlacedPiece) HasBeenMovedToGround() bool { return p.movedToGround }
