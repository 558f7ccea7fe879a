package piece

// Connector is a typed attachment point on a prefab's surface. Two
// connectors may mate only when their types are opposite (t and -t)
// and their faces point at each other.
type Connector struct {
	Pos  Vec3 // prefab-local, or world-space once placed
	Dir  Direction
	Type int
}

// Prefab is an immutable voxel template with typed connectors. Mutating
// methods are only used while a prefab is being built; pools hand out
// shared read-only references afterwards.
type Prefab struct {
	size          Vec3
	blocks        []uint16
	connectors    []Connector
	defaultWeight int
	moveToGround  bool
}

// NewPrefab creates an all-air prefab of the given size.
func NewPrefab(size Vec3, moveToGround bool) *Prefab {
	return &Prefab{
		size:          size,
		blocks:        make([]uint16, size.X*size.Y*size.Z),
		defaultWeight: 100,
		moveToGround:  moveToGround,
	}
}

// Size returns the bounding size of the prefab.
func (p *Prefab) Size() Vec3 { return p.size }

// MoveToGround reports whether placed copies snap to the terrain
// surface instead of keeping the Y their connector mating produced.
func (p *Prefab) MoveToGround() bool { return p.moveToGround }

// DefaultWeight returns the selection weight of the prefab.
func (p *Prefab) DefaultWeight() int { return p.defaultWeight }

// SetDefaultWeight sets the selection weight.
func (p *Prefab) SetDefaultWeight(w int) { p.defaultWeight = w }

func (p *Prefab) index(x, y, z int) int {
	return (y*p.size.Z+z)*p.size.X + x
}

// BlockAt returns the block state at a prefab-local position.
func (p *Prefab) BlockAt(x, y, z int) uint16 {
	return p.blocks[p.index(x, y, z)]
}

// SetBlock sets the block state at a prefab-local position.
func (p *Prefab) SetBlock(x, y, z int, state uint16) {
	p.blocks[p.index(x, y, z)] = state
}

// Fill sets every block of the prefab to the given state.
func (p *Prefab) Fill(state uint16) {
	for i := range p.blocks {
		p.blocks[i] = state
	}
}

// AddConnector appends a connector at a prefab-local position.
func (p *Prefab) AddConnector(x, y, z int, dir Direction, typ int) {
	p.connectors = append(p.connectors, Connector{Pos: Vec3{x, y, z}, Dir: dir, Type: typ})
}

// Connectors returns the prefab's connectors in insertion order.
func (p *Prefab) Connectors() []Connector {
	return p.connectors
}

// HasConnectorType reports whether any connector has the given type.
func (p *Prefab) HasConnectorType(typ int) bool {
	for _, c := range p.connectors {
		if c.Type == typ {
			return true
		}
	}
	return false
}
