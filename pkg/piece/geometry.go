// Package piece implements the prefab piece model and the BFS piece
// generator used by structure generators: prefabs carry typed, oriented
// connectors on their surface, and the generator grows a forest of
// placed pieces by mating connectors of opposite types.
package piece

// Vec3 is an integer 3D vector (block coordinates).
type Vec3 struct {
	X, Y, Z int
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Cuboid is an axis-aligned box with inclusive corners.
type Cuboid struct {
	Min, Max Vec3
}

// NewCuboid returns the cuboid spanning origin..origin+size-1.
func NewCuboid(origin, size Vec3) Cuboid {
	return Cuboid{
		Min: origin,
		Max: Vec3{origin.X + size.X - 1, origin.Y + size.Y - 1, origin.Z + size.Z - 1},
	}
}

// Intersects reports whether the two cuboids share any block.
func (c Cuboid) Intersects(o Cuboid) bool {
	return c.Min.X <= o.Max.X && c.Max.X >= o.Min.X &&
		c.Min.Y <= o.Max.Y && c.Max.Y >= o.Min.Y &&
		c.Min.Z <= o.Max.Z && c.Max.Z >= o.Min.Z
}

// Contains reports whether o lies entirely inside c.
func (c Cuboid) Contains(o Cuboid) bool {
	return o.Min.X >= c.Min.X && o.Max.X <= c.Max.X &&
		o.Min.Y >= c.Min.Y && o.Max.Y <= c.Max.Y &&
		o.Min.Z >= c.Min.Z && o.Max.Z <= c.Max.Z
}

// MoveY shifts the cuboid vertically by dy.
func (c Cuboid) MoveY(dy int) Cuboid {
	c.Min.Y += dy
	c.Max.Y += dy
	return c
}

// Direction is an outward face direction of a connector.
type Direction int

const (
	DirXM Direction = iota // -X
	DirXP                  // +X
	DirYM                  // -Y
	DirYP                  // +Y
	DirZM                  // -Z
	DirZP                  // +Z
)

var dirOffsets = [6]Vec3{
	DirXM: {X: -1},
	DirXP: {X: 1},
	DirYM: {Y: -1},
	DirYP: {Y: 1},
	DirZM: {Z: -1},
	DirZP: {Z: 1},
}

// Offset returns the unit step along the direction.
func (d Direction) Offset() Vec3 {
	return dirOffsets[d]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirXM:
		return DirXP
	case DirXP:
		return DirXM
	case DirYM:
		return DirYP
	case DirYP:
		return DirYM
	case DirZM:
		return DirZP
	default:
		return DirZM
	}
}

// rotatedCCW maps a direction through one counter-clockwise quarter
// turn about the Y axis (matching rotateLocal below).
var rotatedCCW = [6]Direction{
	DirXM: DirZM,
	DirXP: DirZP,
	DirYM: DirYM,
	DirYP: DirYP,
	DirZM: DirXP,
	DirZP: DirXM,
}

// Rotated returns the direction after rot quarter turns about Y.
func (d Direction) Rotated(rot int) Direction {
	for i := 0; i < rot&3; i++ {
		d = rotatedCCW[d]
	}
	return d
}

// rotateLocal maps a prefab-local position through rot quarter turns
// about Y, keeping coordinates within the rotated bounding box.
func rotateLocal(p, size Vec3, rot int) Vec3 {
	switch rot & 3 {
	case 1:
		return Vec3{size.Z - 1 - p.Z, p.Y, p.X}
	case 2:
		return Vec3{size.X - 1 - p.X, p.Y, size.Z - 1 - p.Z}
	case 3:
		return Vec3{p.Z, p.Y, size.X - 1 - p.X}
	default:
		return p
	}
}

// rotatedSize returns the bounding size after rot quarter turns.
func rotatedSize(size Vec3, rot int) Vec3 {
	if rot&1 == 1 {
		return Vec3{size.Z, size.Y, size.X}
	}
	return size
}
