package noise

// Noise is a stateless integer coordinate hash parameterized by a seed.
// Every structural decision in the generators (grid jitter, style pick,
// density acceptance, piece selection) is derived from it, so the same
// coordinates always yield the same value regardless of the order in
// which chunks are visited.
//
// The arithmetic deliberately runs in int32 with wrap-around; the output
// range is [0, 2^31).
type Noise struct {
	seed int32
}

// New creates a Noise hash for the given seed.
func New(seed int32) Noise {
	return Noise{seed: seed}
}

// IntNoise2D hashes a 2D integer coordinate into [0, 2^31).
func (n Noise) IntNoise2D(x, z int32) int32 {
	v := x + z*57 + n.seed*57*57
	v = (v << 13) ^ v
	return (v*(v*v*15731+789221) + 1376312589) & 0x7fffffff
}

// IntNoise3D hashes a 3D integer coordinate into [0, 2^31).
func (n Noise) IntNoise3D(x, y, z int32) int32 {
	v := x + y*57 + z*57*57 + n.seed*57*57*57
	v = (v << 13) ^ v
	return (v*(v*v*15731+789221) + 1376312589) & 0x7fffffff
}
