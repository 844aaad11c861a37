package geometry

import "math"

// GridKey identifies the quantized grid cell of a position at a given
// distance threshold. Two positions with equal keys are treated as
// coincident for deduplication purposes.
type GridKey struct {
	X, Y, Z int64
}

// Quantize maps a position onto its grid cell at threshold t.
// t must be > 0.
func Quantize(v Vector3, t float64) GridKey {
	return GridKey{
		X: int64(math.Round(v.X / t)),
		Y: int64(math.Round(v.Y / t)),
		Z: int64(math.Round(v.Z / t)),
	}
}

// Less orders grid keys lexicographically, used to canonicalize the
// vertex-key multiset of a face.
func (k GridKey) Less(other GridKey) bool {
	if k.X != other.X {
		return k.X < other.X
	}
	if k.Y != other.Y {
		return k.Y < other.Y
	}
	return k.Z < other.Z
}
