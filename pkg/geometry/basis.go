package geometry

import "math"

// Vector2 represents a point in a 2D plane projection
type Vector2 struct {
	X, Y float64
}

// Sub returns the difference between two 2D vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Cross returns the scalar (z) cross product of two 2D vectors
func (v Vector2) Cross(other Vector2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// PlaneBasis builds an orthonormal basis (u, v) perpendicular to normal.
// The arbitrary crossing axis is X, or Y when the normal's X component has
// magnitude >= 0.5, so the cross product never degenerates for a unit
// normal. ok is false when no valid basis exists (zero-length normal).
func PlaneBasis(normal Vector3) (u, v Vector3, ok bool) {
	arb := Vector3{X: 1}
	if math.Abs(normal.X) >= 0.5 {
		arb = Vector3{Y: 1}
	}

	u = normal.Cross(arb)
	if u.Length() == 0 {
		return Vector3{}, Vector3{}, false
	}
	u = u.Normalize()

	v = normal.Cross(u)
	if v.Length() == 0 {
		return Vector3{}, Vector3{}, false
	}
	v = v.Normalize()

	return u, v, true
}

// Project maps a point into (u, v) plane coordinates relative to origin
func Project(point, origin, u, v Vector3) Vector2 {
	rel := point.Sub(origin)
	return Vector2{X: rel.Dot(u), Y: rel.Dot(v)}
}

// Centroid returns the mean of a set of points
func Centroid(points []Vector3) Vector3 {
	if len(points) == 0 {
		return Vector3{}
	}
	var sum Vector3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(points)))
}

// PolygonNormal computes the normal of a vertex loop using Newell's method.
// Returns the zero vector for degenerate loops.
func PolygonNormal(points []Vector3) Vector3 {
	var n Vector3
	for i, cur := range points {
		next := points[(i+1)%len(points)]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return n.Normalize()
}
