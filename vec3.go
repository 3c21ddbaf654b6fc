package crossview

import "math"

// Vec3 represents a 3D point or vector in world coordinates.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// MaxAbsDiff returns the largest per-coordinate absolute difference
// between two vectors.
func (v Vec3) MaxAbsDiff(w Vec3) float64 {
	return math.Max(math.Abs(v.X-w.X),
		math.Max(math.Abs(v.Y-w.Y), math.Abs(v.Z-w.Z)))
}
