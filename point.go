// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ribbon

import "math"

// KeyPoint is a pointer sample in surface coordinates, in arrival order.
//
// Width is the ribbon width at this sample. Zero means "use the generator's
// configured width"; a positive value tapers the ribbon at this point.
type KeyPoint struct {
	X, Y  float64
	Width float64
}

// Pt is a convenience function to create a KeyPoint with the default width.
func Pt(x, y float64) KeyPoint {
	return KeyPoint{X: x, Y: y}
}

// PtW creates a KeyPoint with an explicit width.
func PtW(x, y, width float64) KeyPoint {
	return KeyPoint{X: x, Y: y, Width: width}
}

// Sub returns the displacement from q to p.
func (p KeyPoint) Sub(q KeyPoint) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p displaced by v. The width is kept.
func (p KeyPoint) Add(v Vec2) KeyPoint {
	return KeyPoint{X: p.X + v.X, Y: p.Y + v.Y, Width: p.Width}
}

// SamePosition reports whether p and q are at exactly the same position.
// Widths are not compared.
func (p KeyPoint) SamePosition(q KeyPoint) bool {
	return p.X == q.X && p.Y == q.Y
}

// PressureWidth maps a normalized pointer force to a ribbon width:
// force*scale + base. Typical touch hardware reports force in [0, 1].
func PressureWidth(force, scale, base float64) float64 {
	return force*scale + base
}

// Vec2 represents a 2D displacement vector.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Cross returns the 2D cross product (z-component of the 3D cross product).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if v has zero or non-finite length.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 || math.IsInf(length, 0) || math.IsNaN(length) {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Atan2 returns the angle of the vector in radians.
func (v Vec2) Atan2() float64 {
	return math.Atan2(v.Y, v.X)
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}
