// SPDX-License-Identifier: MIT

// Package geom holds the continuous 2D side of hex geometry: the Point2
// vector type returned by the grid engine and tolerance-based comparison of
// floats and vectors.
//
// Numeric policy:
//
//   - Comparisons combine an absolute and a relative epsilon (Tolerance).
//   - Degenerate inputs are not special-cased: normalizing a zero vector
//     yields NaN components, and NaN never compares Close to anything.
package geom

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Point2 is a point or free vector in the plane.
type Point2 struct {
	X, Y float64
}

// Pt is shorthand for Point2{X: x, Y: y}.
func Pt(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// Add returns p+q.
func (p Point2) Add(q Point2) Point2 { return Point2{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point2) Sub(q Point2) Point2 { return Point2{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p*k.
func (p Point2) Scale(k float64) Point2 { return Point2{X: p.X * k, Y: p.Y * k} }

// Mid returns the midpoint of p and q.
func (p Point2) Mid(q Point2) Point2 {
	return Point2{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Length is the Euclidean norm of p.
func (p Point2) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize scales p to unit length. A zero vector yields NaN components.
func (p Point2) Normalize() Point2 {
	l := p.Length()
	return Point2{X: p.X / l, Y: p.Y / l}
}

// Angle returns the direction of p in radians, in (-π, π].
func (p Point2) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Rotate turns p about the origin by theta radians (counter-clockwise in a
// y-up frame).
func (p Point2) Rotate(theta float64) Point2 {
	sin, cos := math.Sincos(theta)
	return Point2{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Polar returns the point at distance r from the origin in direction theta
// (radians).
func Polar(r, theta float64) Point2 {
	sin, cos := math.Sincos(theta)
	return Point2{X: r * cos, Y: r * sin}
}

// Similar reports whether p and q are component-wise Close under tol.
func (p Point2) Similar(q Point2, tol Tolerance) bool {
	return Close(p.X, q.X, tol) && Close(p.Y, q.Y, tol)
}

// String implements fmt.Stringer.
func (p Point2) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Tolerance is a combined absolute/relative epsilon.
// Two values a, b are Close when |a-b| ≤ Abs or |a-b| ≤ Rel·max(|a|,|b|).
type Tolerance struct {
	Abs float64
	Rel float64
}

// DefaultTolerance suits geometry computed from a handful of float64 ops.
var DefaultTolerance = Tolerance{Abs: 1e-9, Rel: 1e-9}

// Close compares two floats under tol. NaN is never Close; equal infinities are.
func Close[T constraints.Float](a, b T, tol Tolerance) bool {
	if a == b {
		return true
	}
	diff := math.Abs(float64(a) - float64(b))
	if math.IsNaN(diff) || math.IsInf(diff, 0) {
		return false
	}
	if diff <= tol.Abs {
		return true
	}
	scale := math.Max(math.Abs(float64(a)), math.Abs(float64(b)))
	return diff <= tol.Rel*scale
}

// Degrees converts radians to degrees.
func Degrees[T constraints.Float](rad T) T {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians[T constraints.Float](deg T) T {
	return deg * math.Pi / 180
}
