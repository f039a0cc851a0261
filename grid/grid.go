// SPDX-License-Identifier: MIT

package grid

import (
	"math"

	"github.com/katalvlaran/hexlath/layout"
)

// Grid is an immutable hex grid calculator.
// Build it with New; the zero value has an undefined layout and every
// layout-dependent method panics on it.
type Grid struct {
	layout    layout.Layout
	inscribed float64 // center → edge midpoint
	described float64 // center → vertex
}

// cos30 is cos(π/6), the inscribed/described radius ratio.
var cos30 = math.Cos(math.Pi / 6)

// New builds a Grid for layout l with the given inscribed radius.
// The described radius is inscribed / cos(π/6).
//
// The radius is not validated: a non-positive value yields degenerate
// geometry and is the caller's responsibility (package config rejects it).
//
// Errors:
//   - ErrUndefinedLayout (inside *GridError) if l is not a defined variant.
//
// Complexity: O(1).
func New(l layout.Layout, inscribed float64) (*Grid, error) {
	g := &Grid{
		layout:    l,
		inscribed: inscribed,
		described: inscribed / cos30,
	}
	if !l.Valid() {
		return nil, g.undefined("New", Arg{"layout", int(l)})
	}

	return g, nil
}

// MustNew is New that panics on error. Intended for package-level grids
// with constant arguments.
func MustNew(l layout.Layout, inscribed float64) *Grid {
	g, err := New(l, inscribed)
	if err != nil {
		panic(err)
	}
	return g
}

// Layout returns the layout variant.
func (g *Grid) Layout() layout.Layout { return g.layout }

// InscribedRadius is the center-to-edge-midpoint distance.
func (g *Grid) InscribedRadius() float64 { return g.inscribed }

// DescribedRadius is the center-to-vertex distance.
func (g *Grid) DescribedRadius() float64 { return g.described }

// Side is the edge length of a cell, equal to the described radius.
func (g *Grid) Side() float64 { return g.described }

// InscribedDiameter is twice the inscribed radius (flat-to-flat width).
func (g *Grid) InscribedDiameter() float64 { return 2 * g.inscribed }

// DescribedDiameter is twice the described radius (corner-to-corner width).
func (g *Grid) DescribedDiameter() float64 { return 2 * g.described }

// HorizontalOffset is the horizontal distance between the centers of two
// cells adjacent along a row (pointy) or between neighboring columns (flat).
//
//	pointy: 2·inscribed    flat: 1.5·described
func (g *Grid) HorizontalOffset() float64 {
	switch g.layout {
	case layout.PointyOdd, layout.PointyEven:
		return 2 * g.inscribed
	case layout.FlatOdd, layout.FlatEven:
		return 1.5 * g.described
	default:
		panic(g.undefined("HorizontalOffset"))
	}
}

// VerticalOffset is the vertical distance between the centers of cells in
// neighboring rows (pointy) or adjacent along a column (flat).
//
//	pointy: 1.5·described  flat: 2·inscribed
func (g *Grid) VerticalOffset() float64 {
	switch g.layout {
	case layout.PointyOdd, layout.PointyEven:
		return 1.5 * g.described
	case layout.FlatOdd, layout.FlatEven:
		return 2 * g.inscribed
	default:
		panic(g.undefined("VerticalOffset"))
	}
}

// AngleToFirstNeighbor is the angle in degrees from a center to the center
// of its direction-0 neighbor: 0 for pointy layouts, 30 for flat ones.
func (g *Grid) AngleToFirstNeighbor() float64 {
	switch g.layout {
	case layout.PointyOdd, layout.PointyEven:
		return 0
	case layout.FlatOdd, layout.FlatEven:
		return 30
	default:
		panic(g.undefined("AngleToFirstNeighbor"))
	}
}

// NormalizeIndex maps any integer onto the direction range [0,6).
func NormalizeIndex(i int) int {
	return ((i % 6) + 6) % 6
}
