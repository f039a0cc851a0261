package grid

import (
	"github.com/katalvlaran/hexlath/coord"
	"github.com/katalvlaran/hexlath/geom"
	"github.com/katalvlaran/hexlath/layout"
)

// cornerAngle returns the angle in degrees of corner edge (any integer,
// normalized) as seen from the cell center. Pointy layouts are rotated by
// -30° so that a vertex points up.
func (g *Grid) cornerAngle(edge int) float64 {
	angle := 60 * float64(NormalizeIndex(edge))
	switch g.layout {
	case layout.PointyOdd, layout.PointyEven:
		angle -= 30
	case layout.FlatOdd, layout.FlatEven:
	default:
		panic(g.undefined("CornerPoint", Arg{"edge", edge}))
	}
	return angle
}

// CornerPoint returns corner edge of the cell centered at center:
// center + described·(cos θ, sin θ) with θ = 60°·edge (-30° when pointy).
func (g *Grid) CornerPoint(center geom.Point2, edge int) geom.Point2 {
	return center.Add(geom.Polar(g.described, geom.Radians(g.cornerAngle(edge))))
}

// Corners returns all six corners of the cell centered at center, in edge
// order.
func (g *Grid) Corners(center geom.Point2) [6]geom.Point2 {
	var out [6]geom.Point2
	for i := range out {
		out[i] = g.CornerPoint(center, i)
	}
	return out
}

// CubicCorner returns corner edge of cell c.
func (g *Grid) CubicCorner(c coord.Cubic, edge int) geom.Point2 {
	return g.CornerPoint(g.CubicToPoint(c), edge)
}

// AxialCorner returns corner edge of cell a.
func (g *Grid) AxialCorner(a coord.Axial, edge int) geom.Point2 {
	return g.CornerPoint(g.AxialToPoint(a), edge)
}

// OffsetCorner returns corner edge of cell o.
func (g *Grid) OffsetCorner(o coord.Offset, edge int) geom.Point2 {
	return g.CornerPoint(g.OffsetToPoint(o), edge)
}
