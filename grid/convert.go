package grid

import (
	"math"

	"github.com/katalvlaran/hexlath/coord"
	"github.com/katalvlaran/hexlath/geom"
	"github.com/katalvlaran/hexlath/layout"
)

var (
	sqrt3     = math.Sqrt(3)
	sqrt3Half = sqrt3 / 2
	sqrt3Over = sqrt3 / 3
)

// OffsetToCubic converts an offset index under g's layout.
//
//	pointy-odd:  q = x - (y - (y&1))/2, r = y
//	pointy-even: q = x - (y + (y&1))/2, r = y
//	flat-odd:    q = x, r = y - (x - (x&1))/2
//	flat-even:   q = x, r = y - (x + (x&1))/2
//
// The remaining cube axis is -q-r.
func (g *Grid) OffsetToCubic(o coord.Offset) coord.Cubic {
	var q, r int
	switch g.layout {
	case layout.PointyOdd:
		q, r = o.X-(o.Y-(o.Y&1))/2, o.Y
	case layout.PointyEven:
		q, r = o.X-(o.Y+(o.Y&1))/2, o.Y
	case layout.FlatOdd:
		q, r = o.X, o.Y-(o.X-(o.X&1))/2
	case layout.FlatEven:
		q, r = o.X, o.Y-(o.X+(o.X&1))/2
	default:
		panic(g.undefined("OffsetToCubic", Arg{"offset", o}))
	}

	return coord.Axial{Q: q, R: r}.Cubic()
}

// CubicToOffset is the inverse of OffsetToCubic for the same layout.
func (g *Grid) CubicToOffset(c coord.Cubic) coord.Offset {
	q, r := c.X, c.Z
	switch g.layout {
	case layout.PointyOdd:
		return coord.Offset{X: q + (r-(r&1))/2, Y: r}
	case layout.PointyEven:
		return coord.Offset{X: q + (r+(r&1))/2, Y: r}
	case layout.FlatOdd:
		return coord.Offset{X: q, Y: r + (q-(q&1))/2}
	case layout.FlatEven:
		return coord.Offset{X: q, Y: r + (q+(q&1))/2}
	default:
		panic(g.undefined("CubicToOffset", Arg{"cubic", c}))
	}
}

// OffsetToAxial converts through Cubic.
func (g *Grid) OffsetToAxial(o coord.Offset) coord.Axial {
	return g.OffsetToCubic(o).Axial()
}

// AxialToOffset converts through Cubic.
func (g *Grid) AxialToOffset(a coord.Axial) coord.Offset {
	return g.CubicToOffset(a.Cubic())
}

// XYToCubic returns the cell containing the plane point (x, y).
// Fractional axial components are computed with side = described radius and
// rounded with coord.RoundCubic.
//
//	pointy: q = (x·√3/3 - y/3)/side, r = (2y/3)/side
//	flat:   q = (2x/3)/side,         r = (-x/3 + √3/3·y)/side
func (g *Grid) XYToCubic(x, y float64) coord.Cubic {
	side := g.described
	var q, r float64
	switch g.layout {
	case layout.PointyOdd, layout.PointyEven:
		q = (x*sqrt3Over - y/3) / side
		r = (2 * y / 3) / side
	case layout.FlatOdd, layout.FlatEven:
		q = (2 * x / 3) / side
		r = (-x/3 + sqrt3Over*y) / side
	default:
		panic(g.undefined("XYToCubic", Arg{"x", x}, Arg{"y", y}))
	}

	return coord.RoundCubic(q, -q-r, r)
}

// PointToCubic returns the cell containing p.
func (g *Grid) PointToCubic(p geom.Point2) coord.Cubic {
	return g.XYToCubic(p.X, p.Y)
}

// PointToAxial returns the cell containing p in axial form.
func (g *Grid) PointToAxial(p geom.Point2) coord.Axial {
	return g.PointToCubic(p).Axial()
}

// PointToOffset returns the cell containing p in offset form.
func (g *Grid) PointToOffset(p geom.Point2) coord.Offset {
	return g.CubicToOffset(g.PointToCubic(p))
}

// AxialToPoint returns the center of a cell. All other center lookups
// funnel through here.
//
//	pointy: x = side·(√3·q + √3/2·r), y = side·(3/2·r)
//	flat:   x = side·(3/2·q),         y = side·(√3/2·q + √3·r)
func (g *Grid) AxialToPoint(a coord.Axial) geom.Point2 {
	side := g.described
	q, r := float64(a.Q), float64(a.R)
	switch g.layout {
	case layout.PointyOdd, layout.PointyEven:
		return geom.Point2{X: side * (sqrt3*q + sqrt3Half*r), Y: side * (1.5 * r)}
	case layout.FlatOdd, layout.FlatEven:
		return geom.Point2{X: side * (1.5 * q), Y: side * (sqrt3Half*q + sqrt3*r)}
	default:
		panic(g.undefined("AxialToPoint", Arg{"axial", a}))
	}
}

// CubicToPoint returns the center of a cell.
func (g *Grid) CubicToPoint(c coord.Cubic) geom.Point2 {
	return g.AxialToPoint(c.Axial())
}

// OffsetToPoint returns the center of a cell.
func (g *Grid) OffsetToPoint(o coord.Offset) geom.Point2 {
	return g.AxialToPoint(g.OffsetToAxial(o))
}
