package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexlath/coord"
	"github.com/katalvlaran/hexlath/geom"
	"github.com/katalvlaran/hexlath/grid"
	"github.com/katalvlaran/hexlath/layout"
)

// TestCubicToOffset_Known pins a few hand-computed conversions per layout.
func TestCubicToOffset_Known(t *testing.T) {
	cases := []struct {
		l    layout.Layout
		c    coord.Cubic
		want coord.Offset
	}{
		{layout.PointyOdd, coord.NewCubic(1, -1, 0), coord.NewOffset(1, 0)},
		{layout.PointyOdd, coord.NewCubic(0, -1, 1), coord.NewOffset(0, 1)},
		{layout.PointyOdd, coord.NewCubic(-1, 0, 1), coord.NewOffset(-1, 1)},
		{layout.PointyEven, coord.NewCubic(0, -1, 1), coord.NewOffset(1, 1)},
		{layout.PointyEven, coord.NewCubic(-1, 0, 1), coord.NewOffset(0, 1)},
		{layout.FlatOdd, coord.NewCubic(1, 0, -1), coord.NewOffset(1, -1)},
		{layout.FlatOdd, coord.NewCubic(1, -1, 0), coord.NewOffset(1, 0)},
		{layout.FlatEven, coord.NewCubic(1, -1, 0), coord.NewOffset(1, 1)},
		{layout.FlatEven, coord.NewCubic(1, 0, -1), coord.NewOffset(1, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.l.String()+"/"+tc.c.String(), func(t *testing.T) {
			g := grid.MustNew(tc.l, 1)
			assert.Equal(t, tc.want, g.CubicToOffset(tc.c))
			assert.Equal(t, tc.c, g.OffsetToCubic(tc.want))
		})
	}
}

// TestOffset_RoundTrip checks offset→cubic→offset for every layout over a
// bounded range, including negative indices.
func TestOffset_RoundTrip(t *testing.T) {
	for _, g := range allGrids(t, 1) {
		t.Run(g.Layout().String(), func(t *testing.T) {
			for x := -7; x <= 7; x++ {
				for y := -7; y <= 7; y++ {
					o := coord.NewOffset(x, y)
					c := g.OffsetToCubic(o)
					require.True(t, c.Valid(), "%v → %v", o, c)
					require.Equal(t, o, g.CubicToOffset(c))
					require.Equal(t, o, g.AxialToOffset(g.OffsetToAxial(o)))
				}
			}
		})
	}
}

// TestAxial_RoundTrip checks axial(cubic(axial(x))) == axial(x).
func TestAxial_RoundTrip(t *testing.T) {
	g := grid.MustNew(layout.FlatOdd, 1)
	for c := range g.NeighborsAround(coord.Cubic{}, 6) {
		a := c.Axial()
		assert.Equal(t, a, a.Cubic().Axial())
		assert.Equal(t, c, a.Cubic())
	}
}

// TestPoint_RoundTrip maps cell centers back to their cells, including
// points nudged towards each corner.
func TestPoint_RoundTrip(t *testing.T) {
	for _, g := range allGrids(t, 3) {
		t.Run(g.Layout().String(), func(t *testing.T) {
			for c := range g.NeighborsAround(coord.NewCubic(2, -5, 3), 6) {
				center := g.CubicToPoint(c)
				require.Equal(t, c, g.PointToCubic(center))
				require.Equal(t, c.Axial(), g.PointToAxial(center))
				require.Equal(t, g.CubicToOffset(c), g.PointToOffset(center))
				for e := 0; e < 6; e++ {
					corner := g.CornerPoint(center, e)
					inside := center.Add(corner.Sub(center).Scale(0.9))
					require.Equal(t, c, g.XYToCubic(inside.X, inside.Y), "corner %d of %v", e, c)
				}
			}
		})
	}
}

// TestCenters_AgreeAcrossTypes checks offset, axial and cubic centers agree.
func TestCenters_AgreeAcrossTypes(t *testing.T) {
	for _, g := range allGrids(t, 1.25) {
		for x := -3; x <= 3; x++ {
			for y := -3; y <= 3; y++ {
				o := coord.NewOffset(x, y)
				c := g.OffsetToCubic(o)
				assert.Equal(t, g.CubicToPoint(c), g.OffsetToPoint(o))
				assert.Equal(t, g.AxialToPoint(c.Axial()), g.OffsetToPoint(o))
			}
		}
	}
}

// TestCorners checks corner distance, angle convention and edge normalization.
func TestCorners(t *testing.T) {
	for _, g := range allGrids(t, 2) {
		t.Run(g.Layout().String(), func(t *testing.T) {
			center := g.AxialToPoint(coord.NewAxial(3, -1))
			corners := g.Corners(center)
			for i, p := range corners {
				assert.InDelta(t, g.DescribedRadius(), p.Sub(center).Length(), 1e-9)
				assert.Equal(t, p, g.CornerPoint(center, i+6))
				assert.Equal(t, p, g.CornerPoint(center, i-6))
				assert.Equal(t, p, g.AxialCorner(coord.NewAxial(3, -1), i))
				assert.True(t, geom.Close(g.Side(), p.Sub(corners[(i+1)%6]).Length(), geom.DefaultTolerance))
			}

			first := geom.Degrees(corners[0].Sub(center).Angle())
			if g.Layout().Orientation() == layout.Pointy {
				assert.InDelta(t, -30, first, 1e-9)
			} else {
				assert.InDelta(t, 0, first, 1e-9)
			}

			c := coord.NewCubic(1, 1, -2)
			assert.Equal(t, g.CubicCorner(c, 2), g.OffsetCorner(g.CubicToOffset(c), 2))
		})
	}
}

// TestCorners_SharedBetweenNeighbors verifies adjacent cells share two corners.
func TestCorners_SharedBetweenNeighbors(t *testing.T) {
	tol := geom.Tolerance{Abs: 1e-9, Rel: 1e-9}
	for _, g := range allGrids(t, 1) {
		a := coord.Cubic{}
		for b := range g.Neighbors(a) {
			shared := 0
			for _, p := range g.Corners(g.CubicToPoint(a)) {
				for _, q := range g.Corners(g.CubicToPoint(b)) {
					if p.Similar(q, tol) {
						shared++
					}
				}
			}
			assert.Equal(t, 2, shared, "%s %v/%v", g.Layout(), a, b)
		}
	}
}

// TestXYToCubic_Origin checks tiny offsets around the origin stay put.
func TestXYToCubic_Origin(t *testing.T) {
	for _, g := range allGrids(t, 1) {
		for deg := 0.0; deg < 360; deg += 15 {
			p := geom.Polar(0.5*g.InscribedRadius(), deg*math.Pi/180)
			assert.Equal(t, coord.Cubic{}, g.PointToCubic(p))
		}
	}
}
