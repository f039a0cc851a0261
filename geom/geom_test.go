package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hexlath/geom"
)

// TestClose covers absolute, relative and non-finite branches.
func TestClose(t *testing.T) {
	tol := geom.Tolerance{Abs: 1e-6, Rel: 1e-3}
	cases := []struct {
		name string
		a, b float64
		want bool
	}{
		{"Equal", 1, 1, true},
		{"WithinAbs", 0, 5e-7, true},
		{"OutsideAbsSmall", 0, 1e-5, false},
		{"WithinRel", 1000, 1000.5, true},
		{"OutsideRel", 1000, 1002, false},
		{"NaN", math.NaN(), math.NaN(), false},
		{"Inf", math.Inf(1), math.Inf(1), true},
		{"InfMismatch", math.Inf(1), math.Inf(-1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.Close(tc.a, tc.b, tol))
		})
	}
	assert.True(t, geom.Close(float32(0.1), float32(0.1000000001), geom.DefaultTolerance))
}

// TestPoint2_Ops checks the vector arithmetic helpers.
func TestPoint2_Ops(t *testing.T) {
	p := geom.Pt(3, 4)
	q := geom.Pt(1, -2)
	assert.Equal(t, geom.Pt(4, 2), p.Add(q))
	assert.Equal(t, geom.Pt(2, 6), p.Sub(q))
	assert.Equal(t, geom.Pt(6, 8), p.Scale(2))
	assert.Equal(t, geom.Pt(2, 1), p.Mid(q))
	assert.InDelta(t, 5, p.Length(), 1e-12)
	assert.True(t, p.Normalize().Similar(geom.Pt(0.6, 0.8), geom.DefaultTolerance))
}

// TestPoint2_Rotate verifies quarter turns and length preservation.
func TestPoint2_Rotate(t *testing.T) {
	p := geom.Pt(1, 0)
	assert.True(t, p.Rotate(math.Pi/2).Similar(geom.Pt(0, 1), geom.DefaultTolerance))
	assert.True(t, p.Rotate(math.Pi).Similar(geom.Pt(-1, 0), geom.DefaultTolerance))
	v := geom.Pt(2, -7)
	assert.InDelta(t, v.Length(), v.Rotate(1.234).Length(), 1e-12)
	assert.InDelta(t, math.Pi/2, geom.Pt(0, 3).Angle(), 1e-12)
	assert.True(t, geom.Polar(2, math.Pi/3).Similar(geom.Pt(1, math.Sqrt(3)), geom.DefaultTolerance))
}

// TestPoint2_NormalizeZero documents NaN propagation.
func TestPoint2_NormalizeZero(t *testing.T) {
	n := geom.Point2{}.Normalize()
	assert.True(t, math.IsNaN(n.X))
	assert.True(t, math.IsNaN(n.Y))
	assert.False(t, n.Similar(n, geom.DefaultTolerance))
}

// TestAngles converts back and forth.
func TestAngles(t *testing.T) {
	assert.InDelta(t, 180.0, geom.Degrees(math.Pi), 1e-12)
	assert.InDelta(t, math.Pi/6, geom.Radians(30.0), 1e-12)
}
