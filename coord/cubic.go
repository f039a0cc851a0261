package coord

import (
	"fmt"
	"math"
)

// Cubic is a cube coordinate. Valid values satisfy X+Y+Z == 0.
type Cubic struct {
	X, Y, Z int
}

// NewCubic builds a Cubic from trusted integers. The zero-sum invariant is
// the caller's responsibility; use Valid to check it.
func NewCubic(x, y, z int) Cubic {
	return Cubic{X: x, Y: y, Z: z}
}

// RoundCubic rounds fractional cube components to the nearest valid Cubic.
// The component with the largest rounding error is recomputed from the other
// two so the zero-sum invariant holds even for noisy input.
// Complexity: O(1).
func RoundCubic(fx, fy, fz float64) Cubic {
	rx, ry, rz := math.Round(fx), math.Round(fy), math.Round(fz)
	dx, dy, dz := math.Abs(rx-fx), math.Abs(ry-fy), math.Abs(rz-fz)

	x, y, z := int(rx), int(ry), int(rz)
	switch {
	case dx > dy && dx > dz:
		x = -y - z
	case dy > dz:
		y = -x - z
	default:
		z = -x - y
	}

	return Cubic{X: x, Y: y, Z: z}
}

// Valid reports whether c satisfies x+y+z == 0.
func (c Cubic) Valid() bool {
	return c.X+c.Y+c.Z == 0
}

// Axial drops the redundant Y axis.
func (c Cubic) Axial() Axial {
	return Axial{Q: c.X, R: c.Z}
}

// Add returns c+o.
func (c Cubic) Add(o Cubic) Cubic {
	return Cubic{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Sub returns c-o.
func (c Cubic) Sub(o Cubic) Cubic {
	return Cubic{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

// Scale multiplies every component by k.
func (c Cubic) Scale(k int) Cubic {
	return Cubic{X: c.X * k, Y: c.Y * k, Z: c.Z * k}
}

// Div divides every component by k using integer division.
// The result may violate the zero-sum invariant; k == 0 panics like any
// integer division by zero.
func (c Cubic) Div(k int) Cubic {
	return Cubic{X: c.X / k, Y: c.Y / k, Z: c.Z / k}
}

// Neg returns -c.
func (c Cubic) Neg() Cubic {
	return Cubic{X: -c.X, Y: -c.Y, Z: -c.Z}
}

// Length is the cube distance from the origin: (|x|+|y|+|z|)/2.
func (c Cubic) Length() int {
	return (abs(c.X) + abs(c.Y) + abs(c.Z)) / 2
}

// Rotate turns c about the origin by steps sixths of a turn, following the
// order of CubicDirections: Rotate(1) maps CubicDirections[i] onto
// CubicDirections[i+1]. Negative steps rotate the other way.
func (c Cubic) Rotate(steps int) Cubic {
	steps = ((steps % 6) + 6) % 6
	for ; steps > 0; steps-- {
		c = Cubic{X: -c.Y, Y: -c.Z, Z: -c.X}
	}
	return c
}

// String implements fmt.Stringer: "C-[x:y:z]", or "C-[Invalid]" when the
// invariant is broken.
func (c Cubic) String() string {
	if !c.Valid() {
		return "C-[Invalid]"
	}
	return fmt.Sprintf("C-[%d:%d:%d]", c.X, c.Y, c.Z)
}

// Lerp linearly interpolates between a and b in cube space and returns the
// fractional components; feed them to RoundCubic to obtain a cell.
func Lerp(a, b Cubic, t float64) (x, y, z float64) {
	x = float64(a.X) + float64(b.X-a.X)*t
	y = float64(a.Y) + float64(b.Y-a.Y)*t
	z = float64(a.Z) + float64(b.Z-a.Z)*t
	return x, y, z
}

// lineNudge keeps samples that fall exactly on a cell edge off the tie so
// rounding picks the same side consistently.
const lineNudge = 1e-6

// Line returns the cells crossed by the straight segment from a to b,
// inclusive of both ends. The result has Distance(a, b)+1 entries.
// Complexity: O(n) time and memory, n = Distance(a, b).
func Line(a, b Cubic) []Cubic {
	n := Distance(a, b)
	out := make([]Cubic, 0, n+1)
	if n == 0 {
		return append(out, a)
	}
	for i := 0; i <= n; i++ {
		x, y, z := Lerp(a, b, float64(i)/float64(n))
		out = append(out, RoundCubic(x+lineNudge, y+lineNudge, z-2*lineNudge))
	}
	return out
}

// Distance is the cube distance (|Δx|+|Δy|+|Δz|)/2 between a and b.
// The sum is always even for valid inputs so the division is exact.
func Distance(a, b Cubic) int {
	return a.Sub(b).Length()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
