package coord

import "fmt"

// Axial is an axial coordinate (q, r). The implicit third axis is -q-r.
type Axial struct {
	Q, R int
}

// NewAxial builds an Axial.
func NewAxial(q, r int) Axial {
	return Axial{Q: q, R: r}
}

// S returns the implicit third cube component, -q-r.
func (a Axial) S() int {
	return -a.Q - a.R
}

// Cubic reconstructs the cube coordinate. Never rounds, never fails.
func (a Axial) Cubic() Cubic {
	return Cubic{X: a.Q, Y: a.S(), Z: a.R}
}

// Add returns a+o.
func (a Axial) Add(o Axial) Axial { return Axial{Q: a.Q + o.Q, R: a.R + o.R} }

// Sub returns a-o.
func (a Axial) Sub(o Axial) Axial { return Axial{Q: a.Q - o.Q, R: a.R - o.R} }

// Scale multiplies both components by k.
func (a Axial) Scale(k int) Axial { return Axial{Q: a.Q * k, R: a.R * k} }

// Div divides both components by k using integer division.
func (a Axial) Div(k int) Axial { return Axial{Q: a.Q / k, R: a.R / k} }

// Neg returns -a.
func (a Axial) Neg() Axial { return Axial{Q: -a.Q, R: -a.R} }

// String implements fmt.Stringer: "A-[q:r]".
func (a Axial) String() string {
	return fmt.Sprintf("A-[%d:%d]", a.Q, a.R)
}
