package coord

import "fmt"

// Offset is a row/column style index: X is the column, Y is the row.
// Its relation to Cubic/Axial depends on the grid layout in use.
type Offset struct {
	X, Y int
}

// NewOffset builds an Offset.
func NewOffset(x, y int) Offset {
	return Offset{X: x, Y: y}
}

// Add returns o+p.
func (o Offset) Add(p Offset) Offset { return Offset{X: o.X + p.X, Y: o.Y + p.Y} }

// Sub returns o-p.
func (o Offset) Sub(p Offset) Offset { return Offset{X: o.X - p.X, Y: o.Y - p.Y} }

// Scale multiplies both components by k.
func (o Offset) Scale(k int) Offset { return Offset{X: o.X * k, Y: o.Y * k} }

// Div divides both components by k using integer division.
func (o Offset) Div(k int) Offset { return Offset{X: o.X / k, Y: o.Y / k} }

// String implements fmt.Stringer: "O-[x:y]".
func (o Offset) String() string {
	return fmt.Sprintf("O-[%d:%d]", o.X, o.Y)
}
