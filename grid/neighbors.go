package grid

import (
	"iter"

	"github.com/katalvlaran/hexlath/coord"
	"github.com/katalvlaran/hexlath/layout"
)

// offsetTable holds the six offset steps matching coord.CubicDirections for
// one class of cell.
type offsetTable = [6]coord.Offset

// Offset steps for cells on an unshifted / shifted row (pointy layouts) or
// column (flat layouts).
var (
	pointyUnshifted = offsetTable{{X: +1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: +1}, {X: 0, Y: +1}}
	pointyShifted   = offsetTable{{X: +1, Y: 0}, {X: +1, Y: -1}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: +1}, {X: +1, Y: +1}}
	flatUnshifted   = offsetTable{{X: +1, Y: 0}, {X: +1, Y: -1}, {X: 0, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: +1}}
	flatShifted     = offsetTable{{X: +1, Y: +1}, {X: +1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: +1}, {X: 0, Y: +1}}
)

// offsetTables is indexed by layout, then by cell parity (0 even, 1 odd).
var offsetTables = map[layout.Layout][2]*offsetTable{
	layout.PointyOdd:  {&pointyUnshifted, &pointyShifted},
	layout.PointyEven: {&pointyShifted, &pointyUnshifted},
	layout.FlatOdd:    {&flatUnshifted, &flatShifted},
	layout.FlatEven:   {&flatShifted, &flatUnshifted},
}

// offsetDirections selects the direction table for cell o: the layout picks
// the parity axis (row for pointy, column for flat) and a table pair; the
// parity of o on that axis picks the table.
func (g *Grid) offsetDirections(o coord.Offset) *offsetTable {
	var axis int
	switch g.layout {
	case layout.PointyOdd, layout.PointyEven:
		axis = o.Y
	case layout.FlatOdd, layout.FlatEven:
		axis = o.X
	default:
		panic(g.undefined("OffsetNeighbor", Arg{"offset", o}))
	}
	return offsetTables[g.layout][axis&1]
}

func (g *Grid) offsetStep(o coord.Offset, dir int) coord.Offset {
	return o.Add(g.offsetDirections(o)[dir])
}

// Neighbor returns the neighbor of c in direction i (normalized modulo 6).
func (g *Grid) Neighbor(c coord.Cubic, i int) coord.Cubic {
	return cubicStep(c, NormalizeIndex(i))
}

// AxialNeighbor returns the neighbor of a in direction i.
func (g *Grid) AxialNeighbor(a coord.Axial, i int) coord.Axial {
	return axialStep(a, NormalizeIndex(i))
}

// OffsetNeighbor returns the neighbor of o in direction i. The step applied
// depends on the row (pointy) or column (flat) parity of o.
func (g *Grid) OffsetNeighbor(o coord.Offset, i int) coord.Offset {
	return g.offsetStep(o, NormalizeIndex(i))
}

// Neighbors yields the six neighbors of c in direction order.
func (g *Grid) Neighbors(c coord.Cubic) iter.Seq[coord.Cubic] {
	return g.cubicTopology().neighbors(c)
}

// AxialNeighbors yields the six neighbors of a in direction order.
func (g *Grid) AxialNeighbors(a coord.Axial) iter.Seq[coord.Axial] {
	return g.axialTopology().neighbors(a)
}

// OffsetNeighbors yields the six neighbors of o in direction order.
func (g *Grid) OffsetNeighbors(o coord.Offset) iter.Seq[coord.Offset] {
	return g.offsetTopology().neighbors(o)
}

// IsNeighbor reports whether b is one of the six neighbors of a.
func (g *Grid) IsNeighbor(a, b coord.Cubic) bool {
	return g.cubicTopology().isNeighbor(a, b)
}

// IsAxialNeighbor reports whether b is one of the six neighbors of a.
func (g *Grid) IsAxialNeighbor(a, b coord.Axial) bool {
	return g.axialTopology().isNeighbor(a, b)
}

// IsOffsetNeighbor reports whether b is one of the six neighbors of a.
func (g *Grid) IsOffsetNeighbor(a, b coord.Offset) bool {
	return g.offsetTopology().isNeighbor(a, b)
}

// NeighborIndex returns i such that Neighbor(center, i) == n.
//
// Errors:
//   - ErrNeighborNotFound if n is not adjacent to center.
//
// Complexity: O(6).
func (g *Grid) NeighborIndex(center, n coord.Cubic) (int, error) {
	if i, ok := g.cubicTopology().neighborIndex(center, n); ok {
		return i, nil
	}
	return -1, g.fail("NeighborIndex", ErrNeighborNotFound, Arg{"center", center}, Arg{"neighbor", n})
}

// AxialNeighborIndex is NeighborIndex for axial coordinates.
func (g *Grid) AxialNeighborIndex(center, n coord.Axial) (int, error) {
	if i, ok := g.axialTopology().neighborIndex(center, n); ok {
		return i, nil
	}
	return -1, g.fail("AxialNeighborIndex", ErrNeighborNotFound, Arg{"center", center}, Arg{"neighbor", n})
}

// OffsetNeighborIndex is NeighborIndex for offset coordinates.
func (g *Grid) OffsetNeighborIndex(center, n coord.Offset) (int, error) {
	if i, ok := g.offsetTopology().neighborIndex(center, n); ok {
		return i, nil
	}
	return -1, g.fail("OffsetNeighborIndex", ErrNeighborNotFound, Arg{"center", center}, Arg{"neighbor", n})
}
