package grid

import (
	"iter"

	"github.com/katalvlaran/hexlath/coord"
	"github.com/katalvlaran/hexlath/geom"
)

// NeighborsRing yields the cells at exact cube distance radius from center:
// the center alone for radius 0, 6·radius cells otherwise, nothing for a
// negative radius. The walk starts radius steps from center along direction
// 4 and proceeds through directions 0..5.
// Complexity: O(radius).
func (g *Grid) NeighborsRing(center coord.Cubic, radius int) iter.Seq[coord.Cubic] {
	return g.cubicTopology().ring(center, radius)
}

// AxialNeighborsRing is NeighborsRing for axial coordinates.
func (g *Grid) AxialNeighborsRing(center coord.Axial, radius int) iter.Seq[coord.Axial] {
	return g.axialTopology().ring(center, radius)
}

// OffsetNeighborsRing is NeighborsRing for offset coordinates.
func (g *Grid) OffsetNeighborsRing(center coord.Offset, radius int) iter.Seq[coord.Offset] {
	return g.offsetTopology().ring(center, radius)
}

// NeighborsAround yields the filled spiral around center: rings 0 through
// radius-1 in increasing order, 1+3·radius·(radius-1) cells. Radius counts
// rings, so radius ≤ 0 yields nothing and radius 1 yields only the center.
// Complexity: O(radius²).
func (g *Grid) NeighborsAround(center coord.Cubic, radius int) iter.Seq[coord.Cubic] {
	return g.cubicTopology().around(center, radius)
}

// AxialNeighborsAround is NeighborsAround for axial coordinates.
func (g *Grid) AxialNeighborsAround(center coord.Axial, radius int) iter.Seq[coord.Axial] {
	return g.axialTopology().around(center, radius)
}

// OffsetNeighborsAround is NeighborsAround for offset coordinates.
func (g *Grid) OffsetNeighborsAround(center coord.Offset, radius int) iter.Seq[coord.Offset] {
	return g.offsetTopology().around(center, radius)
}

// CubeDistance is (|Δx|+|Δy|+|Δz|)/2.
func (g *Grid) CubeDistance(a, b coord.Cubic) int {
	return g.cubicTopology().distance(a, b)
}

// AxialDistance is CubeDistance after converting to cubic.
func (g *Grid) AxialDistance(a, b coord.Axial) int {
	return g.axialTopology().distance(a, b)
}

// OffsetDistance is CubeDistance after converting to cubic under g's layout.
func (g *Grid) OffsetDistance(a, b coord.Offset) int {
	return g.offsetTopology().distance(a, b)
}

// PointBetweenNeighbors returns the midpoint of the centers of two adjacent
// cells. On a regular grid this is also the midpoint of their shared edge.
//
// Errors:
//   - ErrNotNeighbors if a and b are not adjacent.
func (g *Grid) PointBetweenNeighbors(a, b coord.Cubic) (geom.Point2, error) {
	if p, ok := g.cubicTopology().between(a, b); ok {
		return p, nil
	}
	return geom.Point2{}, g.fail("PointBetweenNeighbors", ErrNotNeighbors, Arg{"a", a}, Arg{"b", b})
}

// AxialPointBetweenNeighbors is PointBetweenNeighbors for axial coordinates.
func (g *Grid) AxialPointBetweenNeighbors(a, b coord.Axial) (geom.Point2, error) {
	if p, ok := g.axialTopology().between(a, b); ok {
		return p, nil
	}
	return geom.Point2{}, g.fail("AxialPointBetweenNeighbors", ErrNotNeighbors, Arg{"a", a}, Arg{"b", b})
}

// OffsetPointBetweenNeighbors is PointBetweenNeighbors for offset coordinates.
func (g *Grid) OffsetPointBetweenNeighbors(a, b coord.Offset) (geom.Point2, error) {
	if p, ok := g.offsetTopology().between(a, b); ok {
		return p, nil
	}
	return geom.Point2{}, g.fail("OffsetPointBetweenNeighbors", ErrNotNeighbors, Arg{"a", a}, Arg{"b", b})
}

// Line returns the cells on the straight segment from a to b, both ends
// included; CubeDistance(a, b)+1 cells, each adjacent to the next.
func (g *Grid) Line(a, b coord.Cubic) []coord.Cubic {
	return g.cubicTopology().line(a, b)
}

// AxialLine is Line for axial coordinates.
func (g *Grid) AxialLine(a, b coord.Axial) []coord.Axial {
	return g.axialTopology().line(a, b)
}

// OffsetLine is Line for offset coordinates.
func (g *Grid) OffsetLine(a, b coord.Offset) []coord.Offset {
	return g.offsetTopology().line(a, b)
}
