package grid

import (
	"iter"

	"github.com/katalvlaran/hexlath/coord"
	"github.com/katalvlaran/hexlath/geom"
)

// ringStartDirection is the direction walked from the center to reach the
// first cell of a ring.
const ringStartDirection = 4

// topology bundles the per-coordinate-type strategies so that ring, spiral,
// index and distance logic is written once for Cubic, Axial and Offset.
type topology[C any] struct {
	step      func(c C, dir int) C // dir is already in [0,6)
	equal     func(a, b C) bool
	toCubic   func(c C) coord.Cubic
	fromCubic func(c coord.Cubic) C
	toPoint   func(c C) geom.Point2
}

func equal[C comparable](a, b C) bool { return a == b }

// neighbors yields the six neighbors of center in direction order.
func (t topology[C]) neighbors(center C) iter.Seq[C] {
	return func(yield func(C) bool) {
		for i := 0; i < 6; i++ {
			if !yield(t.step(center, i)) {
				return
			}
		}
	}
}

// neighborIndex scans the six directions for n; ok is false when n is not
// adjacent to center.
func (t topology[C]) neighborIndex(center, n C) (idx int, ok bool) {
	for i := 0; i < 6; i++ {
		if t.equal(t.step(center, i), n) {
			return i, true
		}
	}
	return -1, false
}

func (t topology[C]) isNeighbor(a, b C) bool {
	_, ok := t.neighborIndex(a, b)
	return ok
}

// ring yields the 6·radius cells at exact distance radius from center.
// It walks radius steps along ringStartDirection, then radius steps along
// each direction 0..5, yielding the cell before each step. Radius 0 yields
// the center alone; a negative radius yields nothing.
func (t topology[C]) ring(center C, radius int) iter.Seq[C] {
	return func(yield func(C) bool) {
		switch {
		case radius < 0:
			return
		case radius == 0:
			yield(center)
			return
		}
		cur := center
		for i := 0; i < radius; i++ {
			cur = t.step(cur, ringStartDirection)
		}
		for dir := 0; dir < 6; dir++ {
			for i := 0; i < radius; i++ {
				if !yield(cur) {
					return
				}
				cur = t.step(cur, dir)
			}
		}
	}
}

// around concatenates rings 0..radius-1: 1+3·radius·(radius-1) cells for
// radius ≥ 1, nothing otherwise.
func (t topology[C]) around(center C, radius int) iter.Seq[C] {
	return func(yield func(C) bool) {
		for r := 0; r < radius; r++ {
			for c := range t.ring(center, r) {
				if !yield(c) {
					return
				}
			}
		}
	}
}

func (t topology[C]) distance(a, b C) int {
	return coord.Distance(t.toCubic(a), t.toCubic(b))
}

// between returns the midpoint of the centers of two adjacent cells.
func (t topology[C]) between(a, b C) (geom.Point2, bool) {
	if !t.isNeighbor(a, b) {
		return geom.Point2{}, false
	}
	return t.toPoint(a).Mid(t.toPoint(b)), true
}

func (t topology[C]) line(a, b C) []C {
	cells := coord.Line(t.toCubic(a), t.toCubic(b))
	out := make([]C, len(cells))
	for i, c := range cells {
		out[i] = t.fromCubic(c)
	}
	return out
}

func cubicStep(c coord.Cubic, dir int) coord.Cubic {
	return c.Add(coord.CubicDirections[dir])
}

func axialStep(a coord.Axial, dir int) coord.Axial {
	return a.Add(coord.AxialDirections[dir])
}

func (g *Grid) cubicTopology() topology[coord.Cubic] {
	return topology[coord.Cubic]{
		step:      cubicStep,
		equal:     equal[coord.Cubic],
		toCubic:   func(c coord.Cubic) coord.Cubic { return c },
		fromCubic: func(c coord.Cubic) coord.Cubic { return c },
		toPoint:   g.CubicToPoint,
	}
}

func (g *Grid) axialTopology() topology[coord.Axial] {
	return topology[coord.Axial]{
		step:      axialStep,
		equal:     equal[coord.Axial],
		toCubic:   coord.Axial.Cubic,
		fromCubic: coord.Cubic.Axial,
		toPoint:   g.AxialToPoint,
	}
}

func (g *Grid) offsetTopology() topology[coord.Offset] {
	return topology[coord.Offset]{
		step:      g.offsetStep,
		equal:     equal[coord.Offset],
		toCubic:   g.OffsetToCubic,
		fromCubic: g.CubicToOffset,
		toPoint:   g.OffsetToPoint,
	}
}
