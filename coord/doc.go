// Package coord defines the three hexagonal coordinate value types.
//
// What:
//
//   - Cubic  (x, y, z) with the invariant x+y+z = 0; the layout-independent
//     basis for adjacency and distance.
//   - Axial  (q, r), a lossless 2-of-3 projection of Cubic: q = x, r = z,
//     and the dropped axis is always -q-r.
//   - Offset (x, y), row/column indices whose meaning depends on a grid
//     layout; an Offset is not self-describing and is only converted through
//     a grid engine (package grid).
//
// All three are small comparable structs: == is component-wise equality and
// they can be used directly as map keys. Values are immutable; every
// operation returns a new value.
//
// Rounding:
//
//	RoundCubic rounds three float candidates to the nearest integer triple and
//	recomputes the axis with the largest rounding error as the negated sum of
//	the other two, so the result always satisfies x+y+z = 0.
//
// Debug strings:
//
//	Offset "O-[x:y]", Axial "A-[q:r]", Cubic "C-[x:y:z]" or "C-[Invalid]" when
//	the zero-sum invariant is broken (e.g. after a lossy Div).
package coord
