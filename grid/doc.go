// Package grid is the hexagonal grid engine: it converts between offset,
// axial and cubic coordinates, embeds cells in the plane, and answers
// adjacency queries (neighbors, rings, spirals, distances).
//
// What:
//
//   - Grid is an immutable calculator parameterized by a layout variant
//     (layout.PointyOdd, PointyEven, FlatOdd, FlatEven) and the inscribed
//     radius of a cell. The described radius is derived as
//     inscribed / cos(π/6).
//   - Conversions: Offset ↔ Cubic ↔ Axial, and Point2 ↔ Cubic. Offset and
//     point conversions depend on the layout; Axial ↔ Cubic never does.
//   - Geometry: cell centers, corner points, center-to-center offsets.
//   - Topology: six neighbors per cell, rings, filled spirals, cube distance,
//     straight lines, the point between two neighbors.
//
// Direction indices:
//
//	Indices 0..5 follow coord.CubicDirections, starting at the first
//	neighbor (east for pointy layouts, 30° for flat layouts). Any integer is
//	accepted and normalized with NormalizeIndex.
//
//	For Offset coordinates the direction table depends on the parity of the
//	queried cell (row parity for pointy layouts, column parity for flat
//	ones), so neighbor lookup is a two-level choice: the layout selects the
//	axis and a pair of tables, the cell selects one table of the pair.
//
// Sequences:
//
//	Neighbors, rings and spirals are returned as iter.Seq values. Each range
//	over them starts a fresh deterministic traversal; nothing is cached.
//
// Errors:
//
//   - ErrUndefinedLayout: New got a layout outside the closed set.
//   - ErrNotNeighbors: PointBetweenNeighbors on non-adjacent cells.
//   - ErrNeighborNotFound: NeighborIndex on a cell that is not adjacent.
//
// All errors are *GridError values carrying the operation, the grid state and
// the offending arguments; match them with errors.Is.
//
// Concurrency:
//
//	A Grid has no mutable state and may be shared across goroutines freely.
//
// Complexity:
//
//   - Conversions, neighbors, distance: O(1).
//   - NeighborIndex: O(6).
//   - NeighborsRing: O(radius); NeighborsAround: O(radius²).
package grid
