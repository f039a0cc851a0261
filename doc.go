// Package hexlath is a coordinate-geometry engine for hexagonal tiling grids:
// conversions between offset, axial and cubic coordinates, 2D embedding of
// cells, and adjacency queries.
//
// What is inside:
//
//	layout       the four layout variants (pointy/flat × odd/even)
//	coord        Cubic, Axial and Offset value types, cube rounding, lines
//	geom         Point2 and tolerance-based float comparison
//	grid         the engine: conversions, centers, corners, neighbors,
//	             rings, spirals, distances
//	config       YAML + environment configuration of a grid
//	cmd/hexgrid  command-line front end over grid
//
// Quick ASCII example (pointy-odd, offset coordinates):
//
//	 / \ / \ / \
//	|0,0|1,0|2,0|
//	 \ / \ / \ / \
//	  |0,1|1,1|2,1|
//	 / \ / \ / \ /
//	|0,2|1,2|2,2|
//	 \ / \ / \ /
//
// Odd rows are shifted right by half a cell, so in direction order the
// neighbors of 1,1 are 2,1 2,0 1,0 0,1 1,2 2,2, while those of the even-row
// cell 1,2 are 2,2 1,1 0,1 0,2 0,3 1,3 (grid.OffsetNeighbors picks the table
// from the row parity of the queried cell).
//
// The library is pure: no I/O, no shared mutable state, no goroutines.
//
//	go get github.com/katalvlaran/hexlath/grid
package hexlath
