package coord

// CubicDirections are the six unit cube vectors, indexed 0..5.
// Index 0 points along +q (the first neighbor); each following index turns a
// further sixth of a turn. The set is closed under negation:
// CubicDirections[i].Neg() == CubicDirections[(i+3)%6].
var CubicDirections = [6]Cubic{
	{X: +1, Y: -1, Z: 0},
	{X: +1, Y: 0, Z: -1},
	{X: 0, Y: +1, Z: -1},
	{X: -1, Y: +1, Z: 0},
	{X: -1, Y: 0, Z: +1},
	{X: 0, Y: -1, Z: +1},
}

// AxialDirections mirror CubicDirections with the redundant axis dropped.
var AxialDirections = [6]Axial{
	{Q: +1, R: 0},
	{Q: +1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: +1},
	{Q: 0, R: +1},
}
