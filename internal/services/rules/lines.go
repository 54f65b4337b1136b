package rules

// line is a winning triple of (x, y) coordinates on a 3x3 grid.
type line [3][2]int

// winLines enumerates the 8 winning patterns of a 3x3 grid: three rows,
// three columns, and the two diagonals. Used for small boards and the
// meta board alike.
var winLines = []line{
	// Rows
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	// Columns
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	// Diagonals
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}
