package game

// StandardShapes returns the 21 polyominoes of a standard player set,
// ordered by size.
func StandardShapes() []Shape {
	return []Shape{
		// 1
		MustShape(Point{0, 0}),
		// 2
		MustShape(Point{0, 0}, Point{1, 0}),
		// 3
		MustShape(Point{0, 0}, Point{1, 0}, Point{2, 0}),
		MustShape(Point{0, 0}, Point{1, 0}, Point{0, 1}),
		// 4
		MustShape(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{3, 0}),
		MustShape(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{2, 1}),
		MustShape(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{1, 1}),
		MustShape(Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 1}),
		MustShape(Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{2, 1}),
		// 5
		MustShape(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{3, 0}, Point{4, 0}),
		MustShape(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{3, 0}, Point{3, 1}),
		MustShape(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{2, 1}, Point{3, 1}),
		MustShape(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{1, 1}, Point{2, 1}),
		MustShape(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{0, 1}, Point{2, 1}),
		MustShape(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{3, 0}, Point{1, 1}),
		MustShape(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{1, 1}, Point{1, 2}),
		MustShape(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{2, 1}, Point{2, 2}),
		MustShape(Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{2, 1}, Point{2, 2}),
		MustShape(Point{0, 0}, Point{0, 1}, Point{1, 1}, Point{2, 1}, Point{2, 2}),
		MustShape(Point{1, 0}, Point{0, 1}, Point{1, 1}, Point{2, 1}, Point{1, 2}),
		MustShape(Point{1, 0}, Point{0, 1}, Point{1, 1}, Point{1, 2}, Point{2, 2}),
	}
}

// StandardPieces returns one full standard set per player.
func StandardPieces() [Players][]Piece {
	var pieces [Players][]Piece
	for p := range pieces {
		pieces[p] = Pieces(StandardShapes())
	}
	return pieces
}
