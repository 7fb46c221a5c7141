package game

import (
	"fmt"
	"slices"
)

// Shape holds the cell offsets of a piece relative to its anchor.
type Shape []Point

// NewShape validates that no two offsets coincide.
func NewShape(offsets ...Point) (Shape, error) {
	seen := make(map[Point]struct{}, len(offsets))
	for _, o := range offsets {
		if _, ok := seen[o]; ok {
			return nil, fmt.Errorf("duplicate offset %+v in shape", o)
		}
		seen[o] = struct{}{}
	}
	shape := make(Shape, len(offsets))
	copy(shape, offsets)
	return shape, nil
}

// MustShape is NewShape for literal piece tables.
func MustShape(offsets ...Point) Shape {
	s, err := NewShape(offsets...)
	if err != nil {
		panic(err)
	}
	return s
}

// Rotate returns a new shape turned counter-clockwise by n quarter turns.
func (s Shape) Rotate(n int) Shape {
	rotated := make(Shape, len(s))
	for i, o := range s {
		rotated[i] = o.Rotate(n)
	}
	return rotated
}

// Cells returns the absolute board cells covered when the shape is anchored at anchor.
func (s Shape) Cells(anchor Point) []Point {
	cells := make([]Point, len(s))
	for i, o := range s {
		cells[i] = anchor.Add(o)
	}
	return cells
}

// Piece is a shape owned by a player. ID is the index of the piece in the
// owner's piece list as it was last received from the driver.
type Piece struct {
	ID    int
	Shape Shape
}

// clone copies the piece so the shape no longer aliases the original.
func (p Piece) clone() Piece {
	return Piece{ID: p.ID, Shape: slices.Clone(p.Shape)}
}

func (p Piece) Size() int {
	return len(p.Shape)
}

// Pieces wraps shapes into pieces numbered by position.
func Pieces(shapes []Shape) []Piece {
	pieces := make([]Piece, len(shapes))
	for i, s := range shapes {
		pieces[i] = Piece{ID: i, Shape: s}
	}
	return pieces
}
