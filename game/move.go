package game

import "fmt"

// Move places the piece PieceID, turned Rotation quarter turns, with its
// origin on Anchor.
type Move struct {
	PieceID  int
	Rotation int
	Anchor   Point
}

func (m Move) String() string {
	return fmt.Sprintf("piece=%d rot=%d at (%d,%d)", m.PieceID, m.Rotation, m.Anchor.X, m.Anchor.Y)
}
