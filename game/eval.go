package game

// Evaluate scores a state from one player's point of view.
type Evaluate func(gs *GameState, player int) float64

// Evaluator combines near-term mobility with the score already banked:
// the number of free cells within Radius steps of the player's liberties,
// plus K times the player's score.
type Evaluator struct {
	K      float64
	Radius int
}

func (e Evaluator) Evaluate(gs *GameState, player int) float64 {
	b := gs.board
	liberties := Liberties(b, player)

	reach := make(map[Point]struct{})
	for _, l := range liberties {
		for dx := -(e.Radius - 1); dx < e.Radius; dx++ {
			for dy := -(e.Radius - 1); dy < e.Radius; dy++ {
				p := Point{X: l.X + dx, Y: l.Y + dy}
				if l.Distance(p) < e.Radius && isFree(b, p, player) {
					reach[p] = struct{}{}
				}
			}
		}
	}
	return float64(len(reach)) + e.K*float64(gs.scores[player])
}

// Liberties returns, in row-major order and without repeats, the free cells
// diagonal to player's cells.
func Liberties(b *Board, player int) []Point {
	seen := make(map[Point]struct{})
	var liberties []Point
	for x := 0; x < b.n; x++ {
		for y := 0; y < b.n; y++ {
			if b.At(Point{X: x, Y: y}) != player {
				continue
			}
			for _, o := range cornerOffsets {
				p := Point{X: x + o.X, Y: y + o.Y}
				if _, ok := seen[p]; ok || !isFree(b, p, player) {
					continue
				}
				seen[p] = struct{}{}
				liberties = append(liberties, p)
			}
		}
	}
	return liberties
}

// isFree reports whether player could still cover p: on the board, empty and
// not edge-adjacent to the player's own cells.
func isFree(b *Board, p Point, player int) bool {
	return b.InBounds(p) && b.At(p) == Empty && !b.touchesEdge(p, player)
}
