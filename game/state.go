package game

import (
	"fmt"
	"slices"
)

// BonusMultiplier scales a placement's score when it covers a bonus square.
const BonusMultiplier = 3

// GameState is an immutable snapshot of a game. Every transition returns a
// new GameState; the receiver and everything it references stay untouched.
type GameState struct {
	board  *Board
	bonus  *BonusSquares
	scores [Players]int
	active int
	pieces [Players][]Piece
}

// NewGameState deep copies pieces so later changes by the caller cannot leak
// into the state.
func NewGameState(board *Board, bonus *BonusSquares, pieces [Players][]Piece, active int) *GameState {
	if active < 0 || active >= Players {
		panic(fmt.Sprintf("invalid active player %d", active))
	}
	gs := &GameState{
		board:  board,
		bonus:  bonus,
		active: active,
	}
	for p := range pieces {
		gs.pieces[p] = clonePieces(pieces[p])
	}
	return gs
}

// NewGame starts a game on an empty board with player 0 to move.
func NewGame(dimension int, bonus *BonusSquares, pieces [Players][]Piece) *GameState {
	return NewGameState(NewBoard(dimension), bonus, pieces, 0)
}

func (gs *GameState) Board() *Board {
	return gs.board
}

func (gs *GameState) Bonus() *BonusSquares {
	return gs.bonus
}

func (gs *GameState) Active() int {
	return gs.active
}

func (gs *GameState) Score(player int) int {
	return gs.scores[player]
}

func (gs *GameState) Scores() [Players]int {
	return gs.scores
}

// Pieces returns a deep copy of the pieces player has left.
func (gs *GameState) Pieces(player int) []Piece {
	return clonePieces(gs.pieces[player])
}

func clonePieces(pieces []Piece) []Piece {
	if pieces == nil {
		return nil
	}
	out := make([]Piece, len(pieces))
	for i, p := range pieces {
		out[i] = p.clone()
	}
	return out
}

func (gs *GameState) Piece(player, id int) (Piece, bool) {
	i := slices.IndexFunc(gs.pieces[player], func(p Piece) bool { return p.ID == id })
	if i < 0 {
		return Piece{}, false
	}
	return gs.pieces[player][i].clone(), true
}

// AnchorCandidates lists, in row-major order, the cells a new piece of player
// may be rooted at: empty cells diagonal to one of the player's cells, or the
// player's home corner while they have not placed anything.
func (gs *GameState) AnchorCandidates(player int) []Point {
	b := gs.board
	if !b.Owns(player) {
		home := b.HomeCorner(player)
		if b.At(home) != Empty {
			return nil
		}
		return []Point{home}
	}
	var anchors []Point
	for x := 0; x < b.n; x++ {
		for y := 0; y < b.n; y++ {
			p := Point{X: x, Y: y}
			if b.At(p) == Empty && b.touchesCorner(p, player) {
				anchors = append(anchors, p)
			}
		}
	}
	return anchors
}

// Actions enumerates the legal moves of the active player. The order is fixed:
// anchor candidate, then piece, then rotation, then the rotated cell aligned
// with the candidate. Moves are identified by the cells they cover, so a
// placement reachable from several candidates, or through a symmetric
// rotation, is listed once under its first occurrence. Anchors lie on the
// board.
func (gs *GameState) Actions() []Move {
	player := gs.active
	pieces := gs.pieces[player]
	if len(pieces) == 0 {
		return nil
	}
	anchors := gs.AnchorCandidates(player)
	if len(anchors) == 0 {
		return nil
	}

	oriented := make([][4]orientation, len(pieces))
	for i, piece := range pieces {
		oriented[i] = orientations(piece.Shape)
	}

	started := gs.board.Owns(player)
	seen := make(map[placement]struct{})
	var moves []Move
	for _, candidate := range anchors {
		for i, piece := range pieces {
			for _, o := range oriented[i] {
				for _, offset := range o.shape {
					anchor := candidate.Sub(offset)
					if !gs.board.InBounds(anchor) {
						continue
					}
					key := placement{piece: piece.ID, class: o.class, corner: anchor.Add(o.corner)}
					if _, ok := seen[key]; ok {
						continue
					}
					if gs.board.fits(player, o.shape, anchor, started) {
						seen[key] = struct{}{}
						moves = append(moves, Move{PieceID: piece.ID, Rotation: o.rotation, Anchor: anchor})
					}
				}
			}
		}
	}
	return moves
}

// placement identifies the cells covered by a piece: two placements of a
// piece are equal when their orientations share a cell pattern and their
// smallest cells coincide.
type placement struct {
	piece  int
	class  int
	corner Point
}

type orientation struct {
	rotation int
	shape    Shape
	class    int   // Lowest rotation with the same cell pattern
	corner   Point // Smallest offset in (x, y) order
}

func orientations(s Shape) [4]orientation {
	var out [4]orientation
	var patterns [4]string
	for r := range out {
		shape := s.Rotate(r)
		corner := smallest(shape)
		cells := make([]Point, len(shape))
		for i, o := range shape {
			cells[i] = o.Sub(corner)
		}
		slices.SortFunc(cells, comparePoints)
		patterns[r] = fmt.Sprint(cells)

		class := r
		for q := 0; q < r; q++ {
			if patterns[q] == patterns[r] {
				class = out[q].class
				break
			}
		}
		out[r] = orientation{rotation: r, shape: shape, class: class, corner: corner}
	}
	return out
}

func smallest(s Shape) Point {
	if len(s) == 0 {
		return Point{}
	}
	return slices.MinFunc(s, comparePoints)
}

func comparePoints(a, b Point) int {
	if a.X != b.X {
		return a.X - b.X
	}
	return a.Y - b.Y
}

// Result applies a move produced by Actions. Anything else breaks an
// invariant and panics with an *InvariantError.
func (gs *GameState) Result(m Move) *GameState {
	player := gs.active
	i := slices.IndexFunc(gs.pieces[player], func(p Piece) bool { return p.ID == m.PieceID })
	if i < 0 {
		panic(invariant("player %d has no piece %d", player, m.PieceID))
	}
	piece := gs.pieces[player][i]
	cells := piece.Shape.Rotate(m.Rotation).Cells(m.Anchor)

	next := &GameState{
		board:  gs.board.with(player, cells),
		bonus:  gs.bonus,
		scores: gs.scores,
		active: (player + 1) % Players,
		pieces: gs.pieces,
	}

	gain := piece.Size()
	if gs.bonus.Covers(cells) {
		gain *= BonusMultiplier
	}
	next.scores[player] += gain

	remaining := make([]Piece, 0, len(gs.pieces[player])-1)
	remaining = append(remaining, gs.pieces[player][:i]...)
	remaining = append(remaining, gs.pieces[player][i+1:]...)
	next.pieces[player] = remaining
	return next
}

// Skip passes the turn of an active player who cannot move.
func (gs *GameState) Skip() *GameState {
	next := *gs
	next.active = (gs.active + 1) % Players
	return &next
}

// TerminalTest reports whether the active player has no legal move.
func (gs *GameState) TerminalTest() bool {
	return len(gs.Actions()) == 0
}

// GameOver reports whether no player has a legal move left.
func (gs *GameState) GameOver() bool {
	for p := 0; p < Players; p++ {
		seat := *gs
		seat.active = p
		if !seat.TerminalTest() {
			return false
		}
	}
	return true
}

// Winners returns the players sharing the highest score.
func (gs *GameState) Winners() []int {
	best := slices.Max(gs.scores[:])
	var winners []int
	for p, s := range gs.scores {
		if s == best {
			winners = append(winners, p)
		}
	}
	return winners
}
