package game

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// snapshot deep copies a state so later comparisons catch any aliasing.
func snapshot(gs *GameState) GameState {
	cp := *gs
	cp.board = &Board{n: gs.board.n, cells: slices.Clone(gs.board.cells)}
	for p := range cp.pieces {
		pieces := make([]Piece, len(gs.pieces[p]))
		for i, piece := range gs.pieces[p] {
			pieces[i] = Piece{ID: piece.ID, Shape: slices.Clone(piece.Shape)}
		}
		cp.pieces[p] = pieces
	}
	return cp
}

func singleCellGame(n int) *GameState {
	var pieces [Players][]Piece
	for p := range pieces {
		pieces[p] = Pieces([]Shape{MustShape(Point{0, 0})})
	}
	return NewGame(n, NewBonusSquares(), pieces)
}

func smallSetGame(n int, bonus *BonusSquares, size int) *GameState {
	var pieces [Players][]Piece
	for p := range pieces {
		pieces[p] = Pieces(StandardShapes()[:size])
	}
	return NewGame(n, bonus, pieces)
}

// cover names the cells a move of the active player would claim.
func cover(gs *GameState, m Move) string {
	piece, _ := gs.Piece(gs.Active(), m.PieceID)
	cells := piece.Shape.Rotate(m.Rotation).Cells(m.Anchor)
	slices.SortFunc(cells, comparePoints)
	return fmt.Sprint(m.PieceID, cells)
}

// exhaustiveActions tests every piece, rotation and board cell directly.
func exhaustiveActions(gs *GameState) map[string]struct{} {
	moves := make(map[string]struct{})
	player := gs.Active()
	for _, piece := range gs.pieces[player] {
		for r := 0; r < 4; r++ {
			for x := 0; x < gs.board.n; x++ {
				for y := 0; y < gs.board.n; y++ {
					anchor := Point{X: x, Y: y}
					if gs.board.IsLegal(player, piece.Shape, r, anchor) {
						moves[cover(gs, Move{PieceID: piece.ID, Rotation: r, Anchor: anchor})] = struct{}{}
					}
				}
			}
		}
	}
	return moves
}

func TestSingleCellOpening(t *testing.T) {
	gs := singleCellGame(4)

	for p := 0; p < Players; p++ {
		require.Equal(t, p, gs.Active())

		moves := gs.Actions()

		require.Equal(t, []Move{{PieceID: 0, Rotation: 0, Anchor: gs.Board().HomeCorner(p)}}, moves,
			"Player %d can only open on their home corner", p)
		gs = gs.Result(moves[0])
	}

	require.True(t, gs.GameOver(), "Every player has used their only piece")
	require.Equal(t, [Players]int{1, 1, 1, 1}, gs.Scores())
	require.Equal(t, []int{0, 1, 2, 3}, gs.Winners())
}

func TestActionsMatchExhaustiveSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for game := 0; game < 5; game++ {
		gs := smallSetGame(7, NewBonusSquares(), 9)
		for turn := 0; turn < 40 && !gs.GameOver(); turn++ {
			moves := gs.Actions()
			want := exhaustiveActions(gs)

			got := make(map[string]struct{}, len(moves))
			for _, m := range moves {
				got[cover(gs, m)] = struct{}{}

				piece, ok := gs.Piece(gs.Active(), m.PieceID)
				require.True(t, ok)
				for _, c := range piece.Shape.Rotate(m.Rotation).Cells(m.Anchor) {
					require.True(t, gs.Board().InBounds(c), "Legal placements stay on the board")
					require.Equal(t, Empty, gs.Board().At(c), "Legal placements cover empty cells")
				}
			}
			require.Len(t, got, len(moves), "Actions should not repeat a placement")
			require.Equal(t, want, got, "Move set should equal exhaustive testing (game %d turn %d)", game, turn)
			require.Equal(t, len(moves) == 0, gs.TerminalTest())

			if len(moves) == 0 {
				gs = gs.Skip()
				continue
			}
			gs = gs.Result(moves[rng.Intn(len(moves))])
		}
	}
}

func TestActionsAreDeterministic(t *testing.T) {
	gs := smallSetGame(8, NewBonusSquares(), 12)
	gs = gs.Result(gs.Actions()[3])
	gs = gs.Result(gs.Actions()[0])

	first := gs.Actions()
	second := gs.Actions()

	require.NotEmpty(t, first)
	require.Equal(t, first, second, "Repeated calls should return the same ordered sequence")
}

func TestAnchorCandidates(t *testing.T) {
	t.Run("home corner before the first piece", func(t *testing.T) {
		gs := singleCellGame(5)
		require.Equal(t, []Point{{0, 0}}, gs.AnchorCandidates(0))
		require.Equal(t, []Point{{4, 4}}, gs.AnchorCandidates(2))
	})

	t.Run("none when the home corner is taken", func(t *testing.T) {
		b := mustBoard(t,
			"1...",
			"....",
			"....",
			"....",
		)
		gs := NewGameState(b, nil, StandardPieces(), 0)

		require.Empty(t, gs.AnchorCandidates(0))
		require.Empty(t, gs.Actions())
		require.True(t, gs.TerminalTest())
	})

	t.Run("empty diagonals of own cells", func(t *testing.T) {
		b := mustBoard(t,
			"00..",
			"....",
			"..1.",
			"....",
		)
		gs := NewGameState(b, nil, StandardPieces(), 0)

		require.Equal(t, []Point{{0, 1}, {1, 1}, {2, 1}}, gs.AnchorCandidates(0),
			"Candidates are empty diagonals even when they touch an own edge")
	})
}

func TestResult(t *testing.T) {
	bonus := NewBonusSquares(Point{1, 1}, Point{6, 6})

	t.Run("leaves the source state untouched", func(t *testing.T) {
		gs := smallSetGame(7, bonus, 9)
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 12 && !gs.GameOver(); i++ {
			moves := gs.Actions()
			if len(moves) == 0 {
				gs = gs.Skip()
				continue
			}
			before := snapshot(gs)
			for _, m := range moves {
				gs.Result(m)
			}
			require.Equal(t, before, *gs, "Applying moves should not modify the parent state")
			gs = gs.Result(moves[rng.Intn(len(moves))])
		}
	})

	t.Run("updates board, score, pieces and turn", func(t *testing.T) {
		gs := smallSetGame(7, NewBonusSquares(), 9)
		m := Move{PieceID: 2, Rotation: 1, Anchor: Point{0, 0}}

		next := gs.Result(m)

		require.Equal(t, 1, next.Active())
		require.Equal(t, 3, next.Score(0))
		require.Equal(t, 0, next.Score(1))
		for y := 0; y < 3; y++ {
			require.Equal(t, 0, next.Board().At(Point{0, y}))
		}
		_, ok := next.Piece(0, 2)
		require.False(t, ok, "Used piece should be gone")
		require.Len(t, next.Pieces(0), 8)
		require.Len(t, next.Pieces(1), 9, "Other players keep their pieces")
	})

	t.Run("score grows by size or triple size", func(t *testing.T) {
		gs := smallSetGame(7, bonus, 9)
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 30 && !gs.GameOver(); i++ {
			moves := gs.Actions()
			if len(moves) == 0 {
				gs = gs.Skip()
				continue
			}
			m := moves[rng.Intn(len(moves))]
			player := gs.Active()
			piece, ok := gs.Piece(player, m.PieceID)
			require.True(t, ok)

			next := gs.Result(m)

			gain := next.Score(player) - gs.Score(player)
			cells := piece.Shape.Rotate(m.Rotation).Cells(m.Anchor)
			if bonus.Covers(cells) {
				require.Equal(t, 3*piece.Size(), gain)
			} else {
				require.Equal(t, piece.Size(), gain)
			}
			gs = next
		}
	})

	t.Run("bonus applies once per placement", func(t *testing.T) {
		both := NewBonusSquares(Point{0, 0}, Point{1, 0})
		gs := smallSetGame(5, both, 3)

		next := gs.Result(Move{PieceID: 1, Rotation: 0, Anchor: Point{0, 0}})

		require.Equal(t, 6, next.Score(0), "Two bonus cells still triple only once")
	})

	t.Run("applying an unknown piece breaks an invariant", func(t *testing.T) {
		gs := smallSetGame(5, nil, 3)
		next := gs.Result(Move{PieceID: 0, Anchor: Point{0, 0}})
		next = next.Skip().Skip().Skip()

		require.Panics(t, func() {
			next.Result(Move{PieceID: 0, Anchor: Point{2, 2}})
		})
		var invariantErr *InvariantError
		func() {
			defer func() {
				invariantErr, _ = recover().(*InvariantError)
			}()
			next.Result(Move{PieceID: 0, Anchor: Point{2, 2}})
		}()
		require.NotNil(t, invariantErr)
	})
}

func TestNewGameStateCopiesPieces(t *testing.T) {
	pieces := StandardPieces()
	gs := NewGameState(NewBoard(6), nil, pieces, 0)

	pieces[0][0] = Piece{ID: 99}

	p, ok := gs.Piece(0, 0)
	require.True(t, ok)
	require.Len(t, p.Shape, 1)

	returned := gs.Pieces(0)
	returned[0] = Piece{ID: 99}
	_, ok = gs.Piece(0, 0)
	require.True(t, ok, "Pieces should hand out a copy")

	t.Run("shapes are not shared", func(t *testing.T) {
		shapes := StandardPieces()
		gs := NewGameState(NewBoard(6), nil, shapes, 0)
		shapes[0][1].Shape[0] = Point{7, 7}

		gs.Pieces(0)[0].Shape[0] = Point{9, 9}
		piece, ok := gs.Piece(0, 1)
		require.True(t, ok)
		piece.Shape[1] = Point{8, 8}

		next := gs.Result(Move{PieceID: 2, Anchor: Point{0, 0}})
		next.Pieces(0)[0].Shape[0] = Point{9, 9}

		p, _ := gs.Piece(0, 0)
		require.Equal(t, Point{0, 0}, p.Shape[0], "Changing a returned shape must not reach the state")
		p, _ = gs.Piece(0, 1)
		require.Equal(t, Shape{{0, 0}, {1, 0}}, p.Shape)
		p, _ = next.Piece(0, 0)
		require.Equal(t, Point{0, 0}, p.Shape[0])
	})
}
