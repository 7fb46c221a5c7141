package agent

import (
	"errors"
	"fmt"

	"blokus/game"

	"github.com/rs/zerolog/log"
)

// Snapshot is the game as reported by the driving process.
type Snapshot struct {
	Number    int
	Dimension int
	Grid      [][]int // Indexed Grid[x][y]
	Bonus     []game.Point
	Blocks    [][]game.Shape // Remaining shapes per player
	Turn      int
}

// EncodedMove is a move in the driver's wire form.
type EncodedMove struct {
	PieceIndex int // Index into the agent's remaining pieces before the move
	Rotations  int
	X, Y       int
}

func (m EncodedMove) String() string {
	return fmt.Sprintf("%d %d %d %d", m.PieceIndex, m.Rotations, m.X, m.Y)
}

var errNoState = errors.New("no game state received yet")

// Selector turns driver snapshots into game states and picks moves for one
// seat. Each Selector owns its state; nothing is shared between instances.
type Selector struct {
	agent  Agent
	number int
	turn   int
	state  *game.GameState
}

func NewSelector(agent Agent) *Selector {
	return &Selector{agent: agent, number: -1, turn: -1}
}

func (s *Selector) Number() int {
	return s.number
}

func (s *Selector) SetNumber(number int) error {
	if number < 0 || number >= game.Players {
		return fmt.Errorf("player number %d out of range", number)
	}
	s.number = number
	return nil
}

// State returns the last interpreted state, or nil.
func (s *Selector) State() *game.GameState {
	return s.state
}

// Turn returns the player to move in the last snapshot.
func (s *Selector) Turn() int {
	return s.turn
}

// InterpretState replaces the selector's view of the game. The snapshot's
// Number overrides the one set earlier unless it is negative.
func (s *Selector) InterpretState(snap Snapshot) error {
	if snap.Number >= 0 {
		if err := s.SetNumber(snap.Number); err != nil {
			return err
		}
	}
	if s.number < 0 {
		return errors.New("player number unknown")
	}
	if snap.Dimension <= 0 {
		return fmt.Errorf("invalid board dimension %d", snap.Dimension)
	}
	if len(snap.Grid) != snap.Dimension {
		return fmt.Errorf("grid has %d columns, want %d", len(snap.Grid), snap.Dimension)
	}
	board, err := game.BoardFromGrid(snap.Grid)
	if err != nil {
		return fmt.Errorf("interpret grid: %w", err)
	}
	for _, p := range snap.Bonus {
		if !board.InBounds(p) {
			return fmt.Errorf("bonus square %+v outside the board", p)
		}
	}
	if len(snap.Blocks) > game.Players {
		return fmt.Errorf("blocks for %d players, want at most %d", len(snap.Blocks), game.Players)
	}
	if snap.Turn < 0 || snap.Turn >= game.Players {
		return fmt.Errorf("turn %d out of range", snap.Turn)
	}

	var pieces [game.Players][]game.Piece
	for p, shapes := range snap.Blocks {
		for i, shape := range shapes {
			if len(shape) == 0 {
				return fmt.Errorf("player %d block %d is empty", p, i)
			}
		}
		pieces[p] = game.Pieces(shapes)
	}

	// The state is built for our own seat: the driver only asks for a move
	// on our turn.
	s.state = game.NewGameState(board, game.NewBonusSquares(snap.Bonus...), pieces, s.number)
	s.turn = snap.Turn
	return nil
}

// SelectMove returns the move to play from the last interpreted state, or
// ErrNoMove when the agent's seat has no legal placement.
func (s *Selector) SelectMove() (EncodedMove, error) {
	if s.state == nil {
		return EncodedMove{}, errNoState
	}
	if s.turn != s.number {
		log.Debug().Int("turn", s.turn).Int("number", s.number).Msg("asked to move out of turn")
	}
	if s.state.TerminalTest() {
		return EncodedMove{}, ErrNoMove
	}
	m, err := s.agent.FindMove(s.state)
	if err != nil {
		return EncodedMove{}, err
	}
	return EncodedMove{PieceIndex: m.PieceID, Rotations: m.Rotation, X: m.Anchor.X, Y: m.Anchor.Y}, nil
}
