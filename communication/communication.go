package communication

import (
	"bytes"
	"encoding/json"
	"fmt"

	"blokus/agent"
	"blokus/game"
)

// Communicator abstracts the channel to the process driving the game.
type Communicator interface {
	// Receive blocks until the next message arrives. It returns io.EOF once
	// the driver closes the channel.
	Receive() (Message, error)
	Send(line string) error
}

// Message is one notification from the driver. Fields absent from the wire
// stay nil.
type Message struct {
	Error  *string        `json:"error,omitempty"`
	Number *int           `json:"number,omitempty"`
	Board  *Board         `json:"board,omitempty"`
	Blocks [][][]Position `json:"blocks,omitempty"`
	Turn   *int           `json:"turn,omitempty"`
	Move   *int           `json:"move,omitempty"`
}

type Board struct {
	Dimension    int        `json:"dimension"`
	Grid         [][]int    `json:"grid"`
	BonusSquares []Position `json:"bonus_squares"`
}

// Position is a point written either as {"x": 1, "y": 2} or as [1, 2].
type Position game.Point

func (p *Position) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var pair []int
		if err := json.Unmarshal(data, &pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("position %s: want 2 coordinates, got %d", data, len(pair))
		}
		p.X, p.Y = pair[0], pair[1]
		return nil
	}
	var point struct {
		X *int `json:"x"`
		Y *int `json:"y"`
	}
	if err := json.Unmarshal(data, &point); err != nil {
		return err
	}
	if point.X == nil || point.Y == nil {
		return fmt.Errorf("position %s: missing coordinate", data)
	}
	p.X, p.Y = *point.X, *point.Y
	return nil
}

func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(game.Point(p))
}

func points(positions []Position) []game.Point {
	out := make([]game.Point, len(positions))
	for i, p := range positions {
		out[i] = game.Point(p)
	}
	return out
}

// Snapshot converts a message carrying a board. Messages without a turn
// report -1.
func (m Message) Snapshot() (agent.Snapshot, error) {
	if m.Board == nil {
		return agent.Snapshot{}, fmt.Errorf("message has no board")
	}
	snap := agent.Snapshot{
		Number:    -1,
		Dimension: m.Board.Dimension,
		Grid:      m.Board.Grid,
		Bonus:     points(m.Board.BonusSquares),
		Turn:      -1,
	}
	if m.Number != nil {
		snap.Number = *m.Number
	}
	if m.Turn != nil {
		snap.Turn = *m.Turn
	}
	snap.Blocks = make([][]game.Shape, len(m.Blocks))
	for p, blocks := range m.Blocks {
		snap.Blocks[p] = make([]game.Shape, len(blocks))
		for i, block := range blocks {
			shape, err := game.NewShape(points(block)...)
			if err != nil {
				return agent.Snapshot{}, fmt.Errorf("player %d block %d: %w", p, i, err)
			}
			snap.Blocks[p][i] = shape
		}
	}
	return snap, nil
}
