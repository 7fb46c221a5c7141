package gamemaster

import (
	"fmt"
	"strconv"
	"strings"

	"blokus/communication"
	"blokus/game"
)

// StateMessage describes state the way the driver does, with the move flag
// set for the seat that has to play.
func StateMessage(state *game.GameState, move bool) communication.Message {
	b := state.Board()
	board := &communication.Board{Dimension: b.Dimension(), Grid: b.Grid()}
	for x := 0; x < b.Dimension(); x++ {
		for y := 0; y < b.Dimension(); y++ {
			p := game.Point{X: x, Y: y}
			if state.Bonus().Covers([]game.Point{p}) {
				board.BonusSquares = append(board.BonusSquares, communication.Position(p))
			}
		}
	}

	blocks := make([][][]communication.Position, game.Players)
	for p := range blocks {
		for _, piece := range state.Pieces(p) {
			block := make([]communication.Position, len(piece.Shape))
			for i, o := range piece.Shape {
				block[i] = communication.Position(o)
			}
			blocks[p] = append(blocks[p], block)
		}
	}

	turn := state.Active()
	flag := 0
	if move {
		flag = 1
	}
	return communication.Message{Board: board, Blocks: blocks, Turn: &turn, Move: &flag}
}

// DecodeMove parses a "pieceIndex rotations x y" reply of the active player
// and checks it is legal.
func DecodeMove(state *game.GameState, line string) (game.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return game.Move{}, fmt.Errorf("move %q: want 4 fields, got %d", line, len(fields))
	}
	var values [4]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return game.Move{}, fmt.Errorf("move %q: %w", line, err)
		}
		values[i] = v
	}

	player := state.Active()
	pieces := state.Pieces(player)
	index, rotation := values[0], values[1]
	if index < 0 || index >= len(pieces) {
		return game.Move{}, fmt.Errorf("move %q: player %d has no piece %d", line, player, index)
	}
	if rotation < 0 || rotation > 3 {
		return game.Move{}, fmt.Errorf("move %q: rotation out of range", line)
	}
	piece := pieces[index]
	anchor := game.Point{X: values[2], Y: values[3]}
	if !state.Board().IsLegal(player, piece.Shape, rotation, anchor) {
		return game.Move{}, fmt.Errorf("move %q is illegal for player %d", line, player)
	}
	return game.Move{PieceID: piece.ID, Rotation: rotation, Anchor: anchor}, nil
}
