package gamemaster

import (
	"fmt"
	"time"

	"blokus/communication"
	"blokus/engine"
	"blokus/game"
	"blokus/meta"

	"github.com/rs/zerolog/log"
)

// Seat is the game master's end of one player's channel.
type Seat interface {
	Notify(m communication.Message) error
	// Reply returns the next line the player wrote.
	Reply() (string, error)
}

// GameMaster referees a game between players that speak the line protocol:
// every turn it broadcasts the state and asks the active seat for a move.
type GameMaster struct {
	State *game.GameState
	Seats [game.Players]Seat
}

var _ engine.Engine = (*GameMaster)(nil)

func NewGameMaster(state *game.GameState, seats [game.Players]Seat) *GameMaster {
	return &GameMaster{State: state, Seats: seats}
}

// Run plays the game out. Seats without a legal move are skipped rather than
// asked, since a pass reads the same as a placement of piece 0.
func (gm *GameMaster) Run() (engine.Result, error) {
	result := engine.Result{StartTime: time.Now()}

	for p, seat := range gm.Seats {
		if err := seat.Notify(communication.Message{Number: &p}); err != nil {
			return result, fmt.Errorf("setup player %d: %w", p, err)
		}
	}

	passes := 0
	for step := 1; passes < game.Players; step++ {
		if step > meta.MAX_TURNS {
			return result, fmt.Errorf("game still running after %d turns", meta.MAX_TURNS)
		}
		player := gm.State.Active()
		record := engine.MoveRecord{Step: step, Player: player}

		if gm.State.TerminalTest() {
			passes++
			result.Passes++
			record.Pass = true
			result.Records = append(result.Records, record)
			gm.State = gm.State.Skip()
			continue
		}

		for p, seat := range gm.Seats {
			if err := seat.Notify(StateMessage(gm.State, p == player)); err != nil {
				return result, fmt.Errorf("notify player %d: %w", p, err)
			}
		}
		line, err := gm.Seats[player].Reply()
		if err != nil {
			return result, fmt.Errorf("player %d: %w", player, err)
		}
		move, err := DecodeMove(gm.State, line)
		if err != nil {
			return result, fmt.Errorf("player %d: %w", player, err)
		}
		record.Move = move
		result.Records = append(result.Records, record)

		gm.State = gm.State.Result(move)
		passes = 0
		result.Moves++
		log.Debug().Msgf("turn %d: player %d played %q", step, player, line)
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	result.Scores = gm.State.Scores()
	result.Winners = gm.State.Winners()
	return result, nil
}
