package engine

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"blokus/agent"
	"blokus/game"
	"blokus/meta"
	"blokus/searcher"

	"github.com/rs/zerolog/log"
)

// reporter is implemented by agents that can tell how they found their last
// move.
type reporter interface {
	LastMetric() searcher.SearchMetric
}

type Local struct {
	State  *game.GameState
	Agents [game.Players]agent.Agent
}

func LocalEngine(state *game.GameState, agents [game.Players]agent.Agent) *Local {
	for i, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("no agent for player %d", i))
		}
	}
	return &Local{State: state, Agents: agents}
}

// Run executes the game loop. A player without a legal move passes; the
// game ends once every player has passed in a row.
func (e *Local) Run() (Result, error) {
	result := Result{StartTime: time.Now()}

	log.Debug().Msgf("player %d is starting", e.State.Active())

	passes := 0
	for step := 1; passes < game.Players; step++ {
		if step > meta.MAX_TURNS {
			return result, fmt.Errorf("game still running after %d turns", meta.MAX_TURNS)
		}
		player := e.State.Active()
		record := MoveRecord{Step: step, Player: player}

		if e.State.TerminalTest() {
			passes++
			result.Passes++
			record.Pass = true
			result.Records = append(result.Records, record)
			e.State = e.State.Skip()
			continue
		}

		move, err := e.Agents[player].FindMove(e.State)
		if err != nil {
			if errors.Is(err, agent.ErrNoMove) {
				return result, fmt.Errorf("player %d reported no move while moves exist", player)
			}
			return result, fmt.Errorf("player %d: %w", player, err)
		}
		if !slices.Contains(e.State.Actions(), move) {
			return result, fmt.Errorf("player %d chose illegal move %s", player, move)
		}
		if r, ok := e.Agents[player].(reporter); ok {
			record.Metric = r.LastMetric()
		}
		record.Move = move
		result.Records = append(result.Records, record)

		e.State = e.State.Result(move)
		passes = 0
		result.Moves++
		log.Debug().Msgf("turn %d: player %d played %s, score %d", step, player, move, e.State.Score(player))
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	result.Scores = e.State.Scores()
	result.Winners = e.State.Winners()
	log.Debug().Msgf("game over after %d moves: scores %v, winners %v", result.Moves, result.Scores, result.Winners)
	return result, nil
}
