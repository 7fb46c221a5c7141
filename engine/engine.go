package engine

import (
	"time"

	"blokus/game"
	"blokus/searcher"
)

type Engine interface {
	// Run plays a game until no player can move
	Run() (Result, error)
}

type MoveRecord struct {
	Step   int
	Player int
	Move   game.Move
	Pass   bool
	Metric searcher.SearchMetric
}

type Result struct {
	Scores    [game.Players]int
	Winners   []int
	Moves     int // Placements, passes excluded
	Passes    int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Records   []MoveRecord
}
