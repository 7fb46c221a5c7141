package metrics

import (
	"slices"
	"sync"
	"time"

	"blokus/game"
	"blokus/searcher"
)

type AgentConfig struct {
	ID     int
	Kind   string // "search" or "random"
	Depth  int
	Model  searcher.Model
	Budget time.Duration
	K      float64
	Radius int
}

type GameMetric struct {
	Scores    [game.Players]int
	Winners   []int
	Moves     int
	Passes    int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type GameRecord struct {
	ID    string            // UUID
	Index int               // Order within the experiment
	Seats [game.Players]int // AgentConfig.ID per player
	GameMetric
}

type MoveRecord struct {
	Game   string // GameRecord.ID
	Step   int
	Player int
	Agent  int // AgentConfig.ID
	Pass   bool
	searcher.SearchMetric
}

// Collector gathers the records of games played concurrently.
type Collector struct {
	mu    sync.Mutex
	games []GameRecord
	moves []MoveRecord
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Add(game GameRecord, moves []MoveRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.games = append(c.games, game)
	c.moves = append(c.moves, moves...)
}

// Games returns the game records ordered by Index.
func (c *Collector) Games() []GameRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	games := slices.Clone(c.games)
	slices.SortFunc(games, func(a, b GameRecord) int { return a.Index - b.Index })
	return games
}

// Moves returns the move records grouped by game in Games order.
func (c *Collector) Moves() []MoveRecord {
	games := c.Games()
	c.mu.Lock()
	defer c.mu.Unlock()
	order := make(map[string]int, len(games))
	for _, g := range games {
		order[g.ID] = g.Index
	}
	moves := slices.Clone(c.moves)
	slices.SortStableFunc(moves, func(a, b MoveRecord) int { return order[a.Game] - order[b.Game] })
	return moves
}
