package agent

import (
	"errors"
	"time"

	"blokus/game"
	"blokus/meta"
	"blokus/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ErrNoMove is returned when the player to move has no legal placement.
var ErrNoMove = errors.New("no move available")

type Agent interface {
	// FindMove returns the move to play for the active player of state
	FindMove(state *game.GameState) (game.Move, error)
}

var _ searcher.Game[*game.GameState, game.Move] = game.Blokus{}

type config struct {
	depth     int
	model     searcher.Model
	budget    time.Duration
	evaluator game.Evaluator
	metrics   bool
}

type Option func(c *config)

func WithDepth(depth int) Option {
	return func(c *config) {
		if depth >= searcher.Greedy {
			c.depth = depth
		}
	}
}

func WithModel(model searcher.Model) Option {
	return func(c *config) {
		c.model = model
	}
}

// WithBudget enables iterative deepening: depths are searched from greedy
// upwards while the next iteration is expected to finish within budget.
func WithBudget(budget time.Duration) Option {
	return func(c *config) {
		if budget > 0 {
			c.budget = budget
		}
	}
}

func WithEvaluator(e game.Evaluator) Option {
	return func(c *config) {
		c.evaluator = e
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = true
	}
}

// FromConfig turns the search settings of a loaded configuration into options.
func FromConfig(cfg meta.Config) ([]Option, error) {
	model, err := searcher.ParseModel(cfg.Model)
	if err != nil {
		return nil, err
	}
	return []Option{
		WithDepth(cfg.Depth),
		WithModel(model),
		WithBudget(cfg.Budget),
		WithEvaluator(game.Evaluator{K: cfg.K, Radius: cfg.Radius}),
	}, nil
}

type searchAgent struct {
	searcher *searcher.Searcher[*game.GameState, game.Move]
	budget   time.Duration
	last     searcher.SearchMetric
}

// NewSearchAgent returns an agent that plays the move chosen by depth-limited
// adversarial search.
func NewSearchAgent(options ...Option) Agent {
	c := config{ // Default values
		depth:     meta.DefaultDepth,
		model:     searcher.MaxN,
		evaluator: game.Evaluator{K: meta.DefaultK, Radius: meta.DefaultRadius},
	}
	for _, option := range options {
		option(&c)
	}

	searchOptions := []searcher.Option{searcher.WithDepth(c.depth), searcher.WithModel(c.model)}
	if c.metrics {
		searchOptions = append(searchOptions, searcher.WithMetrics())
	}
	return &searchAgent{
		searcher: searcher.New[*game.GameState, game.Move](game.NewBlokus(c.evaluator), searchOptions...),
		budget:   c.budget,
	}
}

// LastMetric returns the metrics of the search behind the last move found.
func (a *searchAgent) LastMetric() searcher.SearchMetric {
	return a.last
}

func (a *searchAgent) FindMove(state *game.GameState) (game.Move, error) {
	a.last = searcher.SearchMetric{}
	moves := state.Actions()
	if len(moves) == 0 {
		return game.Move{}, ErrNoMove
	}
	if len(moves) == 1 {
		return moves[0], nil
	}

	if a.budget <= 0 {
		decision, err := a.searcher.Search(state)
		if err != nil {
			return game.Move{}, err
		}
		a.last = decision.Metric
		logDecision(state, decision, len(moves))
		return decision.Move, nil
	}

	deadline := time.Now().Add(a.budget)
	var decision searcher.Decision[game.Move]
	for depth := searcher.Greedy; depth <= a.searcher.Depth(); depth++ {
		start := time.Now()
		d, err := a.searcher.SearchDepth(state, depth)
		if err != nil {
			return game.Move{}, err
		}
		decision = d
		// The next ply multiplies the work by roughly the branching factor
		next := time.Since(start) * time.Duration(len(moves))
		if time.Now().Add(next).After(deadline) {
			break
		}
	}
	a.last = decision.Metric
	logDecision(state, decision, len(moves))
	return decision.Move, nil
}

func logDecision(state *game.GameState, d searcher.Decision[game.Move], branching int) {
	log.Debug().
		Int("player", state.Active()).
		Int("depth", d.Depth).
		Int("moves", branching).
		Float64("value", d.Value).
		Int("nodes", d.Metric.Nodes).
		Int("leaves", d.Metric.Leaves).
		Int("prunes", d.Metric.Prunes).
		Dur("took", d.Metric.Duration).
		Msgf("chose %s", d.Move)
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly random legal moves. It is
// not safe for concurrent use.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState) (game.Move, error) {
	moves := state.Actions()
	if len(moves) == 0 {
		return game.Move{}, ErrNoMove
	}
	return moves[a.rng.Intn(len(moves))], nil
}
