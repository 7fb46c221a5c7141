package searcher

import (
	"fmt"
	"math"
)

// Searcher runs depth-limited adversarial search over a Game. It keeps no
// state between calls apart from its metrics collector.
type Searcher[S any, M comparable] struct {
	game Game[S, M]
	settings
}

// Decision is the outcome of one search.
type Decision[M comparable] struct {
	Move   M
	Value  float64 // Searching player's backed-up value of Move
	Depth  int
	Metric SearchMetric
}

func New[S any, M comparable](game Game[S, M], options ...Option) *Searcher[S, M] {
	s := &Searcher[S, M]{
		game: game,
		settings: settings{ // Default values
			depth:   0,
			model:   MaxN,
			metrics: NewDummyCollector(),
		},
	}
	for _, option := range options {
		option(&s.settings)
	}
	return s
}

func (s *Searcher[S, M]) Depth() int {
	return s.depth
}

func (s *Searcher[S, M]) Model() Model {
	return s.model
}

// Search picks the move of the player to move in state using the configured
// depth limit.
func (s *Searcher[S, M]) Search(state S) (Decision[M], error) {
	return s.SearchDepth(state, s.depth)
}

// SearchDepth is Search with an explicit depth limit, for drivers that deepen
// iteratively. Every root move is scored and the first one with the highest
// value wins.
func (s *Searcher[S, M]) SearchDepth(state S, depth int) (decision Decision[M], err error) {
	if depth < Greedy {
		return decision, fmt.Errorf("invalid depth limit %d", depth)
	}
	if s.game.TerminalTest(state) {
		return decision, ErrNoMoves
	}

	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				panic(r)
			}
			decision = Decision[M]{}
			err = fmt.Errorf("%w: %w", ErrAborted, cause)
		}
	}()

	s.metrics.Start(depth, s.model)
	run := &search[S, M]{
		Searcher: s,
		root:     s.game.ToMove(state),
		limit:    depth,
	}

	best := math.Inf(-1)
	found := false
	for _, move := range s.game.Actions(state) {
		child := s.game.Result(state, move)
		var value float64
		switch s.model {
		case Paranoid:
			value = run.paranoid(child, 0, best, math.Inf(1))
		default:
			value = run.maxn(child, 0)[run.root]
		}
		if !found || value > best {
			best = value
			decision.Move = move
			found = true
		}
	}

	decision.Value = best
	decision.Depth = depth
	decision.Metric = s.metrics.Complete()
	return decision, nil
}

// search carries the per-call context of one SearchDepth.
type search[S any, M comparable] struct {
	*Searcher[S, M]
	root  int
	limit int
}

// expand returns the moves of a node, or nil when the node is a cutoff node:
// deeper than the limit or without legal moves.
func (r *search[S, M]) expand(state S, depth int) []M {
	if depth > r.limit {
		return nil
	}
	return r.game.Actions(state)
}
