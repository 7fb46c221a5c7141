package searcher

import "math"

// paranoid is alpha-beta over the two-sided reduction of the game: the root
// player maximizes its utility and every other player minimizes it.
func (r *search[S, M]) paranoid(state S, depth int, alpha, beta float64) float64 {
	moves := r.expand(state, depth)
	if len(moves) == 0 {
		r.metrics.AddLeaf()
		return r.game.Utility(state, r.root)
	}
	r.metrics.AddNode()

	if r.game.ToMove(state) == r.root {
		v := math.Inf(-1)
		for _, move := range moves {
			v = max(v, r.paranoid(r.game.Result(state, move), depth+1, alpha, beta))
			if v >= beta {
				r.metrics.AddPrune()
				return v
			}
			alpha = max(alpha, v)
		}
		return v
	}

	v := math.Inf(1)
	for _, move := range moves {
		v = min(v, r.paranoid(r.game.Result(state, move), depth+1, alpha, beta))
		if v <= alpha {
			r.metrics.AddPrune()
			return v
		}
		beta = min(beta, v)
	}
	return v
}
