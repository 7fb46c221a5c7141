package searcher

// maxn returns the utility vector backed up to state. The player to move
// takes the child maximizing their own entry, the first one on ties. Nothing
// is pruned: shallow max^n pruning needs a bound on the sum of utilities,
// which heuristic evaluations do not provide.
func (r *search[S, M]) maxn(state S, depth int) []float64 {
	moves := r.expand(state, depth)
	if len(moves) == 0 {
		return r.utilities(state)
	}
	r.metrics.AddNode()

	player := r.game.ToMove(state)
	var best []float64
	for _, move := range moves {
		values := r.maxn(r.game.Result(state, move), depth+1)
		if best == nil || values[player] > best[player] {
			best = values
		}
	}
	return best
}

func (r *search[S, M]) utilities(state S) []float64 {
	r.metrics.AddLeaf()
	values := make([]float64, r.game.Players())
	for p := range values {
		values[p] = r.game.Utility(state, p)
	}
	return values
}
