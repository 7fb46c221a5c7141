package searcher

import "golang.org/x/exp/rand"

// mockGame is an explicit game tree: states are node indexes and moves are
// child positions.
type mockGame struct {
	players int
	nodes   []mockNode
}

type mockNode struct {
	player   int
	children []int
	values   []float64
}

func (g mockGame) Actions(state int) []int {
	moves := make([]int, len(g.nodes[state].children))
	for i := range moves {
		moves[i] = i
	}
	return moves
}

func (g mockGame) Result(state int, move int) int {
	return g.nodes[state].children[move]
}

func (g mockGame) Utility(state int, player int) float64 {
	return g.nodes[state].values[player]
}

func (g mockGame) TerminalTest(state int) bool {
	return len(g.nodes[state].children) == 0
}

func (g mockGame) ToMove(state int) int {
	return g.nodes[state].player
}

func (g mockGame) Players() int {
	return g.players
}

// randomTree builds a tree of the given height where players move in turn.
// Branching varies between 0 and maxBranch below the root so some interior
// nodes are terminal.
func randomTree(seed uint64, players, height, maxBranch int) mockGame {
	rng := rand.New(rand.NewSource(seed))
	g := mockGame{players: players}

	var grow func(player, level int) int
	grow = func(player, level int) int {
		id := len(g.nodes)
		values := make([]float64, players)
		for p := range values {
			values[p] = float64(rng.Intn(20))
		}
		g.nodes = append(g.nodes, mockNode{player: player, values: values})
		if level == height {
			return id
		}
		branch := 1 + rng.Intn(maxBranch)
		if level > 0 {
			branch = rng.Intn(maxBranch + 1)
		}
		children := make([]int, 0, branch)
		for i := 0; i < branch; i++ {
			children = append(children, grow((player+1)%players, level+1))
		}
		g.nodes[id].children = children
		return id
	}
	grow(0, 0)
	return g
}

// exhaustiveMaxN is an unpruned reference with the same cutoff rule.
func exhaustiveMaxN(g mockGame, state, depth, limit int) []float64 {
	if depth > limit || g.TerminalTest(state) {
		return g.nodes[state].values
	}
	player := g.ToMove(state)
	var best []float64
	for _, m := range g.Actions(state) {
		v := exhaustiveMaxN(g, g.Result(state, m), depth+1, limit)
		if best == nil || v[player] > best[player] {
			best = v
		}
	}
	return best
}

// exhaustiveParanoid is plain minimax over the paranoid reduction.
func exhaustiveParanoid(g mockGame, root, state, depth, limit int) float64 {
	if depth > limit || g.TerminalTest(state) {
		return g.nodes[state].values[root]
	}
	maximizing := g.ToMove(state) == root
	var best float64
	for i, m := range g.Actions(state) {
		v := exhaustiveParanoid(g, root, g.Result(state, m), depth+1, limit)
		if i == 0 || (maximizing && v > best) || (!maximizing && v < best) {
			best = v
		}
	}
	return best
}
