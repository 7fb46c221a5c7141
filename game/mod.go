package game

// Blokus binds the state transitions and an evaluation function into the game
// interface consumed by the searcher.
type Blokus struct {
	Evaluate Evaluate
}

func NewBlokus(e Evaluator) Blokus {
	return Blokus{Evaluate: e.Evaluate}
}

func (Blokus) Actions(gs *GameState) []Move {
	return gs.Actions()
}

func (Blokus) Result(gs *GameState, m Move) *GameState {
	return gs.Result(m)
}

func (g Blokus) Utility(gs *GameState, player int) float64 {
	return g.Evaluate(gs, player)
}

func (Blokus) TerminalTest(gs *GameState) bool {
	return gs.TerminalTest()
}

func (Blokus) ToMove(gs *GameState) int {
	return gs.active
}

func (Blokus) Players() int {
	return Players
}
