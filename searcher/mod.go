package searcher

import (
	"errors"
	"fmt"
	"strings"
)

// Game is what a turn-based game must expose to be searched. States are
// treated as immutable values: Result returns a new state and never changes
// its argument.
type Game[S any, M comparable] interface {
	Actions(state S) []M
	Result(state S, move M) S
	Utility(state S, player int) float64
	TerminalTest(state S) bool
	ToMove(state S) int
	Players() int
}

// Model selects how opponents are assumed to play.
type Model int

const (
	// MaxN backs up a utility vector; each player maximizes its own entry.
	MaxN Model = iota
	// Paranoid assumes every opponent minimizes the searching player's
	// utility, which reduces the game to two sides and allows alpha-beta.
	Paranoid
)

func (m Model) String() string {
	switch m {
	case MaxN:
		return "maxn"
	case Paranoid:
		return "paranoid"
	}
	return fmt.Sprintf("model(%d)", int(m))
}

func ParseModel(s string) (Model, error) {
	switch strings.ToLower(s) {
	case "maxn", "max^n", "":
		return MaxN, nil
	case "paranoid", "alphabeta":
		return Paranoid, nil
	}
	return MaxN, fmt.Errorf("unknown search model %q", s)
}

// Greedy is the depth limit that scores the root's children directly.
const Greedy = -1

var (
	ErrNoMoves = errors.New("no legal moves")
	// ErrAborted wraps a broken game invariant raised during search.
	ErrAborted = errors.New("search aborted")
)
