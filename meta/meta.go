// meta/meta.go
package meta

import "time"

// GO_ROUTINES defines the number of games a tournament plays concurrently.
const GO_ROUTINES = 8

// GAMES defines the number of games per match up.
const GAMES = 12

// MAX_TURNS bounds a self-play game, passes included.
const MAX_TURNS = 400

// DIMENSION defines the side of the standard board.
const DIMENSION = 20

const (
	DefaultDepth  = 1
	DefaultK      = 2.0
	DefaultRadius = 4
	DefaultBudget = 0 * time.Second
)
