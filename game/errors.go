package game

import "fmt"

// InvariantError reports a broken game invariant. It is raised with panic and
// means the caller applied something the move generator never produced.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return "game invariant violated: " + e.Reason
}

func invariant(format string, args ...any) *InvariantError {
	return &InvariantError{Reason: fmt.Sprintf(format, args...)}
}
