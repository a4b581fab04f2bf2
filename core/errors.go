package core

import "fmt"

// InvariantError reports a structural state that a correct index can never reach,
// e.g. a rotation finding a BALANCED child where only a lopsided one is possible.
// It always wraps ErrInvariant.
type InvariantError struct {
	Op   string // operation that observed the violation ("rebalance-insert", "validate", ...)
	Key  int    // key of the node where it was observed
	Want string // expected state
	Got  string // observed state
}

// Error implements error.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("core: invariant violation in %s at key %d: want %s, got %s", e.Op, e.Key, e.Want, e.Got)
}

// Unwrap returns ErrInvariant so callers can use errors.Is.
func (e *InvariantError) Unwrap() error { return ErrInvariant }
