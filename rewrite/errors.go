package rewrite

import "fmt"

// InternalInvariantViolation represents a grammar production the walker
// cannot handle — should be impossible given full clause coverage. It is not
// recoverable: the walker panics with it, a caller that wants to log before
// the panic continues propagating recovers, logs, and re-panics rather than
// turning it into an ordinary error return.
type InternalInvariantViolation struct {
	Detail string
}

func (e InternalInvariantViolation) Error() string {
	return fmt.Sprintf("internal invariant violation: %s", e.Detail)
}

func violate(format string, args ...interface{}) {
	panic(InternalInvariantViolation{Detail: fmt.Sprintf(format, args...)})
}
