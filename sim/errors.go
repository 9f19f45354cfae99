package sim

import "errors"

// The engine itself has no fatal paths once running: budget exhaustion
// skips the order, stock exhaustion clamps consumption. Errors exist only
// at the Run boundary, for caller contract violations.
var (
	// ErrInvalidPopulation is returned when Run is handed a non-positive
	// population. The external shell is expected to reject this first.
	ErrInvalidPopulation = errors.New("population must be a positive integer")
)
