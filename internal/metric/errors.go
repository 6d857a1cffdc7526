package metric

import "errors"

// Domain errors for wormhole construction.
var (
	// ErrInvalidParameter indicates a physical parameter violates its
	// invariant (non-positive throat radius, shell radius inside the
	// Schwarzschild radius). Raised eagerly at construction, never deferred.
	ErrInvalidParameter = errors.New("metric: invalid physical parameter")

	// ErrUnknownFamily indicates an unrecognized shape or redshift function
	// family name passed to a factory.
	ErrUnknownFamily = errors.New("metric: unknown function family")
)
