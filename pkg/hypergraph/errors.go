package hypergraph

import "errors"

var (
	// ErrInvalidInstance is returned when an instance is structurally malformed:
	// negative sizes, out of range or duplicate vertices, empty edges or edges larger than d.
	ErrInvalidInstance = errors.New("invalid instance")

	// ErrInconsistent is returned by CheckConsistency when a degree cache disagrees
	// with the incidence relation.
	ErrInconsistent = errors.New("inconsistent degree cache")
)
