package pareto

import "errors"

// Validation errors surfaced by Decompose. All are local input failures:
// never retried, never substituted with a default result.
var (
	// ErrEmptyInput means the item list was empty.
	ErrEmptyInput = errors.New("no items to decompose")

	// ErrMissingField means the impact field was absent from every record.
	// Absence on only some records is tolerated (those read as 0).
	ErrMissingField = errors.New("impact field absent from every record")

	// ErrZeroTotal means the impact values summed to exactly zero, so
	// contribution percentages are undefined. Distinct from ErrEmptyInput.
	ErrZeroTotal = errors.New("total impact is zero")
)
