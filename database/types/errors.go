//revive:disable-next-line:var-naming // Package name "types" avoids circular imports.
package types

import "errors"

// Sentinel errors for invalid builder input.
// These can be used with errors.Is() for programmatic error checking.
var (
	// ErrEmptyTarget is returned when a statement is created without a target name.
	ErrEmptyTarget = errors.New("statement target cannot be empty")

	// ErrEmptyField is returned when a projection or sort field name is blank.
	ErrEmptyField = errors.New("field name cannot be empty")

	// ErrEmptyPredicate is returned when Where() is called with a blank condition.
	ErrEmptyPredicate = errors.New("predicate cannot be empty")

	// ErrInvalidDirection is returned for a sort direction other than ASC or DESC.
	ErrInvalidDirection = errors.New("invalid sort direction")

	// ErrNegativeLimit is returned when Limit() is called with a negative count.
	ErrNegativeLimit = errors.New("row limit cannot be negative")

	// ErrNegativeOffset is returned when Offset() is called with a negative count.
	ErrNegativeOffset = errors.New("row offset cannot be negative")

	// ErrLimitExceeded is returned by a Factory when a limit exceeds its configured maximum.
	ErrLimitExceeded = errors.New("row limit exceeds configured maximum")

	// ErrUnsupportedVendor is returned for an unknown SQL dialect.
	ErrUnsupportedVendor = errors.New("unsupported vendor")
)
