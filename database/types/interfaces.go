// Package types contains the core statement interface definitions for stmtkit.
// These interfaces are separate from the main database package to avoid import cycles
// and to make them easily accessible for mocking and testing.
//
//nolint:revive // Package name "types" is intentionally generic to avoid circular
package types

// StatementBuilder defines the fluent interface for assembling a SELECT statement.
// Configuration methods return the builder itself so calls can be chained in any
// order; nothing is assembled until Render is called.
type StatementBuilder interface {
	// Configuration
	Select(fields ...string) StatementBuilder
	Where(condition string) StatementBuilder
	OrderBy(field string, direction Direction) StatementBuilder
	Limit(count int) StatementBuilder
	Offset(count int) StatementBuilder

	// Inspection
	Target() string
	Err() error

	// Statement generation
	Render() (string, error)
}

// SortKey is the (field, direction) pair controlling result ordering.
type SortKey struct {
	Field     string
	Direction Direction
}

// String returns the ORDER BY term for the key, e.g. "name ASC".
func (k SortKey) String() string {
	return k.Field + " " + string(k.Direction)
}
