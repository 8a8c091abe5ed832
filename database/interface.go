package database

import (
	"github.com/gaborage/stmtkit/database/types"
)

// StatementBuilder defines the fluent SELECT builder contract.
// This type alias lets callers depend on the database package while the
// interface itself lives in database/types to avoid import cycles.
type StatementBuilder = types.StatementBuilder

// Direction is the ordering applied to a sort key.
// This type alias lets callers use database.Ascending without importing types.
type Direction = types.Direction

// SortKey is the (field, direction) pair controlling result ordering.
type SortKey = types.SortKey
