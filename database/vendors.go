package database

import "github.com/gaborage/stmtkit/database/types"

// Re-export vendor identifiers and sort directions so callers using the database
// package do not need to import types while the single source of truth lives there.
const (
	Generic    = types.Generic
	PostgreSQL = types.PostgreSQL
	Oracle     = types.Oracle

	Ascending  = types.Ascending
	Descending = types.Descending
)
