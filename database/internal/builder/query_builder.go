// Package builder provides vendor-aware SELECT statement rendering.
// This package turns accumulated statement state into SQL text using squirrel,
// applying dialect-specific pagination and identifier handling for PostgreSQL,
// Oracle, and generic backends.
package builder

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	dbtypes "github.com/gaborage/stmtkit/database/types"
)

// wildcard is rendered when no projection has been configured.
const wildcard = "*"

// QueryBuilder renders SELECT statements for a single vendor.
// It wraps squirrel.StatementBuilderType with dialect-specific pagination
// and Oracle identifier quoting.
type QueryBuilder struct {
	vendor           dbtypes.Vendor
	statementBuilder squirrel.StatementBuilderType
}

// SelectSpec is a snapshot of builder state handed to the renderer.
// The renderer never retains or mutates it.
type SelectSpec struct {
	Table      string
	Columns    []string
	Predicates []string
	Sort       *dbtypes.SortKey
	Limit      uint64
	Offset     uint64
}

// NewQueryBuilder creates a renderer for the specified vendor.
//
// Predicates are opaque text with no bound arguments, so every vendor renders with
// question-mark placeholders: squirrel leaves the fragments byte-for-byte intact.
func NewQueryBuilder(vendor dbtypes.Vendor) *QueryBuilder {
	return &QueryBuilder{
		vendor:           vendor,
		statementBuilder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Vendor returns the database vendor string
func (qb *QueryBuilder) Vendor() string {
	return qb.vendor
}

// BuildSelect assembles the statement in fixed order: projection and target,
// conjunction of predicates, ordering, then the row bound. Empty segments are
// omitted entirely.
func (qb *QueryBuilder) BuildSelect(spec SelectSpec) (string, error) {
	columns := spec.Columns
	if len(columns) == 0 {
		columns = []string{wildcard}
	}

	query := qb.statementBuilder.
		Select(qb.quoteColumns(columns...)...).
		From(spec.Table)

	for _, predicate := range spec.Predicates {
		query = query.Where(predicate)
	}

	if spec.Sort != nil {
		query = query.OrderBy(qb.quoteColumn(spec.Sort.Field) + " " + string(spec.Sort.Direction))
	}

	query = qb.BuildLimitOffset(query, spec.Limit, spec.Offset)

	sql, args, err := query.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to render select on %s: %w", spec.Table, err)
	}
	if len(args) > 0 {
		return "", fmt.Errorf("unexpected bound arguments rendering select on %s", spec.Table)
	}

	return sql, nil
}

// BuildLimitOffset applies the row bound and offset using vendor-specific syntax.
// A zero limit means unbounded and a zero offset means none.
func (qb *QueryBuilder) BuildLimitOffset(query squirrel.SelectBuilder, limit, offset uint64) squirrel.SelectBuilder {
	switch qb.vendor {
	case dbtypes.Oracle:
		// Oracle uses OFFSET ... ROWS FETCH NEXT ... ROWS ONLY semantics (12c+)
		if suffix := buildOraclePaginationClause(limit, offset); suffix != "" {
			query = query.Suffix(suffix)
		}
		return query
	default:
		if limit > 0 {
			query = query.Limit(limit)
		}
		if offset > 0 {
			query = query.Offset(offset)
		}
		return query
	}
}

// quoteColumns handles vendor-specific column name quoting for SELECT lists
func (qb *QueryBuilder) quoteColumns(columns ...string) []string {
	if qb.vendor != dbtypes.Oracle {
		return columns
	}

	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = oracleQuoteIdentifier(col)
	}
	return quoted
}

// quoteColumn handles vendor-specific quoting for a single column reference
func (qb *QueryBuilder) quoteColumn(column string) string {
	if qb.vendor != dbtypes.Oracle {
		return column
	}
	return oracleQuoteIdentifier(column)
}
