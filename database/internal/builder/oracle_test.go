package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbtypes "github.com/gaborage/stmtkit/database/types"
)

func TestOracleQuoteIdentifierHandlesReservedWords(t *testing.T) {
	if got := oracleQuoteIdentifier("number"); got != `"NUMBER"` {
		t.Fatalf("expected reserved word to be quoted, got %s", got)
	}
	if got := oracleQuoteIdentifier("name"); got != "name" {
		t.Fatalf("expected non-reserved word to remain unchanged")
	}
}

func TestOracleQuoteIdentifierEdgeCases(t *testing.T) {
	cases := map[string]string{
		"":             "",
		"*":            "*",
		`"level"`:      `"level"`,
		"a.number":     `a."NUMBER"`,
		"  size  ":     `"SIZE"`,
		"count(*)":     "count(*)",
		"accounts.id":  "accounts.id",
		"u.level.size": `u."LEVEL"."SIZE"`,
		"t.user":       `t."USER"`,
		"date":         `"DATE"`,
	}

	for input, expected := range cases {
		assert.Equal(t, expected, oracleQuoteIdentifier(input), "input %q", input)
	}
}

func TestBuildOraclePaginationClause(t *testing.T) {
	if clause := buildOraclePaginationClause(0, 0); clause != "" {
		t.Fatalf("expected empty clause, got %s", clause)
	}
	if clause := buildOraclePaginationClause(5, 0); clause != "FETCH NEXT 5 ROWS ONLY" {
		t.Fatalf("unexpected clause: %s", clause)
	}
	if clause := buildOraclePaginationClause(5, 10); clause != "OFFSET 10 ROWS FETCH NEXT 5 ROWS ONLY" {
		t.Fatalf("unexpected clause with offset: %s", clause)
	}
	if clause := buildOraclePaginationClause(0, 10); clause != "OFFSET 10 ROWS" {
		t.Fatalf("unexpected offset-only clause: %s", clause)
	}
}

func TestBuildSelectOracleQuotesReservedColumns(t *testing.T) {
	qb := NewQueryBuilder(dbtypes.Oracle)

	sql, err := qb.BuildSelect(SelectSpec{
		Table:   tableAccounts,
		Columns: []string{colID, "number", "level"},
		Sort:    &dbtypes.SortKey{Field: "level", Direction: dbtypes.Descending},
		Limit:   5,
	})

	require.NoError(t, err)
	assert.Equal(t, `SELECT id, "NUMBER", "LEVEL" FROM accounts ORDER BY "LEVEL" DESC FETCH NEXT 5 ROWS ONLY`, sql)
}

func TestBuildSelectOracleQuotesReservedDateAndUserColumns(t *testing.T) {
	qb := NewQueryBuilder(dbtypes.Oracle)

	sql, err := qb.BuildSelect(SelectSpec{
		Table:   "t",
		Columns: []string{"level", "COUNT(*) AS size", "t.user", "date"},
		Sort:    &dbtypes.SortKey{Field: "date", Direction: dbtypes.Descending},
		Offset:  3,
	})

	require.NoError(t, err)
	assert.Equal(t, `SELECT "LEVEL", COUNT(*) AS size, t."USER", "DATE" FROM t ORDER BY "DATE" DESC OFFSET 3 ROWS`, sql)
}
