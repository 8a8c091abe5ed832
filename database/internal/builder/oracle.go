package builder

import (
	"fmt"
	"strings"

	"github.com/gaborage/stmtkit/database/internal/sqllex"
)

func isOracleReservedWord(identifier string) bool {
	return identifier != "" && sqllex.IsOracleReservedWord(identifier)
}

// oracleQuoteIdentifier quotes reserved words, upper-casing them to match Oracle's
// default identifier case. Dotted references are handled per part and anything
// already quoted or not reserved (including the wildcard and expressions) is left alone.
func oracleQuoteIdentifier(column string) string {
	trimmed := strings.TrimSpace(column)
	if trimmed == "" {
		return trimmed
	}

	if strings.Contains(trimmed, ".") {
		parts := strings.Split(trimmed, ".")
		for i, part := range parts {
			parts[i] = oracleQuoteIdentifier(part)
		}
		return strings.Join(parts, ".")
	}

	if len(trimmed) >= 2 && trimmed[0] == '"' && trimmed[len(trimmed)-1] == '"' {
		return trimmed
	}

	if isOracleReservedWord(trimmed) {
		return `"` + strings.ToUpper(trimmed) + `"`
	}

	return trimmed
}

// buildOraclePaginationClause constructs an Oracle 12c+ pagination suffix.
// The result contains "OFFSET {offset} ROWS" and/or "FETCH NEXT {limit} ROWS ONLY";
// it is empty when both values are zero.
func buildOraclePaginationClause(limit, offset uint64) string {
	if limit == 0 && offset == 0 {
		return ""
	}

	parts := make([]string, 0, 2)
	if offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET %d ROWS", offset))
	}
	if limit > 0 {
		parts = append(parts, fmt.Sprintf("FETCH NEXT %d ROWS ONLY", limit))
	}

	return strings.Join(parts, " ")
}
