// Package sqllex holds lexical facts about SQL dialects used by the renderer.
package sqllex

import "strings"

// OracleReservedWords lists Oracle keywords that must be double-quoted when used
// as identifiers: the reserved words of the Oracle SQL reference plus the few
// keywords (BEGIN, CASE, EXCLUDE, WHEN) that also break unquoted column names.
var OracleReservedWords = map[string]struct{}{
	"ACCESS": {}, "ADD": {}, "ALL": {}, "ALTER": {}, "AND": {}, "ANY": {}, "AS": {}, "ASC": {},
	"AUDIT": {}, "BEGIN": {}, "BETWEEN": {}, "BY": {}, "CASE": {}, "CHAR": {}, "CHECK": {},
	"CLUSTER": {}, "COLUMN": {}, "COLUMN_VALUE": {}, "COMMENT": {}, "COMPRESS": {}, "CONNECT": {},
	"CREATE": {}, "CURRENT": {}, "DATE": {}, "DECIMAL": {}, "DEFAULT": {}, "DELETE": {},
	"DESC": {}, "DISTINCT": {}, "DROP": {}, "ELSE": {}, "EXCLUDE": {}, "EXCLUSIVE": {},
	"EXISTS": {}, "FILE": {}, "FLOAT": {}, "FOR": {}, "FROM": {}, "GRANT": {}, "GROUP": {},
	"HAVING": {}, "IDENTIFIED": {}, "IMMEDIATE": {}, "IN": {}, "INCREMENT": {}, "INDEX": {},
	"INITIAL": {}, "INSERT": {}, "INTEGER": {}, "INTERSECT": {}, "INTO": {}, "IS": {},
	"LEVEL": {}, "LIKE": {}, "LOCK": {}, "LONG": {}, "MAXEXTENTS": {}, "MINUS": {},
	"MLSLABEL": {}, "MODE": {}, "MODIFY": {}, "NESTED_TABLE_ID": {}, "NOAUDIT": {},
	"NOCOMPRESS": {}, "NOT": {}, "NOWAIT": {}, "NULL": {}, "NUMBER": {}, "OF": {}, "OFFLINE": {},
	"ON": {}, "ONLINE": {}, "OPTION": {}, "OR": {}, "ORDER": {}, "PCTFREE": {}, "PRIOR": {},
	"PUBLIC": {}, "RAW": {}, "RENAME": {}, "RESOURCE": {}, "REVOKE": {}, "ROW": {}, "ROWID": {},
	"ROWNUM": {}, "ROWS": {}, "SELECT": {}, "SESSION": {}, "SET": {}, "SHARE": {}, "SIZE": {},
	"SMALLINT": {}, "START": {}, "SUCCESSFUL": {}, "SYNONYM": {}, "SYSDATE": {}, "TABLE": {},
	"THEN": {}, "TO": {}, "TRIGGER": {}, "UID": {}, "UNION": {}, "UNIQUE": {}, "UPDATE": {},
	"USER": {}, "VALIDATE": {}, "VALUES": {}, "VARCHAR": {}, "VARCHAR2": {}, "VIEW": {},
	"WHEN": {}, "WHENEVER": {}, "WHERE": {}, "WITH": {},
}

// IsOracleReservedWord reports whether word is an Oracle reserved keyword,
// ignoring case and surrounding whitespace.
func IsOracleReservedWord(word string) bool {
	_, exists := OracleReservedWords[strings.ToUpper(strings.TrimSpace(word))]
	return exists
}
