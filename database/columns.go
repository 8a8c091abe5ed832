package database

import "github.com/gaborage/stmtkit/database/internal/columns"

// Columns returns the column names declared by `db:"name"` tags on the struct
// pointed to by structPtr, in declaration order. Fields tagged `db:"-"` and
// untagged fields are skipped. Results are cached per struct type.
//
// Example:
//
//	type Product struct {
//	    SKU   string `db:"sku"`
//	    Level int    `db:"level"`
//	}
//
//	cols, _ := database.Columns(&Product{})
//	stmt.Select(cols...) // quoted as "LEVEL" when rendered for Oracle
func Columns(structPtr any) ([]string, error) {
	metadata, err := columns.Lookup(structPtr)
	if err != nil {
		return nil, err
	}
	return metadata.Names(), nil
}
