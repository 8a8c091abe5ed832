package columns

import (
	"fmt"
	"strings"
)

// Column describes one projected column taken from a struct field.
type Column struct {
	// FieldName is the Go struct field name (e.g., "UnitPrice")
	FieldName string

	// Name is the column name from the db tag (e.g., "unit_price")
	Name string

	// FieldIndex is the index of this field in the struct
	FieldIndex int
}

// Metadata is the cached column list for one struct type.
type Metadata struct {
	// TypeName is the name of the struct type (e.g., "SalesRow")
	TypeName string

	// Columns are ordered by struct declaration
	Columns []Column

	byField map[string]*Column
}

// Get returns the column name mapped to the given struct field.
func (m *Metadata) Get(fieldName string) (string, error) {
	col, ok := m.byField[fieldName]
	if !ok {
		return "", fmt.Errorf("column field %q not found in type %s (available fields: %s)",
			fieldName, m.TypeName, m.availableFields())
	}
	return col.Name, nil
}

// Names returns every column name in declaration order.
func (m *Metadata) Names() []string {
	names := make([]string, len(m.Columns))
	for i, col := range m.Columns {
		names[i] = col.Name
	}
	return names
}

func (m *Metadata) availableFields() string {
	fields := make([]string, 0, len(m.Columns))
	for _, col := range m.Columns {
		fields = append(fields, col.FieldName)
	}
	return strings.Join(fields, ", ")
}
