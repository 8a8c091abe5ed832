//revive:disable-next-line:var-naming // Package name "types" avoids circular imports.
package types

import (
	"fmt"
	"strings"
)

// Vendor identifies the SQL dialect a statement is rendered for.
type Vendor = string

const (
	Generic    Vendor = "generic"
	PostgreSQL Vendor = "postgresql"
	Oracle     Vendor = "oracle"
)

// Vendors returns the supported dialects in a stable order.
func Vendors() []Vendor {
	return []Vendor{Generic, PostgreSQL, Oracle}
}

// ParseVendor normalizes a dialect name. An empty name selects Generic.
func ParseVendor(name string) (Vendor, error) {
	v := strings.ToLower(strings.TrimSpace(name))
	switch v {
	case "":
		return Generic, nil
	case Generic, PostgreSQL, Oracle:
		return v, nil
	case "postgres", "pg":
		return PostgreSQL, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedVendor, name, strings.Join(Vendors(), ", "))
	}
}

// Direction is the ordering applied to a sort key.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// Valid reports whether d is one of Ascending or Descending.
func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

// ParseDirection accepts asc, ascending, desc and descending in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}
