package columns

import (
	"fmt"
	"reflect"
	"strings"
)

// parseStruct extracts the `db:"column"` tags of a struct type.
//
// Returns an error if:
//   - structPtr is not a pointer to a struct
//   - a db tag contains SQL comment or terminator sequences, or quotes
//   - no field carries a db tag
func parseStruct(structPtr any) (*Metadata, error) {
	rv := reflect.ValueOf(structPtr)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil, fmt.Errorf("expected a pointer to struct, got %T", structPtr)
	}

	rt := rv.Elem().Type()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected a pointer to struct, got pointer to %s", rt.Kind())
	}

	metadata := &Metadata{
		TypeName: rt.Name(),
		Columns:  make([]Column, 0, rt.NumField()),
		byField:  make(map[string]*Column),
	}

	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("db")
		// db:"-" is an explicit ignore
		if tag == "" || tag == "-" {
			continue
		}
		if err := validateTag(tag, rt.Name(), field.Name); err != nil {
			return nil, err
		}

		metadata.Columns = append(metadata.Columns, Column{
			FieldName:  field.Name,
			Name:       tag,
			FieldIndex: i,
		})
	}

	if len(metadata.Columns) == 0 {
		return nil, fmt.Errorf("no fields with `db` tags found in struct %s", rt.Name())
	}

	// Index after the slice stops growing so the pointers stay valid.
	for i := range metadata.Columns {
		metadata.byField[metadata.Columns[i].FieldName] = &metadata.Columns[i]
	}

	return metadata, nil
}

// validateTag rejects tags that would smuggle SQL into the projection.
func validateTag(tag, structName, fieldName string) error {
	for _, d := range []string{";", "--", "/*", "*/"} {
		if strings.Contains(tag, d) {
			return fmt.Errorf("invalid db tag %q in field %s.%s: contains dangerous SQL characters %q",
				tag, structName, fieldName, d)
		}
	}

	// Quoting is applied at render time per vendor.
	if strings.ContainsAny(tag, `"'`) {
		return fmt.Errorf("invalid db tag %q in field %s.%s: contains quotes", tag, structName, fieldName)
	}

	if strings.TrimSpace(tag) != tag || strings.ContainsAny(tag, " \t\n") {
		return fmt.Errorf("invalid db tag %q in field %s.%s: contains whitespace", tag, structName, fieldName)
	}

	return nil
}
