// Package database provides the fluent SELECT statement builder
package database

import (
	"fmt"
	"strings"

	"github.com/gaborage/stmtkit/database/internal/builder"
	"github.com/gaborage/stmtkit/database/types"
)

// Statement accumulates SELECT configuration through chained calls and renders it
// on demand with Render.
//
// The first invalid configuration call records an error and leaves the state
// untouched; every later configuration call is then ignored and Render reports
// that error instead of producing a partial statement. Check Err after a call
// to fail at the point of the mistake.
//
// A Statement is not safe for concurrent use. Callers sharing one across
// goroutines must serialize every call, including Render.
type Statement struct {
	target     string
	vendor     types.Vendor
	projection []string
	predicates []string
	sortKey    *types.SortKey
	limit      uint64
	offset     uint64
	err        error
}

// Option configures a Statement at construction time.
type Option func(*Statement)

// WithVendor renders the statement for the given dialect.
func WithVendor(vendor types.Vendor) Option {
	return func(s *Statement) {
		s.vendor = vendor
	}
}

// Ensure Statement implements the interface
var _ types.StatementBuilder = (*Statement)(nil)

// NewStatement creates a builder selecting from target. The target must be non-empty
// and is fixed for the lifetime of the builder.
func NewStatement(target string, opts ...Option) (*Statement, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, types.ErrEmptyTarget
	}

	s := &Statement{target: target, vendor: types.Generic}
	for _, opt := range opts {
		opt(s)
	}

	vendor, err := types.ParseVendor(s.vendor)
	if err != nil {
		return nil, err
	}
	s.vendor = vendor

	return s, nil
}

// Target returns the name of the queried resource.
func (s *Statement) Target() string {
	return s.target
}

// Vendor returns the dialect the statement renders for.
func (s *Statement) Vendor() types.Vendor {
	return s.vendor
}

// Err returns the first configuration error, if any.
func (s *Statement) Err() error {
	return s.err
}

// Projection returns a copy of the selected fields. Empty means every column.
func (s *Statement) Projection() []string {
	return append([]string(nil), s.projection...)
}

// Bounds returns the row limit and offset. Zero means unbounded and no offset.
func (s *Statement) Bounds() (limit, offset uint64) {
	return s.limit, s.offset
}

// Select replaces the projection. Calling it with no fields selects everything.
func (s *Statement) Select(fields ...string) types.StatementBuilder {
	if s.err != nil {
		return s
	}

	projection := make([]string, 0, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			s.err = fmt.Errorf("select field %d: %w", i, types.ErrEmptyField)
			return s
		}
		projection = append(projection, field)
	}

	s.projection = projection
	return s
}

// Where appends one opaque condition. Conditions are joined with AND in call order.
func (s *Statement) Where(condition string) types.StatementBuilder {
	if s.err != nil {
		return s
	}

	condition = strings.TrimSpace(condition)
	if condition == "" {
		s.err = fmt.Errorf("where condition %d: %w", len(s.predicates), types.ErrEmptyPredicate)
		return s
	}

	s.predicates = append(s.predicates, condition)
	return s
}

// OrderBy sets the sort key, replacing any previous one.
func (s *Statement) OrderBy(field string, direction types.Direction) types.StatementBuilder {
	if s.err != nil {
		return s
	}

	field = strings.TrimSpace(field)
	if field == "" {
		s.err = fmt.Errorf("order by: %w", types.ErrEmptyField)
		return s
	}
	if !direction.Valid() {
		s.err = fmt.Errorf("order by %s: %w: %q", field, types.ErrInvalidDirection, direction)
		return s
	}

	s.sortKey = &types.SortKey{Field: field, Direction: direction}
	return s
}

// Limit caps the number of returned rows. Zero removes the cap.
func (s *Statement) Limit(count int) types.StatementBuilder {
	if s.err != nil {
		return s
	}
	if count < 0 {
		s.err = fmt.Errorf("limit %d: %w", count, types.ErrNegativeLimit)
		return s
	}

	s.limit = uint64(count)
	return s
}

// Offset skips count rows before returning results. Zero removes the offset.
func (s *Statement) Offset(count int) types.StatementBuilder {
	if s.err != nil {
		return s
	}
	if count < 0 {
		s.err = fmt.Errorf("offset %d: %w", count, types.ErrNegativeOffset)
		return s
	}

	s.offset = uint64(count)
	return s
}

// Render assembles the statement from the current state. It does not modify the
// builder and returns the same text on every call until the state changes.
func (s *Statement) Render() (string, error) {
	if s.err != nil {
		return "", s.err
	}

	return builder.NewQueryBuilder(s.vendor).BuildSelect(builder.SelectSpec{
		Table:      s.target,
		Columns:    s.projection,
		Predicates: s.predicates,
		Sort:       s.sortKey,
		Limit:      s.limit,
		Offset:     s.offset,
	})
}

// String implements fmt.Stringer. It returns an empty string when Render fails.
func (s *Statement) String() string {
	sql, err := s.Render()
	if err != nil {
		return ""
	}
	return sql
}
