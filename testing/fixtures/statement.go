// Package fixtures provides pre-configured mocks for common statement builder scenarios.
package fixtures

import (
	"github.com/stretchr/testify/mock"

	"github.com/gaborage/stmtkit/testing/mocks"
)

// NewRenderingBuilder returns a mock builder for target that accepts any
// configuration call and renders sql.
func NewRenderingBuilder(target, sql string) *mocks.MockStatementBuilder {
	m := acceptAll(target)
	m.On("Err").Return(nil).Maybe()
	m.ExpectRender(sql).Maybe()
	return m
}

// NewFailingBuilder returns a mock builder for target that accepts any
// configuration call and reports err from both Err and Render.
func NewFailingBuilder(target string, err error) *mocks.MockStatementBuilder {
	m := acceptAll(target)
	m.On("Err").Return(err).Maybe()
	m.ExpectRenderError(err).Maybe()
	return m
}

func acceptAll(target string) *mocks.MockStatementBuilder {
	m := &mocks.MockStatementBuilder{}
	m.ExpectTarget(target).Maybe()
	m.On("Select", mock.Anything).Return(nil).Maybe()
	m.On("Where", mock.Anything).Return(nil).Maybe()
	m.On("OrderBy", mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("Limit", mock.Anything).Return(nil).Maybe()
	m.On("Offset", mock.Anything).Return(nil).Maybe()
	return m
}
