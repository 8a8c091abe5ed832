package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/gaborage/stmtkit/database/types"
)

// MockStatementBuilder provides a testify-based mock implementation of types.StatementBuilder.
// Chained configuration methods return the mock itself unless an expectation supplies
// another builder, so a single expectation per call is enough.
//
// Example usage:
//
//	mockSB := &mocks.MockStatementBuilder{}
//	mockSB.On("Select", []string{"id"}).Return(nil)
//	mockSB.On("Render").Return("SELECT id FROM users", nil)
//
//	sql, err := service.Describe(mockSB)
type MockStatementBuilder struct {
	mock.Mock
}

// Ensure MockStatementBuilder implements the interface
var _ types.StatementBuilder = (*MockStatementBuilder)(nil)

// Select implements types.StatementBuilder
func (m *MockStatementBuilder) Select(fields ...string) types.StatementBuilder {
	args := m.MethodCalled("Select", fields)
	return m.chain(args)
}

// Where implements types.StatementBuilder
func (m *MockStatementBuilder) Where(condition string) types.StatementBuilder {
	args := m.MethodCalled("Where", condition)
	return m.chain(args)
}

// OrderBy implements types.StatementBuilder
func (m *MockStatementBuilder) OrderBy(field string, direction types.Direction) types.StatementBuilder {
	args := m.MethodCalled("OrderBy", field, direction)
	return m.chain(args)
}

// Limit implements types.StatementBuilder
func (m *MockStatementBuilder) Limit(count int) types.StatementBuilder {
	args := m.MethodCalled("Limit", count)
	return m.chain(args)
}

// Offset implements types.StatementBuilder
func (m *MockStatementBuilder) Offset(count int) types.StatementBuilder {
	args := m.MethodCalled("Offset", count)
	return m.chain(args)
}

// Target implements types.StatementBuilder
func (m *MockStatementBuilder) Target() string {
	args := m.MethodCalled("Target")
	return args.String(0)
}

// Err implements types.StatementBuilder
func (m *MockStatementBuilder) Err() error {
	args := m.MethodCalled("Err")
	return args.Error(0)
}

// Render implements types.StatementBuilder
func (m *MockStatementBuilder) Render() (string, error) {
	args := m.MethodCalled("Render")
	return args.String(0), args.Error(1)
}

func (m *MockStatementBuilder) chain(args mock.Arguments) types.StatementBuilder {
	if len(args) > 0 {
		if b, ok := args.Get(0).(types.StatementBuilder); ok && b != nil {
			return b
		}
	}
	return m
}

// Helper methods for common testing scenarios

// ExpectTarget sets up a target expectation
func (m *MockStatementBuilder) ExpectTarget(target string) *mock.Call {
	return m.On("Target").Return(target)
}

// ExpectRender sets up a successful render expectation
func (m *MockStatementBuilder) ExpectRender(sql string) *mock.Call {
	return m.On("Render").Return(sql, nil)
}

// ExpectRenderError sets up a failing render expectation
func (m *MockStatementBuilder) ExpectRenderError(err error) *mock.Call {
	return m.On("Render").Return("", err)
}
