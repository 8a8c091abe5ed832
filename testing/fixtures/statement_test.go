package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaborage/stmtkit/database/types"
	stmttesting "github.com/gaborage/stmtkit/testing"
)

func TestNewRenderingBuilder(t *testing.T) {
	b := NewRenderingBuilder(stmttesting.TestTarget, stmttesting.TestRenderedSQL)

	sql, err := b.Select(stmttesting.TestField).
		Where(stmttesting.TestPredicate).
		OrderBy(stmttesting.TestSortField, types.Descending).
		Limit(1).
		Offset(2).
		Render()
	assert.NoError(t, err)
	assert.Equal(t, stmttesting.TestRenderedSQL, sql)
	assert.Equal(t, stmttesting.TestTarget, b.Target())
	assert.NoError(t, b.Err())
	b.AssertExpectations(t)
}

func TestNewFailingBuilder(t *testing.T) {
	b := NewFailingBuilder(stmttesting.TestTarget, types.ErrEmptyPredicate)

	sql, err := b.Where("").Render()
	assert.Empty(t, sql)
	assert.ErrorIs(t, err, types.ErrEmptyPredicate)
	assert.ErrorIs(t, b.Err(), types.ErrEmptyPredicate)
}
