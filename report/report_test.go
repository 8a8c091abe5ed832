package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaborage/stmtkit/config"
	"github.com/gaborage/stmtkit/database"
	"github.com/gaborage/stmtkit/logger"
)

func newGenerator(t *testing.T, cfg *config.StatementConfig) (*Generator, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	log := logger.NewWithWriter(&logs, "info", false)
	f, err := database.NewFactory(cfg, log)
	require.NoError(t, err)
	return NewGenerator(f, log), &logs
}

// parseReport splits generator output into its id and statement lines.
func parseReport(t *testing.T, out string) (header string, id uuid.UUID, statement string) {
	t.Helper()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	rawID := strings.TrimSpace(strings.TrimPrefix(lines[1], "  id:"))
	id, err := uuid.Parse(rawID)
	require.NoError(t, err)

	return lines[0], id, strings.TrimSpace(strings.TrimPrefix(lines[2], "  statement:"))
}

func TestGenerateSalesReport(t *testing.T) {
	g, logs := newGenerator(t, nil)
	var out bytes.Buffer

	require.NoError(t, g.Generate(SalesCreator{}, &out))

	header, id, statement := parseReport(t, out.String())
	assert.Equal(t, "Generating sales report...", header)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t,
		"SELECT id, region, amount, closed_at FROM sales WHERE status = 'closed' ORDER BY amount DESC",
		statement)
	assert.Contains(t, logs.String(), `"kind":"sales"`)
	assert.Contains(t, logs.String(), id.String())
}

func TestGenerateInventoryReportForOracle(t *testing.T) {
	g, _ := newGenerator(t, &config.StatementConfig{
		Vendor: database.Oracle,
		Limit:  config.LimitConfig{Default: 50},
	})
	var out bytes.Buffer

	require.NoError(t, g.Generate(InventoryCreator{}, &out))

	header, _, statement := parseReport(t, out.String())
	assert.Equal(t, "Generating inventory report...", header)
	assert.Equal(t,
		`SELECT sku, warehouse, quantity, "LEVEL" FROM inventory WHERE quantity < 10 ORDER BY sku ASC FETCH NEXT 50 ROWS ONLY`,
		statement)
}

func TestEachDocumentGetsFreshID(t *testing.T) {
	first := SalesCreator{}.CreateReport()
	second := SalesCreator{}.CreateReport()
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, Sales, first.Kind())
	assert.Equal(t, Inventory, InventoryCreator{}.CreateReport().Kind())
}

type brokenDocument struct{ *SalesReport }

func (brokenDocument) Query(f *database.Factory) (*database.Statement, error) {
	stmt, err := f.New("sales")
	if err != nil {
		return nil, err
	}
	stmt.Limit(-1)
	return stmt, nil
}

func TestGenerateRenderFailure(t *testing.T) {
	g, _ := newGenerator(t, nil)
	var out bytes.Buffer

	err := g.Generate(CreatorFunc(func() Document {
		return brokenDocument{NewSalesReport()}
	}), &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "render sales report query")
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestGenerateWriteFailure(t *testing.T) {
	g, _ := newGenerator(t, nil)

	err := g.Generate(SalesCreator{}, failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
