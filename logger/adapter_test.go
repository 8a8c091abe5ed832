package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestLogger creates a debug logger that outputs JSON to a buffer
func createTestLogger() (*ZeroLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithWriter(&buf, "debug", false), &buf
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogEventAdapterMsg(t *testing.T) {
	logger, buf := createTestLogger()

	logger.Info().Msg("statement rendered")

	entry := decodeEntry(t, buf)
	assert.Equal(t, "statement rendered", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestLogEventAdapterMsgf(t *testing.T) {
	logger, buf := createTestLogger()

	logger.Warn().Msgf("limit %d exceeds %d", 500, 100)

	entry := decodeEntry(t, buf)
	assert.Equal(t, "limit 500 exceeds 100", entry["message"])
	assert.Equal(t, "warn", entry["level"])
}

func TestLogEventAdapterErr(t *testing.T) {
	logger, buf := createTestLogger()

	logger.Error().Err(errors.New("empty target")).Msg("build failed")

	entry := decodeEntry(t, buf)
	assert.Equal(t, "empty target", entry["error"])
	assert.Equal(t, "build failed", entry["message"])
	assert.Equal(t, "error", entry["level"])
}

func TestLogEventAdapterTypedFields(t *testing.T) {
	logger, buf := createTestLogger()

	logger.Debug().
		Str("target", "users").
		Strs("fields", []string{"id", "name"}).
		Int("predicates", 2).
		Uint64("limit", 10).
		Bool("ordered", true).
		Dur("elapsed", 1500*time.Millisecond).
		Interface("sort", map[string]any{"field": "name", "direction": "ASC"}).
		Msg("rendered")

	entry := decodeEntry(t, buf)
	assert.Equal(t, "users", entry["target"])
	assert.Equal(t, []any{"id", "name"}, entry["fields"])
	assert.InDelta(t, 2, entry["predicates"], 0)
	assert.InDelta(t, 10, entry["limit"], 0)
	assert.Equal(t, true, entry["ordered"])
	assert.InDelta(t, 1500, entry["elapsed"], 0)
	assert.Equal(t, map[string]any{"field": "name", "direction": "ASC"}, entry["sort"])
}

func TestLogEventAdapterMasksSensitiveFields(t *testing.T) {
	logger, buf := createTestLogger()

	logger.Info().
		Str("password", "hunter2").
		Str("dsn", "postgres://app:s3cret@db:5432/shop").
		Strs("api_keys", []string{"k1", "k2"}).
		Interface("credentials", map[string]any{"user": "app"}).
		Interface("payload", map[string]any{"token": "abc", "name": "report"}).
		Msg("masked")

	entry := decodeEntry(t, buf)
	assert.Equal(t, DefaultMaskValue, entry["password"])
	assert.Equal(t, "postgres://app:***@db:5432/shop", entry["dsn"])
	assert.Equal(t, []any{DefaultMaskValue, DefaultMaskValue}, entry["api_keys"])
	assert.Equal(t, DefaultMaskValue, entry["credentials"])
	assert.Equal(t, map[string]any{"token": DefaultMaskValue, "name": "report"}, entry["payload"])
}
