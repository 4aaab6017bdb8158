package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_StampsRoleAndCaller(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("jobify-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("up")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "jobify-server", entry["role"])
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_DoesNotTouchParent(t *testing.T) {
	var parentBuf bytes.Buffer
	parent := &Logger{zerolog.New(&parentBuf)}

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})

	parent.Info().Msg("parent")

	entry := decodeEntry(t, &parentBuf)
	_, hasTrace := entry["trace_id"]
	assert.False(t, hasTrace, "child fields must not leak into the parent")
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("scoped")

	assert.Equal(t, "t-1", decodeEntry(t, &buf)["trace_id"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger()

	req := httptest.NewRequest(http.MethodGet, "/api/job/all", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("scoped")

	assert.Equal(t, "t-2", decodeEntry(t, &buf)["trace_id"])
}
