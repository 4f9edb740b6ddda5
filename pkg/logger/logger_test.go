package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestor-ventas-api/pkg/logger"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	l.Info().Str("component", "test").Msg("hola")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "hola", entry["message"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "WARN", Out: &buf})

	l.Info().Msg("descartado")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestForRequest_CamposFijos(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	reqLog := l.ForRequest(logger.Request{ID: "req-1", Method: "POST", Path: "/api/facturas"})
	reqLog.Info().Msg("factura")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/facturas", entry["path"])
	assert.NotContains(t, entry, "ip", "los campos vacíos no se agregan")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	ctx := logger.WithContext(context.Background(), l.ForRequest(logger.Request{ID: "req-2"}))
	logger.FromContext(ctx).Info().Msg("con contexto")
	assert.Contains(t, buf.String(), `"request_id":"req-2"`)

	buf.Reset()
	logger.FromContext(context.Background()).Info().Msg("sin contexto")
	assert.Contains(t, buf.String(), "sin contexto", "cae al logger global")
	assert.NotContains(t, buf.String(), "request_id")
}

func TestStatusLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, logger.StatusLevel(201))
	assert.Equal(t, zerolog.WarnLevel, logger.StatusLevel(404))
	assert.Equal(t, zerolog.ErrorLevel, logger.StatusLevel(500))
}
