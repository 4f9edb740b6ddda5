package http_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/gestor-ventas-api/internal/interfaces/http"
	"github.com/jhoicas/gestor-ventas-api/pkg/logger"
)

func newLoggedApp(buf *bytes.Buffer) *fiber.App {
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.New(logger.Config{Env: "production", Level: "info", Out: buf})))
	app.Get("/ok", func(c *fiber.Ctx) error {
		apphttp.RequestLog(c).Info().Msg("dentro del handler")
		return c.SendStatus(fiber.StatusNotFound)
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("falló")
	})
	return app
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		out = append(out, entry)
	}
	return out
}

func TestRequestLogger_MismoRequestIDEnHandlerYCierre(t *testing.T) {
	var buf bytes.Buffer
	app := newLoggedApp(&buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	reqID := resp.Header.Get("X-Request-ID")
	require.NotEmpty(t, reqID)

	entries := logEntries(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "dentro del handler", entries[0]["message"])
	assert.Equal(t, reqID, entries[0]["request_id"])
	assert.Equal(t, "/ok", entries[0]["path"])

	assert.Equal(t, reqID, entries[1]["request_id"])
	assert.Equal(t, "warn", entries[1]["level"])
	assert.Equal(t, float64(http.StatusNotFound), entries[1]["status"])
}

func TestRequestLogger_RespetaRequestIDEntrante(t *testing.T) {
	var buf bytes.Buffer
	app := newLoggedApp(&buf)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
	for _, entry := range logEntries(t, &buf) {
		assert.Equal(t, "abc-123", entry["request_id"])
	}
}

func TestRequestLogger_ErrorDelHandlerEsNivelError(t *testing.T) {
	var buf bytes.Buffer
	app := newLoggedApp(&buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	entries := logEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0]["level"])
	assert.Equal(t, "falló", entries[0]["error"])
	assert.Equal(t, float64(http.StatusInternalServerError), entries[0]["status"])
}
