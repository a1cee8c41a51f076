package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlkit/sqlformat/pkg/config"
)

func newTestServer() *Server {
	return New(config.Default(), slog.Default())
}

func doJSON(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	newTestServer().Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestHealthEndpoint(t *testing.T) {
	rec := doJSON(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	require.Equal(t, "healthy", payload["status"])
	require.Equal(t, "SQL Formatter API", payload["service"])
	require.Equal(t, Version, payload["version"])
}

func TestFormatEndpoint(t *testing.T) {
	rec := doJSON(t, http.MethodPost, "/api/format", map[string]any{
		"sql": "select name from users",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	require.Equal(t, true, payload["success"])
	require.Equal(t, "SELECT name\nFROM users", payload["formatted_sql"])
}

func TestFormatEndpointWithPreset(t *testing.T) {
	rec := doJSON(t, http.MethodPost, "/api/format", map[string]any{
		"sql":    "select name from users",
		"preset": "minimal",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	require.Equal(t, "select name\nfrom users", payload["formatted_sql"])
}

func TestFormatEndpointOptionsOverridePreset(t *testing.T) {
	rec := doJSON(t, http.MethodPost, "/api/format", map[string]any{
		"sql":     "select name from users",
		"preset":  "minimal",
		"options": map[string]any{"keyword_case": "upper"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	require.Equal(t, "SELECT name\nFROM users", payload["formatted_sql"])
}

func TestFormatEndpointRejectsMissingSQL(t *testing.T) {
	rec := doJSON(t, http.MethodPost, "/api/format", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	payload := decodeBody(t, rec)
	require.Equal(t, false, payload["success"])
	require.Equal(t, "No SQL text provided", payload["error"])
}

func TestFormatEndpointRejectsBadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/format", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()
	newTestServer().Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodeBody(t, rec)
	require.Equal(t, "No JSON data provided", payload["error"])
}

func TestValidateEndpoint(t *testing.T) {
	rec := doJSON(t, http.MethodPost, "/api/validate", map[string]any{
		"sql": "SELCT * FROM t;",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	require.Equal(t, true, payload["success"])

	validation, ok := payload["validation"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, false, validation["is_valid"])

	errs, ok := validation["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "Possible typo in SQL keyword")

	details, ok := validation["error_details"].([]any)
	require.True(t, ok)
	detail := details[0].(map[string]any)
	require.Equal(t, "keyword_typo", detail["type"])
	require.Equal(t, "SELCT", detail["token"])
}

func TestValidateEndpointCleanSQL(t *testing.T) {
	rec := doJSON(t, http.MethodPost, "/api/validate", map[string]any{
		"sql": "SELECT name FROM users;",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	validation := decodeBody(t, rec)["validation"].(map[string]any)
	require.Equal(t, true, validation["is_valid"])
}

func TestMinifyEndpoint(t *testing.T) {
	rec := doJSON(t, http.MethodPost, "/api/minify", map[string]any{
		"sql": "SELECT   *\nFROM t;",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	require.Equal(t, true, payload["success"])
	require.Equal(t, "SELECT * FROM t;", payload["minified_sql"])
	require.NotNil(t, payload["compression_ratio"])
}

func TestOptionsEndpoint(t *testing.T) {
	rec := doJSON(t, http.MethodGet, "/api/options", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	require.Equal(t, true, payload["success"])

	presets, ok := payload["presets"].([]any)
	require.True(t, ok)
	require.Contains(t, presets, "standard")

	keywords, ok := payload["sql_keywords"].([]any)
	require.True(t, ok)
	require.Contains(t, keywords, "SELECT")
}

func TestUnknownEndpoint(t *testing.T) {
	rec := doJSON(t, http.MethodGet, "/api/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Endpoint not found", decodeBody(t, rec)["error"])
}

func TestMethodNotAllowed(t *testing.T) {
	rec := doJSON(t, http.MethodGet, "/api/format", nil)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/format", nil)
	req.Header.Set("Origin", "http://example.com")

	rec := httptest.NewRecorder()
	newTestServer().Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSRestrictedOrigin(t *testing.T) {
	cfg := config.Default()
	cfg.Server.CORSOrigins = []string{"http://allowed.test"}
	srv := New(cfg, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://allowed.test")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	require.Equal(t, "http://allowed.test", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://other.test")
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestValidateEndpointMySQLDialect(t *testing.T) {
	rec := doJSON(t, http.MethodPost, "/api/validate", map[string]any{
		"sql":     "SELECT name FROM users;",
		"dialect": "mysql",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	validation := decodeBody(t, rec)["validation"].(map[string]any)
	require.Equal(t, true, validation["is_valid"])
}
