package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	csslint "github.com/bearholmes/mongmung-csslint-server"
	"github.com/bearholmes/mongmung-csslint-server/internal/engine"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	linter := csslint.NewLinter(engine.New())
	return New(Config{Port: 0, Environment: "test"}, linter)
}

// failingEngine always errors, for exercising the 500 path.
type failingEngine struct{}

func (failingEngine) Lint(context.Context, string, csslint.EngineConfig) (*csslint.EngineResult, error) {
	return nil, errors.New("engine crashed")
}

func (failingEngine) Version() string { return "broken" }

func postLint(t *testing.T, srv *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, "/lint", &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) csslint.LintResult {
	t.Helper()
	var result csslint.LintResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func TestHandleBanner(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, Banner, rec.Body.String())
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var health HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))

	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "test", health.Environment)
	assert.GreaterOrEqual(t, health.Uptime, 0.0)
	_, err := time.Parse(time.RFC3339, health.Timestamp)
	assert.NoError(t, err)
}

func TestHandleLint_Success(t *testing.T) {
	srv := newTestServer(t)

	rec := postLint(t, srv, map[string]any{
		"code":   "body { color: #FFF; }",
		"syntax": "css",
		"config": map[string]any{
			"rules":       map[string]any{"color-hex-case": "lower"},
			"outputStyle": "compact",
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeResult(t, rec)
	assert.True(t, result.Success)
	require.NotNil(t, result.Content)
	assert.Contains(t, result.Content.Output, "#fff")
	assert.Empty(t, result.Content.Warnings)
	assert.Equal(t, engine.Version, result.Content.Info.Version)
}

func TestHandleLint_WarningsReported(t *testing.T) {
	srv := newTestServer(t)

	rec := postLint(t, srv, map[string]any{
		"code":   "a { color: #ggg; }",
		"syntax": "css",
		"config": map[string]any{
			"rules": map[string]any{"color-no-invalid-hex": true},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeResult(t, rec)
	require.Len(t, result.Content.Warnings, 1)
	assert.Equal(t, "color-no-invalid-hex", result.Content.Warnings[0].Rule)
}

func TestHandleLint_ValidationErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
		want string
	}{
		{
			name: "empty code",
			body: map[string]any{
				"code": "", "syntax": "css",
				"config": map[string]any{"rules": map[string]any{"block-no-empty": true}},
			},
			want: "code must not be empty",
		},
		{
			name: "bad syntax",
			body: map[string]any{
				"code": "a{}", "syntax": "less",
				"config": map[string]any{"rules": map[string]any{"block-no-empty": true}},
			},
			want: "unsupported syntax",
		},
		{
			name: "no rules",
			body: map[string]any{
				"code": "a{}", "syntax": "css",
				"config": map[string]any{"rules": map[string]any{}},
			},
			want: "at least one lint rule is required",
		},
		{
			name: "bad output style",
			body: map[string]any{
				"code": "a{}", "syntax": "css",
				"config": map[string]any{
					"rules":       map[string]any{"block-no-empty": true},
					"outputStyle": "minified",
				},
			},
			want: "unsupported output style",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postLint(t, srv, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			result := decodeResult(t, rec)
			assert.False(t, result.Success)
			assert.Contains(t, result.Message, tt.want)
			assert.Nil(t, result.Content)
		})
	}
}

func TestHandleLint_MalformedJSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/lint", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", decodeResult(t, rec).Message)
}

func TestHandleLint_EngineFailureIs500(t *testing.T) {
	srv := New(Config{Environment: "test"}, csslint.NewLinter(failingEngine{}))

	rec := postLint(t, srv, map[string]any{
		"code": "a{}", "syntax": "css",
		"config": map[string]any{"rules": map[string]any{"block-no-empty": true}},
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decodeResult(t, rec).Message, "lint execution failed")
}

func TestHandleNotFound(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeResult(t, rec).Message)
}

func TestRequestIDHeaderIsEchoedToContext(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, RequestIDFrom(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Body.String())

	// Without the header a fresh ID is generated.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// Generate one request so the counter exists.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.Router().ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "csslint_http_requests_total")
}
