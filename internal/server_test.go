package internal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/noteful/internal/database"
	"github.com/starford/noteful/internal/metrics"
	"github.com/starford/noteful/internal/testutil"
)

type downDB struct{}

func (downDB) Ping(context.Context) error { return errors.New("database is down") }

func testHandler(t *testing.T, mutate func(*Config)) (http.Handler, database.Repositories) {
	t.Helper()
	cfg := NewDefaultConfig()
	cfg.App.Env = EnvTest
	if mutate != nil {
		mutate(cfg)
	}
	db := testutil.TestDB(t)
	m := metrics.New()
	repos := database.NewRepositories(db, m)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newHandler(cfg, db, repos, m, logger), repos
}

func serve(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandler_Greeting(t *testing.T) {
	h, _ := testHandler(t, nil)

	w := serve(h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello, world!", w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestHandler_Health(t *testing.T) {
	h, _ := testHandler(t, nil)

	for _, path := range []string{"/health/live", "/health/ready"} {
		w := serve(h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	}
}

func TestHandler_ReadyFailsWithoutDatabase(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.App.Env = EnvTest
	m := metrics.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := newHandler(cfg, downDB{}, database.Repositories{}, m, logger)

	w := serve(h, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_APIMountedUnderPrefix(t *testing.T) {
	h, repos := testHandler(t, nil)
	testutil.Seed(t, repos, testutil.Folders(), nil, nil)

	w := serve(h, http.MethodGet, "/api/folders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Important")

	w = serve(h, http.MethodPost, "/api/folders", strings.NewReader(`{"name":"Potato"}`))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/api/folders/"))
}

func TestHandler_ExamplesToggle(t *testing.T) {
	off, _ := testHandler(t, nil)
	assert.Equal(t, http.StatusNotFound, serve(off, http.MethodGet, "/api/examples", nil).Code)

	on, _ := testHandler(t, func(c *Config) { c.Resources.Examples = true })
	w := serve(on, http.MethodGet, "/api/examples", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_CORS(t *testing.T) {
	h, _ := testHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandler_Metrics(t *testing.T) {
	h, _ := testHandler(t, nil)

	serve(h, http.MethodGet, "/api/folders", nil)
	w := serve(h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
	assert.Contains(t, w.Body.String(), `db_query_duration_seconds_count{op="select",table="noteful_folders"} 1`)
}

func TestRun_RequiresConfig(t *testing.T) {
	err := Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config is required")
}
