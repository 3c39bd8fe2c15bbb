package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/mwhitten/apiforge/internal/handler"
	"github.com/mwhitten/apiforge/internal/openapi"
	"github.com/mwhitten/apiforge/internal/store"
	"github.com/mwhitten/apiforge/internal/testutil"
)

// newTestRouter wires the full router over the swag-registered document and
// an in-memory store.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	generator := openapi.NewGenerator(
		openapi.SourceFunc(func() (string, error) { return swag.ReadDoc() }),
		openapi.GeneratorConfig{
			MainTitle: "apiforge API",
			DemoTitle: "apiforge Demo API",
			CacheTTL:  time.Minute,
		},
	)

	return handler.NewRouter(handler.Deps{
		Generator: generator,
		ItemStore: store.NewItemStore(testutil.NewTestDB(t)),
	})
}

func getDoc(t *testing.T, router http.Handler, target string) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	return doc
}

func TestRouter_mainDocument(t *testing.T) {
	router := newTestRouter(t)
	doc := getDoc(t, router, "/openapi/main.json")

	info := doc["info"].(map[string]any)
	assert.Equal(t, "apiforge API", info["title"])

	paths := doc["paths"].(map[string]any)
	require.NotEmpty(t, paths)
	for key := range paths {
		assert.False(t, strings.HasPrefix(key, "/api/demo/"),
			"main document must not contain demo path %q", key)
	}
	assert.Contains(t, paths, "/api/v1/items")
	assert.Contains(t, paths, "/api/v1/status")

	// The untagged status endpoint picked up the Main default.
	status := paths["/api/v1/status"].(map[string]any)
	get := status["get"].(map[string]any)
	assert.Equal(t, []any{"Main"}, get["tags"])
}

func TestRouter_demoDocument(t *testing.T) {
	router := newTestRouter(t)
	doc := getDoc(t, router, "/openapi/demo.json")

	info := doc["info"].(map[string]any)
	assert.Equal(t, "apiforge Demo API", info["title"])

	paths := doc["paths"].(map[string]any)
	require.NotEmpty(t, paths)
	for key := range paths {
		assert.True(t, strings.HasPrefix(key, "/api/demo/"),
			"demo document must only contain demo paths, got %q", key)
	}

	ping := paths["/api/demo/ping"].(map[string]any)
	get := ping["get"].(map[string]any)
	assert.Equal(t, []any{"Demo"}, get["tags"])
}

func TestRouter_documentsPartitionRegistry(t *testing.T) {
	router := newTestRouter(t)

	main := getDoc(t, router, "/openapi/main.json")["paths"].(map[string]any)
	demo := getDoc(t, router, "/openapi/demo.json")["paths"].(map[string]any)

	for key := range main {
		assert.NotContains(t, demo, key)
	}
}

func TestRouter_healthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_metrics(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_apiMounted(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/demo/ping", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_swaggerUIs(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/docs/main/index.html", "/docs/demo/index.html"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", target)
	}
}
