package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mwhitten/apiforge/internal/api"
	"github.com/mwhitten/apiforge/internal/store"
	"github.com/mwhitten/apiforge/internal/testutil"
)

// testEnv holds the routers and store needed for API integration tests.
type testEnv struct {
	V1    http.Handler
	Demo  http.Handler
	Items *store.ItemStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up both API sub-routers with a real store.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	conn := testutil.NewTestDB(t)
	items := store.NewItemStore(conn)
	deps := api.Deps{Items: items}
	return &testEnv{
		V1:    api.NewV1Router(deps),
		Demo:  api.NewDemoRouter(deps),
		Items: items,
	}
}

// seedItem inserts an item directly through the store.
func seedItem(t *testing.T, env *testEnv, name, visibility string) *store.Item {
	t.Helper()
	item, err := env.Items.Create(context.Background(), name, "seeded", visibility)
	if err != nil {
		t.Fatalf("seed item %q: %v", name, err)
	}
	return item
}

// doJSON performs a request with an optional JSON body and returns the recorder.
func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded JSON body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
	}
}
