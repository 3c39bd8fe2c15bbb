package api_test

import (
	"net/http"
	"testing"

	"github.com/mwhitten/apiforge/internal/api"
)

func TestItems_List(t *testing.T) {
	env := newTestEnv(t)
	seedItem(t, env, "beta", "public")
	seedItem(t, env, "alpha", "public")

	rec := doJSON(t, env.V1, http.MethodGet, "/items", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var resp api.ItemListResponse
	decodeBody(t, rec, &resp)
	if len(resp.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(resp.Items))
	}
	if resp.Items[0].Name != "alpha" || resp.Items[1].Name != "beta" {
		t.Errorf("items not ordered by name: %q, %q", resp.Items[0].Name, resp.Items[1].Name)
	}
}

func TestItems_Create(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env.V1, http.MethodPost, "/items", api.CreateItemRequest{
		Name:        "widget",
		Description: "a widget",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var resp api.ItemResponse
	decodeBody(t, rec, &resp)
	if resp.ID == "" {
		t.Error("expected non-empty ID")
	}
	if resp.Visibility != "public" {
		t.Errorf("visibility = %q, want default public", resp.Visibility)
	}
}

func TestItems_Create_Validation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		req  api.CreateItemRequest
	}{
		{name: "empty name", req: api.CreateItemRequest{Name: ""}},
		{name: "bad format", req: api.CreateItemRequest{Name: "Bad Name"}},
		{name: "reserved name", req: api.CreateItemRequest{Name: "api"}},
		{name: "bad visibility", req: api.CreateItemRequest{Name: "ok", Visibility: "hidden"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, env.V1, http.MethodPost, "/items", tt.req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
			var resp api.ErrorResponse
			decodeBody(t, rec, &resp)
			if resp.Code != "BAD_REQUEST" {
				t.Errorf("code = %q, want BAD_REQUEST", resp.Code)
			}
		})
	}
}

func TestItems_Create_Conflict(t *testing.T) {
	env := newTestEnv(t)
	seedItem(t, env, "widget", "public")

	rec := doJSON(t, env.V1, http.MethodPost, "/items", api.CreateItemRequest{Name: "widget"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", rec.Code, rec.Body.String())
	}
}

func TestItems_Get(t *testing.T) {
	env := newTestEnv(t)
	item := seedItem(t, env, "widget", "public")

	rec := doJSON(t, env.V1, http.MethodGet, "/items/"+item.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp api.ItemResponse
	decodeBody(t, rec, &resp)
	if resp.Name != "widget" {
		t.Errorf("name = %q, want widget", resp.Name)
	}

	rec = doJSON(t, env.V1, http.MethodGet, "/items/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing item status = %d, want 404", rec.Code)
	}
}

func TestItems_Delete(t *testing.T) {
	env := newTestEnv(t)
	item := seedItem(t, env, "widget", "public")

	rec := doJSON(t, env.V1, http.MethodDelete, "/items/"+item.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, env.V1, http.MethodDelete, "/items/"+item.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestStatus(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env.V1, http.MethodGet, "/status", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp api.StatusResponse
	decodeBody(t, rec, &resp)
	if resp.Status != "ok" {
		t.Errorf("status field = %q, want ok", resp.Status)
	}
	if resp.Version == "" {
		t.Error("expected non-empty version")
	}
}
