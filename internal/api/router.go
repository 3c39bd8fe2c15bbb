package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mwhitten/apiforge/internal/store"
)

// Deps holds all dependencies required to build the API sub-routers.
type Deps struct {
	Items store.ItemStoreIface
}

// NewV1Router creates the chi sub-router mounted at /api/v1.
// All routes return application/json.
func NewV1Router(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(jsonContentType)

	h := &itemsHandler{items: deps.Items}
	r.Get("/items", h.List)
	r.Post("/items", h.Create)
	r.Get("/items/{id}", h.Get)
	r.Delete("/items/{id}", h.Delete)

	r.Get("/status", Status)

	return r
}

// NewDemoRouter creates the chi sub-router mounted at /api/demo.
func NewDemoRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(jsonContentType)

	h := &demoHandler{items: deps.Items}
	r.Get("/ping", h.Ping)
	r.Post("/echo", h.Echo)
	r.Get("/items", h.Items)

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json
// on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
