// Package handler assembles the HTTP router: API sub-routers, the two
// swagger UIs with their processed documents, metrics, and health.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/mwhitten/apiforge/internal/api"
	"github.com/mwhitten/apiforge/internal/openapi"
	"github.com/mwhitten/apiforge/internal/store"

	_ "github.com/mwhitten/apiforge/docs/swagger"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	Generator *openapi.Generator
	ItemStore store.ItemStoreIface
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Processed documents, one per variant.
	r.Method(http.MethodGet, "/openapi/main.json", &specHandler{generator: deps.Generator, variant: openapi.VariantMain})
	r.Method(http.MethodGet, "/openapi/demo.json", &specHandler{generator: deps.Generator, variant: openapi.VariantDemo})

	// Swagger UIs, each pointed at its own processed document.
	r.Get("/docs/main/*", httpSwagger.Handler(httpSwagger.URL("/openapi/main.json")))
	r.Get("/docs/demo/*", httpSwagger.Handler(httpSwagger.URL("/openapi/demo.json")))

	apiDeps := api.Deps{Items: deps.ItemStore}
	r.Mount("/api/v1", api.NewV1Router(apiDeps))
	r.Mount("/api/demo", api.NewDemoRouter(apiDeps))

	return r
}
