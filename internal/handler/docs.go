package handler

import (
	"log/slog"
	"net/http"

	"github.com/mwhitten/apiforge/internal/openapi"
)

// specHandler serves the post-processed document for one variant.
type specHandler struct {
	generator *openapi.Generator
	variant   openapi.Variant
}

func (h *specHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	doc, err := h.generator.Document(h.variant)
	if err != nil {
		slog.Error("document generation failed", "variant", h.variant, "err", err)
		http.Error(w, "document generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(doc)
}
