package api

import (
	"net/http"

	"github.com/mwhitten/apiforge/internal/build"
)

// Status reports service status and build metadata. The annotation block
// deliberately carries no @Tags: the grouping filter assigns the document's
// default category.
// GET /api/v1/status
//
// @Summary      Service status
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /api/v1/status [get]
func Status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, &StatusResponse{
		Status:  "ok",
		Version: build.Version,
		Commit:  build.Commit,
	})
}
