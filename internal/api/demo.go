package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/mwhitten/apiforge/internal/store"
)

// demoHandler serves the /api/demo sandbox endpoints. Ping and Echo carry no
// @Tags annotation, so they pick up the Demo document's default category.
type demoHandler struct {
	items store.ItemStoreIface
}

// Ping answers with a static message.
// GET /api/demo/ping
//
// @Summary      Ping
// @Produce      json
// @Success      200  {object}  PingResponse
// @Router       /api/demo/ping [get]
func (h *demoHandler) Ping(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, &PingResponse{Message: "pong"})
}

// Echo returns the posted message with a server-assigned ID.
// POST /api/demo/echo
//
// @Summary      Echo
// @Accept       json
// @Produce      json
// @Param        body  body      EchoRequest  true  "Message to echo"
// @Success      200   {object}  EchoResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /api/demo/echo [post]
func (h *demoHandler) Echo(w http.ResponseWriter, r *http.Request) {
	var req EchoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	writeJSON(w, http.StatusOK, &EchoResponse{ID: uuid.New().String(), Message: req.Message})
}

// Items lists items published to the demo area.
// GET /api/demo/items
//
// @Summary      List demo items
// @Description  Returns items with demo visibility, read-only.
// @Tags         Demo Items
// @Produce      json
// @Success      200  {object}  ItemListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/demo/items [get]
func (h *demoHandler) Items(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.ListByVisibility(r.Context(), "demo")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toItemListResponse(items))
}
