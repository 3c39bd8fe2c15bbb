package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mwhitten/apiforge/internal/store"
	"github.com/mwhitten/apiforge/internal/validate"
)

// itemsHandler provides REST handlers for item management.
type itemsHandler struct {
	items store.ItemStoreIface
}

// List returns all items.
// GET /api/v1/items
//
// @Summary      List items
// @Description  Returns all items, ordered by name.
// @Tags         Items
// @Produce      json
// @Success      200  {object}  ItemListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/v1/items [get]
func (h *itemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toItemListResponse(items))
}

// Create creates a new item.
// POST /api/v1/items
//
// @Summary      Create an item
// @Description  Creates a new item. Names must be unique, lowercase alphanumeric with hyphens.
// @Tags         Items
// @Accept       json
// @Produce      json
// @Param        body  body      CreateItemRequest  true  "Item to create"
// @Success      201   {object}  ItemResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/v1/items [post]
func (h *itemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if err := validate.ValidateName(req.Name); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
		return
	}
	if req.Visibility == "" {
		req.Visibility = "public"
	}
	if err := validate.ValidateVisibility(req.Visibility); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
		return
	}

	item, err := h.items.Create(r.Context(), req.Name, req.Description, req.Visibility)
	if err != nil {
		if errors.Is(err, store.ErrNameTaken) {
			writeError(w, http.StatusConflict, err.Error(), "CONFLICT")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// Get returns a single item by ID.
// GET /api/v1/items/{id}
//
// @Summary      Get an item
// @Tags         Items
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  ItemResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/v1/items/{id} [get]
func (h *itemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.items.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "item not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// Delete removes an item.
// DELETE /api/v1/items/{id}
//
// @Summary      Delete an item
// @Tags         Items
// @Produce      json
// @Param        id   path  string  true  "Item ID"
// @Success      204  "No Content"
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/v1/items/{id} [delete]
func (h *itemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.items.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "item not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toItemResponse(item *store.Item) *ItemResponse {
	return &ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Visibility:  item.Visibility,
		CreatedAt:   item.CreatedAt,
	}
}

func toItemListResponse(items []*store.Item) *ItemListResponse {
	resp := &ItemListResponse{Items: make([]*ItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}
	return resp
}
