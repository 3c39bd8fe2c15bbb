package api

import "time"

// CreateItemRequest is the request body for POST /api/v1/items.
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

// ItemResponse is the JSON representation of a single item.
type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Visibility  string    `json:"visibility"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemListResponse wraps a list of items.
type ItemListResponse struct {
	Items []*ItemResponse `json:"items"`
}

// StatusResponse reports service health and build metadata.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// PingResponse is the demo ping reply.
type PingResponse struct {
	Message string `json:"message"`
}

// EchoRequest is the request body for POST /api/demo/echo.
type EchoRequest struct {
	Message string `json:"message"`
}

// EchoResponse returns the echoed message with a server-assigned ID.
type EchoResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
