package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Response writes the {"data": ...} and {"message": ...} envelopes served by
// the diagnostics endpoints.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// JSON encodes v with the given status. Diagnostics are never cached.
//
//	res.JSON(http.StatusOK, map[string]any{"locked": true})
func (res *Response) JSON(status int, v any) {
	h := res.w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	res.w.WriteHeader(status)
	if err := json.NewEncoder(res.w).Encode(v); err != nil {
		slog.Debug("response encode failed", "status", status, "error", err)
	}
}

// Success sends 200 {"data": v}.
func (res *Response) Success(v any) {
	res.JSON(http.StatusOK, map[string]any{"data": v})
}

// Error sends {"message": message} with status.
//
//	res.Error(http.StatusBadRequest, `invalid key "%zz"`)
func (res *Response) Error(status int, message string) {
	res.JSON(status, map[string]any{"message": message})
}

// NotFound sends 404. An empty message becomes "Not found."
func (res *Response) NotFound(message string) {
	if message == "" {
		message = "Not found."
	}
	res.Error(http.StatusNotFound, message)
}

// MethodNotAllowed sends 405 naming the rejected method.
func (res *Response) MethodNotAllowed(method string) {
	res.Error(http.StatusMethodNotAllowed, method+" is not allowed here.")
}
