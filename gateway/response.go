package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/store"
)

// errBadRequest marks malformed requests: missing parameters, unreadable bodies.
const errBadRequest = webftp.Error("bad request")

const sessionNotFoundMessage = "Connection not found or expired. Please reconnect."

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type connectResponse struct {
	Success      bool   `json:"success"`
	ConnectionID string `json:"connectionId"`
}

type listResponse struct {
	Success bool               `json:"success"`
	Path    string             `json:"path"`
	Files   []webftp.FileEntry `json:"files"`
}

type uploadResult struct {
	Name    string `json:"name"`
	Path    string `json:"path,omitempty"`
	Success bool   `json:"success"`
	Bytes   int64  `json:"bytes"`
	Error   string `json:"error,omitempty"`
}

type uploadResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Files   []uploadResult `json:"files"`
}

type connectionsResponse struct {
	Success     bool                     `json:"success"`
	Connections []store.StoredConnection `json:"connections"`
}

type healthResponse struct {
	Success  bool `json:"success"`
	Sessions int  `json:"sessions"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if errors.Is(err, webftp.ErrSessionNotFound) {
		msg = sessionNotFoundMessage
	}
	writeJSON(w, status, errorResponse{Message: msg})
}

// statusFor maps an error onto the HTTP status reported for it.
func statusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	}

	switch webftp.KindOf(err) {
	case webftp.ErrInvalidPath, webftp.ErrInvalidConfig:
		return http.StatusBadRequest
	case webftp.ErrAuthentication:
		return http.StatusUnauthorized
	case webftp.ErrSessionNotFound, webftp.ErrNotFound:
		return http.StatusNotFound
	case webftp.ErrSessionLimit:
		return http.StatusServiceUnavailable
	case webftp.ErrNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
