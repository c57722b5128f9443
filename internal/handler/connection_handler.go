package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cardlink/internal/middleware"
	"cardlink/internal/model"
	"cardlink/internal/observability"
	"cardlink/internal/service"
)

// ConnectionHandler exposes HTTP endpoints for saving and listing
// connections.
type ConnectionHandler struct{ S *service.ConnectionService }

// NewConnectionHandler creates a new ConnectionHandler.
func NewConnectionHandler(s *service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{s}
}

// Save records that the authenticated viewer saved a public card. A
// repeat save is not an error: it reports the informational
// "already_saved" outcome and leaves the single existing row in place.
func (h *ConnectionHandler) Save(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UserID(r.Context())

	var req struct {
		ProfileID string `json:"profile_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProfileID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	err := h.S.Save(r.Context(), uid, req.ProfileID)
	switch {
	case err == nil:
		observability.ConnectionSavesTotal.WithLabelValues("saved").Inc()
		writeJSON(w, http.StatusCreated, map[string]string{"status": "saved"})

	case errors.Is(err, model.ErrConnectionExists):
		observability.ConnectionSavesTotal.WithLabelValues("already_saved").Inc()
		writeJSON(w, http.StatusOK, map[string]string{"status": "already_saved"})

	case errors.Is(err, model.ErrSelfConnection):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})

	case errors.Is(err, model.ErrCardNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "card not found"})

	default:
		observability.ConnectionSavesTotal.WithLabelValues("failed").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save connection"})
	}
}

// List returns a paginated list of the viewer's connections.
func (h *ConnectionHandler) List(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UserID(r.Context())

	limit := 20
	offset := 0

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	list, err := h.S.List(r.Context(), uid, limit, offset)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list connections"})
		return
	}
	if list == nil {
		list = []model.Connection{}
	}

	writeJSON(w, http.StatusOK, list)
}
