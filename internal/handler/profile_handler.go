package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"cardlink/internal/card"
	"cardlink/internal/middleware"
	"cardlink/internal/model"
	"cardlink/internal/service"
)

// ProfileHandler exposes HTTP endpoints for the owner's profile.
type ProfileHandler struct {
	S      *service.ProfileService
	Origin string
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(s *service.ProfileService, origin string) *ProfileHandler {
	return &ProfileHandler{S: s, Origin: origin}
}

// Get returns the authenticated user's profile, defaulted from identity
// metadata when no row exists yet.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UserID(r.Context())
	ident := middleware.IdentityFromContext(r.Context())

	p, err := h.S.Get(r.Context(), uid, ident.Name, ident.Email)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load profile"})
		return
	}

	writeJSON(w, http.StatusOK, p)
}

type profileUpdate struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Title          string `json:"title"`
	Bio            string `json:"bio"`
	PhotoURL       string `json:"photo_url"`
	WorkPreference string `json:"work_preference"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Website        string `json:"website"`
	LinkedIn       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
	Facebook       string `json:"facebook"`
	PrimaryChannel string `json:"primary_channel"`
}

// Update persists the full submitted profile for the authenticated user
// and returns the fresh slug, which the store may have regenerated.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UserID(r.Context())

	var req profileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	slug, err := h.S.Update(r.Context(), &model.Profile{
		UserID:         uid,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Title:          req.Title,
		Bio:            req.Bio,
		PhotoURL:       req.PhotoURL,
		WorkPreference: model.NormalizeWorkPreference(req.WorkPreference),
		Email:          req.Email,
		Phone:          req.Phone,
		Website:        req.Website,
		LinkedIn:       req.LinkedIn,
		Instagram:      req.Instagram,
		Facebook:       req.Facebook,
		PrimaryChannel: model.NormalizePrimaryChannel(req.PrimaryChannel),
	})
	if errors.Is(err, model.ErrProfileNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "profile not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "update failed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"slug": slug})
}

// QR serves the owner's QR code: the public card URL when a slug exists,
// otherwise the raw vCard so a local-only profile still scans.
func (h *ProfileHandler) QR(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UserID(r.Context())
	ident := middleware.IdentityFromContext(r.Context())

	p, err := h.S.Get(r.Context(), uid, ident.Name, ident.Email)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load profile"})
		return
	}

	writeQR(w, card.QRPayload(h.Origin, p.Slug, p))
}
