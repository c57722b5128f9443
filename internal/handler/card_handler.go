package handler

import (
	"net/http"

	"cardlink/internal/card"
	"cardlink/internal/model"
	"cardlink/internal/service"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
)

// CardHandler serves public cards by slug. All failures render a single
// not-found shape; a private card is indistinguishable from a missing one.
type CardHandler struct {
	S      *service.CardService
	Origin string
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(s *service.CardService, origin string) *CardHandler {
	return &CardHandler{S: s, Origin: origin}
}

// publicCard is the viewer-facing projection of a profile: the row id is
// kept so the viewer can record a connection, the owning user id is not
// exposed.
type publicCard struct {
	ID             string               `json:"id"`
	FirstName      string               `json:"first_name"`
	LastName       string               `json:"last_name"`
	Title          string               `json:"title"`
	Bio            string               `json:"bio"`
	PhotoURL       string               `json:"photo_url"`
	WorkPreference model.WorkPreference `json:"work_preference"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	Website        string               `json:"website,omitempty"`
	LinkedIn       string               `json:"linkedin,omitempty"`
	Instagram      string               `json:"instagram,omitempty"`
	Facebook       string               `json:"facebook,omitempty"`
	Actions        []card.Action        `json:"actions"`
	IntentURL      string               `json:"android_intent_url"`
	CardURL        string               `json:"card_url"`
}

// Get resolves and renders a public card.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	p, err := h.S.Resolve(r.Context(), slug)
	if err != nil {
		writeNotFound(w)
		return
	}

	writeJSON(w, http.StatusOK, publicCard{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Title:          p.Title,
		Bio:            p.Bio,
		PhotoURL:       p.PhotoURL,
		WorkPreference: p.WorkPreference,
		Email:          p.Email,
		Phone:          p.Phone,
		Website:        card.WebURL(p.Website),
		LinkedIn:       card.WebURL(p.LinkedIn),
		Instagram:      card.InstagramURL(p.Instagram),
		Facebook:       card.FacebookURL(p.Facebook),
		Actions:        card.OrderedActions(p),
		IntentURL:      card.ContactIntentURL(p),
		CardURL:        card.QRPayload(h.Origin, slug, p),
	})
}

// VCard downloads the card as a .vcf attachment.
func (h *CardHandler) VCard(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	p, err := h.S.Resolve(r.Context(), slug)
	if err != nil {
		writeNotFound(w)
		return
	}

	w.Header().Set("Content-Type", "text/vcard; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+card.VCardFileName(p)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(card.VCard(p)))
}

// QR renders the card's QR code as a PNG.
func (h *CardHandler) QR(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	p, err := h.S.Resolve(r.Context(), slug)
	if err != nil {
		writeNotFound(w)
		return
	}

	writeQR(w, card.QRPayload(h.Origin, slug, p))
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "card not found"})
}

func writeQR(w http.ResponseWriter, payload string) {
	png, err := qrcode.Encode(payload, qrcode.Medium, 512)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "qr encoding failed"})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
