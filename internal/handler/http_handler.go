package handler

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cardlink/internal/config"
	"cardlink/internal/middleware"
	"cardlink/internal/service"
)

// NewRouter builds the HTTP router with the public card routes and the
// authenticated profile/connection routes.
func NewRouter(cfg *config.Config, p *service.ProfileService, c *service.CardService, cn *service.ConnectionService, db *sql.DB) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Timeout(15 * time.Second))

	// Auth middleware
	auth := middleware.JWT([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience)

	ph := NewProfileHandler(p, cfg.PublicBaseURL)
	ch := NewCardHandler(c, cfg.PublicBaseURL)
	cnh := NewConnectionHandler(cn)

	// Public card routes take unauthenticated traffic, so they are rate
	// limited by IP.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.CardRateLimit, cfg.CardRateWindow))
		r.Get("/card/{slug}", ch.Get)
		r.Get("/card/{slug}/vcard", ch.VCard)
		r.Get("/card/{slug}/qr.png", ch.QR)
	})

	// Profile routes
	path := "/api/v1/profile"
	r.With(auth).Get(path+"/me", ph.Get)
	r.With(auth).Put(path+"/me", ph.Update)
	r.With(auth).Get(path+"/me/qr.png", ph.QR)

	// Connection routes
	connPath := "/api/v1/connections"
	r.With(auth).Post(connPath, cnh.Save)
	r.With(auth).Get(connPath, cnh.List)

	// Health
	healthPath := "/health"
	r.Get(healthPath, Health())
	r.Get(healthPath+"/ready", Ready(db))

	return r
}
