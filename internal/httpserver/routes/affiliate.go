package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pinforge/pinforge/internal/httpserver/deps"
	"github.com/pinforge/pinforge/internal/httpserver/handlers"
)

func init() { Register(registerAffiliate) }

func registerAffiliate(r chi.Router, d deps.Deps) {
	r.Post("/api/affiliate/generate", handlers.AffiliateGenerate(d))
	r.Post("/api/affiliate/click", handlers.AffiliateClick(d))
	r.Post("/api/affiliate/conversion", handlers.AffiliateConversion(d))
	r.Get("/api/affiliate/stats", handlers.AffiliateStats(d))
	r.Get("/api/affiliate/links", handlers.AffiliateLinks(d))
}
