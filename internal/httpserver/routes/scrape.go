package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pinforge/pinforge/internal/httpserver/deps"
	"github.com/pinforge/pinforge/internal/httpserver/handlers"
	"github.com/pinforge/pinforge/internal/httpserver/mw"
)

func init() { Register(registerScrape) }

func registerScrape(r chi.Router, d deps.Deps) {
	// Scraping hits Amazon directly, so it is the one rate-limited route.
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.ScrapeBurst,
		RefillPerIPPerMin: d.ScrapePerMinute,
		TrustProxy:        d.TrustProxy,
	})
	r.With(limit).Post("/api/scrape", handlers.Scrape(d))
}
