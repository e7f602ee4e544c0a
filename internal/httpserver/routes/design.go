package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pinforge/pinforge/internal/httpserver/deps"
	"github.com/pinforge/pinforge/internal/httpserver/handlers"
)

func init() { Register(registerDesign) }

func registerDesign(r chi.Router, d deps.Deps) {
	r.Post("/api/pin-designer/design", handlers.Design(d))
	r.Post("/api/pin-designer/themes", handlers.Themes(d))
}
