package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pinforge/pinforge/internal/httpserver/deps"
	"github.com/pinforge/pinforge/internal/httpserver/handlers"
)

func init() { Register(registerPinterest) }

func registerPinterest(r chi.Router, d deps.Deps) {
	r.Post("/api/pinterest/boards", handlers.Boards(d))
	r.Post("/api/pinterest/schedule", handlers.Schedule(d))
	r.Post("/api/pinterest/publish", handlers.Publish(d))
	r.Get("/api/pinterest/pins", handlers.Pins(d))
	r.Get("/api/pinterest/pins/{id}", handlers.Pin(d))
}
