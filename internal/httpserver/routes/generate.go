package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pinforge/pinforge/internal/httpserver/deps"
	"github.com/pinforge/pinforge/internal/httpserver/handlers"
)

func init() { Register(registerGenerate) }

func registerGenerate(r chi.Router, d deps.Deps) {
	r.Post("/api/ai/generate", handlers.Generate(d))
}
