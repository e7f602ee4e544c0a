package handlers

import (
	"net/http"

	"github.com/pinforge/pinforge/internal/domain"
	"github.com/pinforge/pinforge/internal/httpserver/deps"
	"github.com/pinforge/pinforge/internal/logger"
)

type designRequest struct {
	Product *domain.Product       `json:"product"`
	Content *domain.MarketingCopy `json:"content"`
	Theme   string                `json:"theme"`
}

// Design renders the 600x900 pin for a product and its copy.
func Design(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req designRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Product == nil || req.Content == nil {
			respondError(w, http.StatusBadRequest, "product and content are required")
			return
		}

		design, err := d.Designer.Render(req.Product, req.Content, req.Theme)
		if err != nil {
			d.Logger.Error("pin render failed",
				logger.String("asin", req.Product.ASIN),
				logger.Error(err))
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}

		respondData(w, http.StatusOK, design)
	}
}

// Themes lists the available pin theme names.
func Themes(deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondData(w, http.StatusOK, domain.ThemeNames())
	}
}
