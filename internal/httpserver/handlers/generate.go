package handlers

import (
	"errors"
	"net/http"

	"github.com/pinforge/pinforge/internal/copygen"
	"github.com/pinforge/pinforge/internal/domain"
	"github.com/pinforge/pinforge/internal/httpserver/deps"
	"github.com/pinforge/pinforge/internal/logger"
)

type generateRequest struct {
	Product *domain.Product `json:"product"`
}

// Generate produces Pinterest marketing copy for a scraped product.
func Generate(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Product == nil {
			respondError(w, http.StatusBadRequest, "product is required")
			return
		}

		content, err := d.Generator.Generate(r.Context(), req.Product)
		if err != nil {
			switch {
			case errors.Is(err, copygen.ErrInvalidToken), errors.Is(err, copygen.ErrRateLimited):
				respondError(w, http.StatusInternalServerError, err.Error())
			default:
				d.Logger.Error("copy generation failed",
					logger.String("asin", req.Product.ASIN),
					logger.Error(err))
				respondError(w, http.StatusInternalServerError, "failed to generate content: "+err.Error())
			}
			return
		}

		respondData(w, http.StatusOK, content)
	}
}
