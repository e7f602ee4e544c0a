package handlers

import (
	"errors"
	"net/http"

	"github.com/pinforge/pinforge/internal/httpserver/deps"
	"github.com/pinforge/pinforge/internal/logger"
	"github.com/pinforge/pinforge/internal/scraper"
)

type scrapeRequest struct {
	URL string `json:"url"`
}

// Scrape fetches an Amazon product page and returns the extracted
// product record.
func Scrape(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scrapeRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.URL == "" {
			respondError(w, http.StatusBadRequest, "url is required")
			return
		}

		product, err := d.Scraper.Scrape(r.Context(), req.URL)
		if err != nil {
			if errors.Is(err, scraper.ErrUnrecognizedURL) {
				respondError(w, http.StatusBadRequest, "could not extract ASIN from URL, use a link containing /dp/, /gp/product/ or asin=")
				return
			}
			d.Logger.Error("scrape failed", logger.String("url", req.URL), logger.Error(err))
			respondError(w, http.StatusInternalServerError, "failed to scrape product: "+err.Error())
			return
		}

		respondData(w, http.StatusOK, product)
	}
}
