package handlers

import (
	"net/http"

	"github.com/pinforge/pinforge/internal/httpserver/deps"
	"github.com/pinforge/pinforge/internal/utils"
)

type affiliateGenerateRequest struct {
	ASIN    string `json:"asin"`
	Tag     string `json:"tag"`
	BaseURL string `json:"baseUrl"`
}

// AffiliateGenerate creates a tracked affiliate link.
func AffiliateGenerate(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req affiliateGenerateRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		link, err := d.Affiliate.CreateLink(r.Context(), req.ASIN, req.Tag, req.BaseURL)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondData(w, http.StatusOK, link)
	}
}

type clickRequest struct {
	LinkID string `json:"linkId"`
}

// AffiliateClick records a click on a tracked link.
func AffiliateClick(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req clickRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.LinkID == "" {
			respondError(w, http.StatusBadRequest, "linkId is required")
			return
		}

		ip := utils.ClientIP(r, d.TrustProxy)
		if err := d.Affiliate.RecordClick(r.Context(), req.LinkID, ip, r.UserAgent(), r.Referer()); err != nil {
			respondError(w, http.StatusInternalServerError, "failed to record click: "+err.Error())
			return
		}
		respondMessage(w, http.StatusOK, "click recorded")
	}
}

type conversionRequest struct {
	LinkID     string  `json:"linkId"`
	OrderValue float64 `json:"orderValue"`
}

// AffiliateConversion credits a conversion on a tracked link.
func AffiliateConversion(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req conversionRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.LinkID == "" {
			respondError(w, http.StatusBadRequest, "linkId is required")
			return
		}
		if req.OrderValue < 0 {
			respondError(w, http.StatusBadRequest, "orderValue must be >= 0")
			return
		}

		if err := d.Affiliate.RecordConversion(r.Context(), req.LinkID, req.OrderValue); err != nil {
			respondError(w, http.StatusInternalServerError, "failed to record conversion: "+err.Error())
			return
		}
		respondMessage(w, http.StatusOK, "conversion recorded")
	}
}

// AffiliateStats aggregates click and revenue totals across all links.
func AffiliateStats(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := d.Affiliate.Stats(r.Context())
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to compute stats: "+err.Error())
			return
		}
		respondData(w, http.StatusOK, stats)
	}
}

// AffiliateLinks lists every tracked link, newest first.
func AffiliateLinks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := d.Affiliate.Links(r.Context())
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to list links: "+err.Error())
			return
		}
		respondData(w, http.StatusOK, links)
	}
}
