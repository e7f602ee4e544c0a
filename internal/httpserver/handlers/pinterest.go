package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pinforge/pinforge/internal/httpserver/deps"
	"github.com/pinforge/pinforge/internal/pinterest"
	"github.com/pinforge/pinforge/internal/store"
)

type boardsRequest struct {
	AccessToken string `json:"accessToken"`
}

// Boards lists the user's Pinterest boards, falling back to the demo
// board list when no usable token is supplied.
func Boards(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req boardsRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		boards := d.Pinterest.Boards(r.Context(), req.AccessToken)
		respondData(w, http.StatusOK, boards)
	}
}

type scheduleRequest struct {
	AccessToken  string `json:"accessToken"`
	BoardID      string `json:"boardId"`
	BoardName    string `json:"boardName"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
	AffiliateURL string `json:"affiliateUrl"`
	ScheduledAt  string `json:"scheduledAt"` // RFC 3339; empty means now
}

// Schedule queues a pin and attempts an immediate publish when a real
// token is supplied.
func Schedule(d deps.Deps) http.HandlerFunc {
	now := d.TimeNow
	if now == nil {
		now = time.Now
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req scheduleRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.BoardID == "" {
			respondError(w, http.StatusBadRequest, "boardId is required")
			return
		}

		scheduledAt := now()
		if req.ScheduledAt != "" {
			parsed, err := time.Parse(time.RFC3339, req.ScheduledAt)
			if err != nil {
				respondError(w, http.StatusBadRequest, "scheduledAt must be RFC 3339")
				return
			}
			scheduledAt = parsed
		}

		pin, err := d.Pinterest.SchedulePin(r.Context(), pinterest.ScheduleRequest{
			AccessToken:  req.AccessToken,
			BoardID:      req.BoardID,
			BoardName:    req.BoardName,
			Title:        req.Title,
			Description:  req.Description,
			ImageURL:     req.ImageURL,
			AffiliateURL: req.AffiliateURL,
			ScheduledAt:  scheduledAt,
		})
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to schedule pin: "+err.Error())
			return
		}

		respondData(w, http.StatusOK, pin)
	}
}

// Pins lists all scheduled pins, newest first.
func Pins(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pins, err := d.Pinterest.Pins(r.Context())
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to list pins: "+err.Error())
			return
		}
		respondData(w, http.StatusOK, pins)
	}
}

// Pin returns a single scheduled pin by id.
func Pin(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		pin, err := d.Pinterest.Pin(r.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "pin not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "failed to get pin: "+err.Error())
			return
		}
		respondData(w, http.StatusOK, pin)
	}
}
