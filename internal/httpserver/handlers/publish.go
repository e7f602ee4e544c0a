package handlers

import (
	"net/http"

	"github.com/pinforge/pinforge/internal/httpserver/deps"
	"github.com/pinforge/pinforge/internal/logger"
)

// Publish triggers an immediate pass of the due-pin publisher instead
// of waiting for the next tick. 409 when the publisher is disabled
// (no server-side token configured).
func Publish(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.PublishTrigger == nil {
			respondError(w, http.StatusConflict, "publisher disabled, set PINFORGE_PINTEREST_TOKEN")
			return
		}

		select {
		case d.PublishTrigger <- struct{}{}:
			d.Logger.Info("manual publish triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			respondMessage(w, http.StatusAccepted, "publish pass triggered")
		default:
			d.Logger.Warn("publish pass already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			respondError(w, http.StatusTooManyRequests, "publish pass already in progress")
		}
	}
}
