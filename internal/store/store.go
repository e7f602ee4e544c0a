// Package store defines the repository interfaces backing the
// affiliate ledger and the pin schedule. The default backend is the
// in-process memory store; a Redis backend can be swapped in through
// configuration without changing any call site.
package store

import (
	"context"
	"errors"

	"github.com/pinforge/pinforge/internal/domain"
)

// ErrNotFound is returned when an id does not exist in a store.
var ErrNotFound = errors.New("not found")

// LinkStore persists affiliate links and their click events.
type LinkStore interface {
	// SaveLink inserts or replaces a link by id.
	SaveLink(ctx context.Context, link *domain.AffiliateLink) error

	// GetLink returns ErrNotFound for unknown ids.
	GetLink(ctx context.Context, id string) (*domain.AffiliateLink, error)

	// AllLinks returns every link, in no particular order.
	AllLinks(ctx context.Context) ([]*domain.AffiliateLink, error)

	// SaveClicks replaces the click event log for a link.
	SaveClicks(ctx context.Context, linkID string, clicks []*domain.ClickEvent) error

	// Clicks returns the click event log for a link, oldest first.
	Clicks(ctx context.Context, linkID string) ([]*domain.ClickEvent, error)
}

// PinStore persists scheduled pins.
type PinStore interface {
	// SavePin inserts or replaces a pin by id.
	SavePin(ctx context.Context, pin *domain.ScheduledPin) error

	// GetPin returns ErrNotFound for unknown ids.
	GetPin(ctx context.Context, id string) (*domain.ScheduledPin, error)

	// AllPins returns every pin, in no particular order.
	AllPins(ctx context.Context) ([]*domain.ScheduledPin, error)
}
