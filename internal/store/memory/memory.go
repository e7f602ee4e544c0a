// Package memory is the default store backend: plain maps behind a
// RWMutex, data lost on restart by design.
package memory

import (
	"context"
	"sync"

	"github.com/pinforge/pinforge/internal/domain"
	"github.com/pinforge/pinforge/internal/store"
)

// Store holds links, click events and scheduled pins in process
// memory. Safe for concurrent use; values are copied on the way in and
// out so callers never share mutable state with the store.
type Store struct {
	mu     sync.RWMutex
	links  map[string]*domain.AffiliateLink
	clicks map[string][]*domain.ClickEvent
	pins   map[string]*domain.ScheduledPin
}

func New() *Store {
	return &Store{
		links:  make(map[string]*domain.AffiliateLink),
		clicks: make(map[string][]*domain.ClickEvent),
		pins:   make(map[string]*domain.ScheduledPin),
	}
}

// ─────────────────────────────────────────────────────────────────
// LinkStore
// ─────────────────────────────────────────────────────────────────

func (s *Store) SaveLink(_ context.Context, link *domain.AffiliateLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *link
	s.links[link.ID] = &cp
	return nil
}

func (s *Store) GetLink(_ context.Context, id string) (*domain.AffiliateLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	link, ok := s.links[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *link
	return &cp, nil
}

func (s *Store) AllLinks(_ context.Context) ([]*domain.AffiliateLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links := make([]*domain.AffiliateLink, 0, len(s.links))
	for _, link := range s.links {
		cp := *link
		links = append(links, &cp)
	}
	return links, nil
}

func (s *Store) SaveClicks(_ context.Context, linkID string, clicks []*domain.ClickEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cps := make([]*domain.ClickEvent, len(clicks))
	for i, c := range clicks {
		cp := *c
		cps[i] = &cp
	}
	s.clicks[linkID] = cps
	return nil
}

func (s *Store) Clicks(_ context.Context, linkID string) ([]*domain.ClickEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clicks := s.clicks[linkID]
	cps := make([]*domain.ClickEvent, len(clicks))
	for i, c := range clicks {
		cp := *c
		cps[i] = &cp
	}
	return cps, nil
}

// ─────────────────────────────────────────────────────────────────
// PinStore
// ─────────────────────────────────────────────────────────────────

func (s *Store) SavePin(_ context.Context, pin *domain.ScheduledPin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *pin
	s.pins[pin.ID] = &cp
	return nil
}

func (s *Store) GetPin(_ context.Context, id string) (*domain.ScheduledPin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pin, ok := s.pins[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *pin
	return &cp, nil
}

func (s *Store) AllPins(_ context.Context) ([]*domain.ScheduledPin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pins := make([]*domain.ScheduledPin, 0, len(s.pins))
	for _, pin := range s.pins {
		cp := *pin
		pins = append(pins, &cp)
	}
	return pins, nil
}
