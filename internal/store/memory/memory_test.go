package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pinforge/pinforge/internal/domain"
	"github.com/pinforge/pinforge/internal/store"
)

func TestLinkRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	link := &domain.AffiliateLink{ID: "l1", ASIN: "B08N5WRWNW", Tag: "tag-20", CreatedAt: time.Now()}
	if err := s.SaveLink(ctx, link); err != nil {
		t.Fatalf("SaveLink() error: %v", err)
	}

	got, err := s.GetLink(ctx, "l1")
	if err != nil {
		t.Fatalf("GetLink() error: %v", err)
	}
	if got.ASIN != "B08N5WRWNW" {
		t.Errorf("ASIN = %q", got.ASIN)
	}

	// Mutating the returned value must not leak into the store.
	got.Clicks = 99
	again, _ := s.GetLink(ctx, "l1")
	if again.Clicks != 0 {
		t.Error("store returned shared mutable state")
	}
}

func TestGetLinkNotFound(t *testing.T) {
	s := New()
	if _, err := s.GetLink(context.Background(), "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetLink() error = %v, want ErrNotFound", err)
	}
}

func TestClicksRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	clicks := []*domain.ClickEvent{
		{LinkID: "l1", IP: "203.0.113.7"},
		{LinkID: "l1", IP: "203.0.113.8"},
	}
	if err := s.SaveClicks(ctx, "l1", clicks); err != nil {
		t.Fatalf("SaveClicks() error: %v", err)
	}

	got, err := s.Clicks(ctx, "l1")
	if err != nil {
		t.Fatalf("Clicks() error: %v", err)
	}
	if len(got) != 2 || got[0].IP != "203.0.113.7" {
		t.Errorf("clicks = %+v", got)
	}

	// Unknown link ids return an empty log, not an error.
	empty, err := s.Clicks(ctx, "unknown")
	if err != nil || len(empty) != 0 {
		t.Errorf("Clicks(unknown) = %v, %v", empty, err)
	}
}

func TestPinRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	pin := &domain.ScheduledPin{ID: "p1", Title: "Great Find", Status: domain.PinPending}
	if err := s.SavePin(ctx, pin); err != nil {
		t.Fatalf("SavePin() error: %v", err)
	}

	got, err := s.GetPin(ctx, "p1")
	if err != nil {
		t.Fatalf("GetPin() error: %v", err)
	}
	if got.Title != "Great Find" || got.Status != domain.PinPending {
		t.Errorf("pin = %+v", got)
	}

	if _, err := s.GetPin(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetPin(missing) error = %v, want ErrNotFound", err)
	}

	all, err := s.AllPins(ctx)
	if err != nil || len(all) != 1 {
		t.Errorf("AllPins() = %d, %v, want 1", len(all), err)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := New()
	ctx := context.Background()

	_ = s.SavePin(ctx, &domain.ScheduledPin{ID: "p1", Status: domain.PinPending})
	_ = s.SavePin(ctx, &domain.ScheduledPin{ID: "p1", Status: domain.PinPublished})

	got, _ := s.GetPin(ctx, "p1")
	if got.Status != domain.PinPublished {
		t.Errorf("Status = %q, want published after overwrite", got.Status)
	}
	if all, _ := s.AllPins(ctx); len(all) != 1 {
		t.Errorf("AllPins() = %d, want 1", len(all))
	}
}
