package scheduler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pinforge/pinforge/internal/domain"
	"github.com/pinforge/pinforge/internal/logger"
	"github.com/pinforge/pinforge/internal/pinterest"
	"github.com/pinforge/pinforge/internal/store/memory"
)

func testPublisher(t *testing.T, token string, handler http.HandlerFunc) (*Publisher, *pinterest.Service) {
	t.Helper()

	log := logger.New("error", false)
	client := pinterest.NewClient("", 2*time.Second, log)
	if handler != nil {
		ts := httptest.NewServer(handler)
		t.Cleanup(ts.Close)
		client.BaseURL = ts.URL
	}
	svc := pinterest.NewService(client, memory.New(), nil, log)
	return NewPublisher(svc, token, log, time.Minute, make(chan struct{})), svc
}

func TestPublishPassPublishesDuePins(t *testing.T) {
	pub, svc := testPublisher(t, "real-token", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "pin-789"})
	})
	ctx := context.Background()

	due, err := svc.SchedulePin(ctx, pinterest.ScheduleRequest{
		Title:       "due pin",
		ScheduledAt: time.Now().Add(-time.Minute),
	})
	if err != nil {
		t.Fatalf("SchedulePin() error: %v", err)
	}

	if err := pub.Publish(ctx); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	got, err := svc.Pin(ctx, due.ID)
	if err != nil {
		t.Fatalf("Pin() error: %v", err)
	}
	if got.Status != domain.PinPublished || got.PinID != "pin-789" {
		t.Errorf("pin = %+v, want published with api id", got)
	}
}

func TestPublishPassWithoutTokenIsNoOp(t *testing.T) {
	pub, svc := testPublisher(t, "", nil)
	ctx := context.Background()

	due, _ := svc.SchedulePin(ctx, pinterest.ScheduleRequest{
		Title:       "due pin",
		ScheduledAt: time.Now().Add(-time.Minute),
	})

	if err := pub.Publish(ctx); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}
	got, _ := svc.Pin(ctx, due.ID)
	if got.Status != domain.PinPending {
		t.Errorf("status = %q, want pending without a token", got.Status)
	}
}

func TestPublisherStartAndStop(t *testing.T) {
	pub, _ := testPublisher(t, "", nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := pub.Start(ctx); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	pub.Stop()
}
