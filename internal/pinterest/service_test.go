package pinterest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pinforge/pinforge/internal/domain"
	"github.com/pinforge/pinforge/internal/logger"
	"github.com/pinforge/pinforge/internal/store/memory"
)

func testService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()

	log := logger.New("error", false)
	client := NewClient("", 2*time.Second, log)
	if handler != nil {
		ts := httptest.NewServer(handler)
		t.Cleanup(ts.Close)
		client.BaseURL = ts.URL
	}
	return NewService(client, memory.New(), nil, log)
}

func TestBoardsDemoToken(t *testing.T) {
	s := testService(t, nil)

	for _, token := range []string{"", "demo"} {
		boards := s.Boards(context.Background(), token)
		if len(boards) != 5 {
			t.Fatalf("token %q: boards = %d, want 5 demo boards", token, len(boards))
		}
		if boards[0].ID != "board_1" || boards[0].Name != "Amazon Finds" {
			t.Errorf("token %q: first board = %+v", token, boards[0])
		}
	}
}

func TestBoardsFromAPI(t *testing.T) {
	s := testService(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer real-token" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.URL.Query().Get("page_size"); got != "25" {
			t.Errorf("page_size = %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]string{
				{"id": "b1", "name": "My Board"},
			},
		})
	})

	boards := s.Boards(context.Background(), "real-token")
	if len(boards) != 1 || boards[0].ID != "b1" || boards[0].Name != "My Board" {
		t.Errorf("boards = %+v", boards)
	}
}

func TestBoardsAPIErrorFallsBackToDemo(t *testing.T) {
	s := testService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	boards := s.Boards(context.Background(), "bad-token")
	if len(boards) != 5 {
		t.Fatalf("boards = %d, want 5 demo boards on API error", len(boards))
	}
}

func TestSchedulePinDemoMode(t *testing.T) {
	s := testService(t, nil)

	pin, err := s.SchedulePin(context.Background(), ScheduleRequest{
		AccessToken: "demo",
		BoardID:     "board_1",
		BoardName:   "Amazon Finds",
		Title:       "Great Find",
		ScheduledAt: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("SchedulePin() error: %v", err)
	}
	if !strings.HasPrefix(pin.PinID, "demo_pin_") {
		t.Errorf("PinID = %q, want demo_pin_ prefix", pin.PinID)
	}
	if pin.Status != domain.PinPending {
		t.Errorf("Status = %q, want pending in demo mode", pin.Status)
	}

	saved, err := s.Pin(context.Background(), pin.ID)
	if err != nil {
		t.Fatalf("Pin() error: %v", err)
	}
	if saved.Title != "Great Find" {
		t.Errorf("saved Title = %q", saved.Title)
	}
}

func TestSchedulePinPublishes(t *testing.T) {
	longTitle := strings.Repeat("t", 150)
	s := testService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pins" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if title, _ := body["title"].(string); len(title) != 100 {
			t.Errorf("title length = %d, want truncated to 100", len(title))
		}
		if body["board_id"] != "board_1" {
			t.Errorf("board_id = %v", body["board_id"])
		}
		media, _ := body["media_source"].(map[string]any)
		if media["source_type"] != "image_url" {
			t.Errorf("media_source = %v", media)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "pin-123"})
	})

	pin, err := s.SchedulePin(context.Background(), ScheduleRequest{
		AccessToken:  "real-token",
		BoardID:      "board_1",
		Title:        longTitle,
		ImageURL:     "https://example.com/pin.svg",
		AffiliateURL: "https://www.amazon.com/dp/B08N5WRWNW?tag=t-20",
	})
	if err != nil {
		t.Fatalf("SchedulePin() error: %v", err)
	}
	if pin.PinID != "pin-123" {
		t.Errorf("PinID = %q", pin.PinID)
	}
	if pin.Status != domain.PinPublished {
		t.Errorf("Status = %q, want published", pin.Status)
	}
}

func TestSchedulePinPublishFailureStaysPending(t *testing.T) {
	s := testService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	pin, err := s.SchedulePin(context.Background(), ScheduleRequest{
		AccessToken: "real-token",
		BoardID:     "board_1",
		Title:       "Great Find",
	})
	if err != nil {
		t.Fatalf("SchedulePin() error: %v, want pending pin", err)
	}
	if pin.Status != domain.PinPending {
		t.Errorf("Status = %q, want pending after publish failure", pin.Status)
	}
	if pin.PinID != "" {
		t.Errorf("PinID = %q, want empty after publish failure", pin.PinID)
	}
}

func TestPinsNewestFirst(t *testing.T) {
	s := testService(t, nil)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	i := 0
	s.now = func() time.Time {
		i++
		return base.Add(time.Duration(i) * time.Minute)
	}

	first, _ := s.SchedulePin(ctx, ScheduleRequest{Title: "first"})
	second, _ := s.SchedulePin(ctx, ScheduleRequest{Title: "second"})

	pins, err := s.Pins(ctx)
	if err != nil {
		t.Fatalf("Pins() error: %v", err)
	}
	if len(pins) != 2 {
		t.Fatalf("pins = %d, want 2", len(pins))
	}
	if pins[0].ID != second.ID || pins[1].ID != first.ID {
		t.Error("pins not newest first")
	}
}

func TestUpdateStatus(t *testing.T) {
	s := testService(t, nil)
	ctx := context.Background()

	pin, _ := s.SchedulePin(ctx, ScheduleRequest{Title: "queued"})
	if err := s.UpdateStatus(ctx, pin.ID, domain.PinFailed); err != nil {
		t.Fatalf("UpdateStatus() error: %v", err)
	}

	got, _ := s.Pin(ctx, pin.ID)
	if got.Status != domain.PinFailed {
		t.Errorf("Status = %q, want failed", got.Status)
	}

	// Unknown ids are a no-op.
	if err := s.UpdateStatus(ctx, "nope", domain.PinPublished); err != nil {
		t.Fatalf("UpdateStatus(unknown) error: %v", err)
	}
}

func TestPublishDue(t *testing.T) {
	var calls int
	s := testService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "pin-456"})
	})
	ctx := context.Background()

	// One due pending pin, one future pin.
	due, _ := s.SchedulePin(ctx, ScheduleRequest{Title: "due", ScheduledAt: time.Now().Add(-time.Minute)})
	future, _ := s.SchedulePin(ctx, ScheduleRequest{Title: "future", ScheduledAt: time.Now().Add(time.Hour)})

	n, err := s.PublishDue(ctx, "real-token")
	if err != nil {
		t.Fatalf("PublishDue() error: %v", err)
	}
	if n != 1 || calls != 1 {
		t.Errorf("published = %d (api calls %d), want 1", n, calls)
	}

	got, _ := s.Pin(ctx, due.ID)
	if got.Status != domain.PinPublished || got.PinID != "pin-456" {
		t.Errorf("due pin = %+v, want published with api id", got)
	}
	if got, _ := s.Pin(ctx, future.ID); got.Status != domain.PinPending {
		t.Errorf("future pin status = %q, want pending", got.Status)
	}
}

func TestPublishDueWithoutTokenIsNoOp(t *testing.T) {
	s := testService(t, nil)
	ctx := context.Background()
	_, _ = s.SchedulePin(ctx, ScheduleRequest{Title: "due", ScheduledAt: time.Now().Add(-time.Minute)})

	for _, token := range []string{"", "demo"} {
		n, err := s.PublishDue(ctx, token)
		if err != nil || n != 0 {
			t.Errorf("token %q: PublishDue() = %d, %v, want 0, nil", token, n, err)
		}
	}
}
