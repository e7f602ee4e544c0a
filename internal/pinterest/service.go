package pinterest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pinforge/pinforge/internal/domain"
	"github.com/pinforge/pinforge/internal/logger"
	"github.com/pinforge/pinforge/internal/store"
)

// DefaultDemoBoards is the board list served when the real API cannot
// be used, either because the token is missing/demo or because the
// API call failed.
func DefaultDemoBoards() []*domain.Board {
	return []*domain.Board{
		{ID: "board_1", Name: "Amazon Finds"},
		{ID: "board_2", Name: "Home Essentials"},
		{ID: "board_3", Name: "Gift Ideas"},
		{ID: "board_4", Name: "Best Sellers"},
		{ID: "board_5", Name: "Budget Buys"},
	}
}

// Service schedules pins and answers board queries, degrading to demo
// behavior whenever the real API is unavailable.
type Service struct {
	client     *Client
	store      store.PinStore
	demoBoards []*domain.Board
	logger     logger.Logger
	now        func() time.Time // for testing, defaults to time.Now
}

func NewService(client *Client, s store.PinStore, demoBoards []*domain.Board, log logger.Logger) *Service {
	if len(demoBoards) == 0 {
		demoBoards = DefaultDemoBoards()
	}
	return &Service{
		client:     client,
		store:      s,
		demoBoards: demoBoards,
		logger:     log,
		now:        time.Now,
	}
}

// Boards never fails: API errors fall back to the demo board list.
func (s *Service) Boards(ctx context.Context, token string) []*domain.Board {
	if token == "" || token == DemoToken {
		return s.demoBoards
	}

	boards, err := s.client.Boards(ctx, token)
	if err != nil {
		s.logger.Warn("pinterest api error, returning demo boards", logger.Error(err))
		return s.demoBoards
	}
	return boards
}

// ScheduleRequest carries everything needed to queue a pin.
type ScheduleRequest struct {
	AccessToken  string
	BoardID      string
	BoardName    string
	Title        string
	Description  string
	ImageURL     string
	AffiliateURL string
	ScheduledAt  time.Time
}

// SchedulePin queues a pin and, when a real token is given, attempts
// to publish it immediately. A publish failure is not an error: the
// pin is kept pending for the publisher loop to retry.
func (s *Service) SchedulePin(ctx context.Context, req ScheduleRequest) (*domain.ScheduledPin, error) {
	pin := &domain.ScheduledPin{
		ID:           uuid.NewString(),
		BoardID:      req.BoardID,
		BoardName:    req.BoardName,
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		AffiliateURL: req.AffiliateURL,
		ScheduledAt:  req.ScheduledAt,
		Status:       domain.PinPending,
		CreatedAt:    s.now(),
	}

	if req.AccessToken != "" && req.AccessToken != DemoToken {
		pinID, err := s.client.CreatePin(ctx, req.AccessToken, pin)
		if err != nil {
			s.logger.Warn("pinterest publish failed, saving as scheduled",
				logger.String("board_id", pin.BoardID),
				logger.Error(err))
		} else {
			pin.PinID = pinID
			pin.Status = domain.PinPublished
			s.logger.Info("pin published", logger.String("pin_id", pinID))
		}
	} else {
		// Demo mode keeps the pin pending but stamps a synthetic id.
		pin.PinID = fmt.Sprintf("demo_pin_%d", s.now().UnixMilli())
		s.logger.Info("demo mode: pin scheduled locally", logger.String("pin_id", pin.PinID))
	}

	if err := s.store.SavePin(ctx, pin); err != nil {
		return nil, fmt.Errorf("failed to save pin: %w", err)
	}
	return pin, nil
}

// Pins returns every scheduled pin, newest first.
func (s *Service) Pins(ctx context.Context) ([]*domain.ScheduledPin, error) {
	pins, err := s.store.AllPins(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(pins, func(i, j int) bool { return pins[i].CreatedAt.After(pins[j].CreatedAt) })
	return pins, nil
}

// Pin returns one scheduled pin, or store.ErrNotFound.
func (s *Service) Pin(ctx context.Context, id string) (*domain.ScheduledPin, error) {
	return s.store.GetPin(ctx, id)
}

// UpdateStatus moves a pin through its lifecycle. Unknown ids are a
// silent no-op.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.PinStatus) error {
	pin, err := s.store.GetPin(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	pin.Status = status
	return s.store.SavePin(ctx, pin)
}

// PublishDue publishes every pending pin whose scheduled time has
// passed, using the given server-side token. Returns how many pins
// were published; individual failures are logged and the pin stays
// pending for the next pass.
func (s *Service) PublishDue(ctx context.Context, token string) (int, error) {
	if token == "" || token == DemoToken {
		return 0, nil
	}

	pins, err := s.store.AllPins(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	published := 0
	for _, pin := range pins {
		if pin.Status != domain.PinPending || pin.ScheduledAt.After(now) {
			continue
		}

		pinID, err := s.client.CreatePin(ctx, token, pin)
		if err != nil {
			s.logger.Warn("due pin publish failed, will retry",
				logger.String("id", pin.ID),
				logger.Error(err))
			continue
		}

		pin.PinID = pinID
		pin.Status = domain.PinPublished
		if err := s.store.SavePin(ctx, pin); err != nil {
			return published, fmt.Errorf("failed to save published pin %s: %w", pin.ID, err)
		}
		published++
	}
	return published, nil
}
