package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pinforge/pinforge/internal/domain"
	"github.com/pinforge/pinforge/internal/store"
)

// SavePin stores a scheduled pin in Redis
func (s *Store) SavePin(ctx context.Context, pin *domain.ScheduledPin) error {
	data, err := json.Marshal(pin)
	if err != nil {
		return fmt.Errorf("failed to marshal pin: %w", err)
	}

	if err := s.client.Set(ctx, PinKey(pin.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save pin: %w", err)
	}
	if err := s.client.SAdd(ctx, KeyAllPins, pin.ID).Err(); err != nil {
		return fmt.Errorf("failed to add pin to set: %w", err)
	}

	return nil
}

// GetPin retrieves a scheduled pin from Redis by ID
func (s *Store) GetPin(ctx context.Context, id string) (*domain.ScheduledPin, error) {
	data, err := s.client.Get(ctx, PinKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pin: %w", err)
	}

	var pin domain.ScheduledPin
	if err := json.Unmarshal(data, &pin); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pin: %w", err)
	}

	return &pin, nil
}

// AllPins retrieves all scheduled pins from Redis
func (s *Store) AllPins(ctx context.Context) ([]*domain.ScheduledPin, error) {
	ids, err := s.client.SMembers(ctx, KeyAllPins).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get pin IDs: %w", err)
	}

	pins := make([]*domain.ScheduledPin, 0, len(ids))
	for _, id := range ids {
		pin, err := s.GetPin(ctx, id)
		if err != nil {
			// Skip pins that couldn't be retrieved
			continue
		}
		pins = append(pins, pin)
	}

	return pins, nil
}
