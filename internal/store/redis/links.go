// Package redis is the opt-in persistent store backend. Links and pins
// are stored as JSON values with a set of ids per collection, so data
// survives restarts when PINFORGE_STORE_BACKEND=redis.
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

// Store implements store.LinkStore and store.PinStore on Redis.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// SaveLink stores an affiliate link in Redis
func (s *Store) SaveLink(ctx context.Context, link *domain.AffiliateLink) error {
	data, err := json.Marshal(link)
	if err != nil {
		return fmt.Errorf("failed to marshal link: %w", err)
	}

	if err := s.client.Set(ctx, LinkKey(link.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save link: %w", err)
	}
	if err := s.client.SAdd(ctx, KeyAllLinks, link.ID).Err(); err != nil {
		return fmt.Errorf("failed to add link to set: %w", err)
	}

	return nil
}

// GetLink retrieves an affiliate link from Redis by ID
func (s *Store) GetLink(ctx context.Context, id string) (*domain.AffiliateLink, error) {
	data, err := s.client.Get(ctx, LinkKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	var link domain.AffiliateLink
	if err := json.Unmarshal(data, &link); err != nil {
		return nil, fmt.Errorf("failed to unmarshal link: %w", err)
	}

	return &link, nil
}

// AllLinks retrieves all affiliate links from Redis
func (s *Store) AllLinks(ctx context.Context) ([]*domain.AffiliateLink, error) {
	ids, err := s.client.SMembers(ctx, KeyAllLinks).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get link IDs: %w", err)
	}

	links := make([]*domain.AffiliateLink, 0, len(ids))
	for _, id := range ids {
		link, err := s.GetLink(ctx, id)
		if err != nil {
			// Skip links that couldn't be retrieved
			continue
		}
		links = append(links, link)
	}

	return links, nil
}

// SaveClicks replaces the click event log for a link
func (s *Store) SaveClicks(ctx context.Context, linkID string, clicks []*domain.ClickEvent) error {
	data, err := json.Marshal(clicks)
	if err != nil {
		return fmt.Errorf("failed to marshal clicks: %w", err)
	}
	if err := s.client.Set(ctx, ClicksKey(linkID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save clicks: %w", err)
	}
	return nil
}

// Clicks retrieves the click event log for a link, oldest first
func (s *Store) Clicks(ctx context.Context, linkID string) ([]*domain.ClickEvent, error) {
	data, err := s.client.Get(ctx, ClicksKey(linkID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get clicks: %w", err)
	}

	var clicks []*domain.ClickEvent
	if err := json.Unmarshal(data, &clicks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal clicks: %w", err)
	}
	return clicks, nil
}
