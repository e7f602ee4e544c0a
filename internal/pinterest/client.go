// Package pinterest talks to the Pinterest v5 API and manages the
// scheduled pin queue. Without a real access token everything runs in
// demo mode: boards come from a fixed list and pins are "published"
// with a synthetic id.
package pinterest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pinforge/pinforge/internal/domain"
	"github.com/pinforge/pinforge/internal/logger"
	"github.com/pinforge/pinforge/internal/utils"
)

const (
	// DefaultBaseURL is the production Pinterest API root.
	DefaultBaseURL = "https://api.pinterest.com/v5"

	// DemoToken is the magic access token that skips the real API.
	DemoToken = "demo"

	boardsPageSize = 25
)

// Client is a thin Pinterest v5 API client.
type Client struct {
	// BaseURL can be overridden in tests.
	BaseURL string

	client *http.Client
	logger logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  log,
	}
}

type boardsResponse struct {
	Items []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"items"`
}

// Boards lists the first page of the user's boards.
func (c *Client) Boards(ctx context.Context, token string) ([]*domain.Board, error) {
	url := fmt.Sprintf("%s/boards?page_size=%d", c.BaseURL, boardsPageSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build boards request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("boards request failed: %w", err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("boards request returned status %d: %s", resp.StatusCode, body)
	}

	var parsed boardsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode boards response: %w", err)
	}

	boards := make([]*domain.Board, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		boards = append(boards, &domain.Board{ID: item.ID, Name: item.Name})
	}
	return boards, nil
}

type createPinRequest struct {
	BoardID     string      `json:"board_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Link        string      `json:"link"`
	MediaSource mediaSource `json:"media_source"`
}

type mediaSource struct {
	SourceType string `json:"source_type"`
	URL        string `json:"url"`
}

// CreatePin publishes a pin and returns the Pinterest-side id.
// Title and description are truncated to the API limits (100/500).
func (c *Client) CreatePin(ctx context.Context, token string, pin *domain.ScheduledPin) (string, error) {
	payload := createPinRequest{
		BoardID:     pin.BoardID,
		Title:       truncate(pin.Title, 100),
		Description: truncate(pin.Description, 500),
		Link:        pin.AffiliateURL,
		MediaSource: mediaSource{SourceType: "image_url", URL: pin.ImageURL},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal pin payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/pins", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build pin request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("pin request failed: %w", err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("pin request returned status %d: %s", resp.StatusCode, errBody)
	}

	var parsed struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode pin response: %w", err)
	}
	return parsed.ID, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
