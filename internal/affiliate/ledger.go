// Package affiliate tracks affiliate-tagged links and their
// click/conversion counters. Counters are approximate by design: the
// domain tolerates eventual, per-call-atomic updates.
package affiliate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pinforge/pinforge/internal/domain"
	"github.com/pinforge/pinforge/internal/logger"
	"github.com/pinforge/pinforge/internal/store"
)

const shortCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Ledger is the affiliate link service over a swappable LinkStore.
type Ledger struct {
	store  store.LinkStore
	logger logger.Logger
	now    func() time.Time // for testing, defaults to time.Now
}

func NewLedger(s store.LinkStore, log logger.Logger) *Ledger {
	return &Ledger{store: s, logger: log, now: time.Now}
}

// CreateLink generates a tracked affiliate link for an ASIN.
func (l *Ledger) CreateLink(ctx context.Context, asin, tag, baseURL string) (*domain.AffiliateLink, error) {
	if asin == "" || tag == "" {
		return nil, errors.New("asin and tag are required")
	}

	shortCode := newShortCode()
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://www.amazon.com/dp/%s", asin)
	}

	link := &domain.AffiliateLink{
		ID:          uuid.NewString(),
		ASIN:        asin,
		Tag:         tag,
		OriginalURL: baseURL,
		TrackingURL: fmt.Sprintf("https://www.amazon.com/dp/%s?tag=%s&linkCode=ll1&linkId=%s", asin, tag, shortCode),
		ShortCode:   shortCode,
		CreatedAt:   l.now(),
	}

	if err := l.store.SaveLink(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to save link: %w", err)
	}

	l.logger.Info("generated affiliate link",
		logger.String("asin", asin),
		logger.String("tag", tag),
		logger.String("short_code", shortCode))

	return link, nil
}

// RecordClick increments the click counter and appends a click event.
// Unknown link ids are a silent no-op, not an error.
func (l *Ledger) RecordClick(ctx context.Context, linkID, ip, userAgent, referrer string) error {
	link, err := l.store.GetLink(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	link.Clicks++
	link.LastClickAt = l.now()
	if err := l.store.SaveLink(ctx, link); err != nil {
		return err
	}

	clicks, err := l.store.Clicks(ctx, linkID)
	if err != nil {
		return err
	}
	clicks = append(clicks, &domain.ClickEvent{
		LinkID:    linkID,
		IP:        ip,
		UserAgent: userAgent,
		Referrer:  referrer,
		Timestamp: l.now(),
	})
	return l.store.SaveClicks(ctx, linkID, clicks)
}

// RecordConversion credits a conversion at the flat commission rate
// and marks the most recent unconverted click, if one exists. Unknown
// link ids are a silent no-op.
func (l *Ledger) RecordConversion(ctx context.Context, linkID string, orderValue float64) error {
	link, err := l.store.GetLink(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	link.Conversions++
	link.Revenue += orderValue * domain.CommissionRate
	if err := l.store.SaveLink(ctx, link); err != nil {
		return err
	}

	clicks, err := l.store.Clicks(ctx, linkID)
	if err != nil {
		return err
	}
	for i := len(clicks) - 1; i >= 0; i-- {
		if !clicks[i].Converted {
			clicks[i].Converted = true
			clicks[i].OrderValue = orderValue
			return l.store.SaveClicks(ctx, linkID, clicks)
		}
	}
	return nil
}

// Stats aggregates totals across all links.
func (l *Ledger) Stats(ctx context.Context) (*domain.AffiliateStats, error) {
	links, err := l.store.AllLinks(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.AffiliateStats{TopLinks: []*domain.AffiliateLink{}}
	var revenue float64
	for _, link := range links {
		stats.TotalClicks += link.Clicks
		stats.TotalConversions += link.Conversions
		revenue += link.Revenue
	}
	stats.TotalRevenue = round2(revenue)
	if stats.TotalClicks > 0 {
		stats.ConversionRate = round2(float64(stats.TotalConversions) / float64(stats.TotalClicks) * 100)
	}

	sort.Slice(links, func(i, j int) bool { return links[i].Clicks > links[j].Clicks })
	if len(links) > 10 {
		links = links[:10]
	}
	stats.TopLinks = links

	return stats, nil
}

// Links returns every link, newest first.
func (l *Ledger) Links(ctx context.Context) ([]*domain.AffiliateLink, error) {
	links, err := l.store.AllLinks(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(links, func(i, j int) bool { return links[i].CreatedAt.After(links[j].CreatedAt) })
	return links, nil
}

func newShortCode() string {
	code := make([]byte, 6)
	for i := range code {
		code[i] = shortCodeAlphabet[rand.Intn(len(shortCodeAlphabet))]
	}
	return string(code)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
