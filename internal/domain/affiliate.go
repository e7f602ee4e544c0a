package domain

import "time"

// CommissionRate is the flat Amazon Associates commission applied to
// every conversion. Fixed; does not vary by category.
const CommissionRate = 0.04

// AffiliateLink tracks one affiliate-tagged product link.
//
// Counters are mutable and updated by click/conversion events; the
// rest is immutable after creation. Lifetime is the process lifetime
// unless a persistent store backend is configured.
type AffiliateLink struct {
	ID          string    `json:"id"`
	ASIN        string    `json:"asin"`
	Tag         string    `json:"tag"`
	OriginalURL string    `json:"originalUrl"`
	TrackingURL string    `json:"trackingUrl"`
	ShortCode   string    `json:"shortCode"` // random 6-char uppercase code
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	Revenue     float64   `json:"revenue"`
	CreatedAt   time.Time `json:"createdAt"`
	LastClickAt time.Time `json:"lastClickAt,omitempty"`
}

// ClickEvent records a single click on an affiliate link.
type ClickEvent struct {
	LinkID     string    `json:"linkId"`
	IP         string    `json:"ip"`
	UserAgent  string    `json:"userAgent"`
	Referrer   string    `json:"referrer"`
	Timestamp  time.Time `json:"timestamp"`
	Converted  bool      `json:"converted"`
	OrderValue float64   `json:"orderValue,omitempty"`
}

// AffiliateStats aggregates counters across all links.
type AffiliateStats struct {
	TotalClicks      int64            `json:"totalClicks"`
	TotalConversions int64            `json:"totalConversions"`
	TotalRevenue     float64          `json:"totalRevenue"`   // rounded to 2 decimals
	ConversionRate   float64          `json:"conversionRate"` // percent, 2 decimals, 0 if no clicks
	TopLinks         []*AffiliateLink `json:"topLinks"`       // top 10 by clicks desc
}
