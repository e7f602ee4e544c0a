package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pinforge/pinforge/internal/affiliate"
	"github.com/pinforge/pinforge/internal/copygen"
	"github.com/pinforge/pinforge/internal/logger"
	"github.com/pinforge/pinforge/internal/pindesign"
	"github.com/pinforge/pinforge/internal/pinterest"
	"github.com/pinforge/pinforge/internal/scraper"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	TrustProxy bool // true if running behind a trusted reverse proxy

	Scraper   *scraper.Scraper
	Generator *copygen.Generator
	Designer  *pindesign.Designer
	Pinterest *pinterest.Service
	Affiliate *affiliate.Ledger

	RedisClient *redis.Client // nil when the memory store backend is active

	ScrapeBurst     int // rate limit burst for the scrape endpoint
	ScrapePerMinute int // rate limit refill for the scrape endpoint

	PublishTrigger chan struct{} // manual publish trigger (nil when scheduler disabled)
}
