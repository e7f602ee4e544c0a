package scraper

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pinforge/pinforge/internal/domain"
	"github.com/pinforge/pinforge/internal/logger"
	"github.com/pinforge/pinforge/internal/utils"
)

// Rotating user agents to avoid blocks.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
}

// DefaultBaseURL is the site scraped in production.
const DefaultBaseURL = "https://www.amazon.com"

// Scraper fetches an Amazon product page and extracts a Product.
// Single request per call, bounded by the client timeout, no retry.
type Scraper struct {
	// BaseURL can be overridden in tests.
	BaseURL string

	client *http.Client
	logger logger.Logger
}

func New(timeout time.Duration, log logger.Logger) *Scraper {
	return &Scraper{
		BaseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  log,
	}
}

// Scrape resolves the ASIN from url, fetches the canonical product page
// and extracts a complete Product. When Amazon blocks the request
// (403/503) it degrades to a fixed demo record instead of failing.
func (s *Scraper) Scrape(ctx context.Context, url string) (*domain.Product, error) {
	asin, err := ExtractASIN(url)
	if err != nil {
		return nil, err
	}
	cleanURL := fmt.Sprintf("%s/dp/%s", s.BaseURL, asin)

	s.logger.Info("scraping product", logger.String("asin", asin))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cleanURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgents[rand.Intn(len(userAgents))])
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Cache-Control", "max-age=0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusServiceUnavailable {
		s.logger.Warn("amazon blocked request, returning demo data",
			logger.String("asin", asin),
			logger.Int("status", resp.StatusCode))
		return domain.DemoProduct(asin, cleanURL), nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch product: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product page: %w", err)
	}

	product := Extract(doc, asin, cleanURL)
	s.logger.Info("product extracted",
		logger.String("asin", asin),
		logger.String("title", product.Title),
		logger.Int("images", len(product.Images)))

	return product, nil
}
