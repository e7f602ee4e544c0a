package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pinforge/pinforge/internal/domain"
)

// A fieldStrategy tries one way of reading a field from the document.
// It returns "" when its selector target is absent, letting the next
// strategy in the cascade run. Keeping each attempt independent makes
// the fallback policy declarative and testable on its own.
type fieldStrategy func(doc *goquery.Document) string

func text(selector string) fieldStrategy {
	return func(doc *goquery.Document) string {
		return strings.TrimSpace(doc.Find(selector).Text())
	}
}

func firstText(selector string) fieldStrategy {
	return func(doc *goquery.Document) string {
		return strings.TrimSpace(doc.Find(selector).First().Text())
	}
}

// cascade runs strategies in priority order and keeps the first
// non-empty result, or the fallback when every strategy misses.
func cascade(doc *goquery.Document, strategies []fieldStrategy, fallback string) string {
	for _, try := range strategies {
		if v := try(doc); v != "" {
			return v
		}
	}
	return fallback
}

var (
	titleStrategies = []fieldStrategy{
		text("#productTitle"),
		text("h1.a-size-large"),
	}

	// Offscreen accessible price first, then the legacy layout ids,
	// then the visible whole-price span.
	priceStrategies = []fieldStrategy{
		firstText(".a-price .a-offscreen"),
		text("#priceblock_ourprice"),
		text("#priceblock_dealprice"),
		firstText(".a-price-whole"),
	}

	ratingStrategies = []fieldStrategy{
		firstText("#acrPopover .a-size-base.a-color-base"),
		text(`[data-hook="rating-out-of-text"]`),
		func(doc *goquery.Document) string {
			alt := doc.Find(".a-icon-alt").First().Text()
			return strings.TrimSpace(strings.Replace(alt, " out of 5 stars", "", 1))
		},
	}

	reviewCountStrategies = []fieldStrategy{
		text("#acrCustomerReviewText"),
		text(`[data-hook="total-review-count"]`),
	}

	descriptionStrategies = []fieldStrategy{
		text("#productDescription p"),
		text(`[data-hook="product-description"]`),
	}
)

// Extract builds a complete Product from raw page markup. It never
// fails on missing fields: every field has a fallback chain ending in
// a documented placeholder.
func Extract(doc *goquery.Document, asin, url string) *domain.Product {
	rating := cascade(doc, ratingStrategies, "0")
	features := extractFeatures(doc)

	description := cascade(doc, descriptionStrategies, "")
	if description == "" {
		// Last resort: stitch the first two feature bullets together.
		n := min(2, len(features))
		description = strings.Join(features[:n], ". ")
	}

	images := extractImages(doc)
	if len(images) == 0 {
		images = []string{domain.PlaceholderImage}
	}

	category := strings.TrimSpace(doc.Find("#wayfinding-breadcrumbs_feature_div a").Last().Text())
	if category == "" {
		category = "General"
	}

	return &domain.Product{
		ASIN:        asin,
		Title:       cascade(doc, titleStrategies, "Product Title Not Found"),
		Price:       cascade(doc, priceStrategies, "Price unavailable"),
		Rating:      leadingToken(rating),
		ReviewCount: cascade(doc, reviewCountStrategies, "0 reviews"),
		Images:      images,
		Badge:       extractBadge(doc),
		Description: description,
		Features:    features,
		Category:    category,
		URL:         url,
	}
}

// extractImages collects image URLs from the high-resolution lazy-load
// attribute first, then visible src/data-src, de-duplicated preserving
// first-seen order.
func extractImages(doc *goquery.Document) []string {
	var images []string
	seen := make(map[string]bool)

	add := func(src string) {
		if src != "" && !seen[src] {
			seen[src] = true
			images = append(images, src)
		}
	}

	doc.Find("img[data-old-hires]").Each(func(_ int, s *goquery.Selection) {
		add(s.AttrOr("data-old-hires", ""))
	})
	doc.Find("#imgTagWrapperId img, #landingImage").Each(func(_ int, s *goquery.Selection) {
		src := s.AttrOr("src", "")
		if src == "" {
			src = s.AttrOr("data-src", "")
		}
		if strings.HasPrefix(src, "http") {
			add(src)
		}
	})

	return images
}

// extractFeatures keeps bullet entries longer than 5 characters, capped at 5.
func extractFeatures(doc *goquery.Document) []string {
	var features []string
	doc.Find("#feature-bullets li span.a-list-item").Each(func(_ int, s *goquery.Selection) {
		if len(features) >= 5 {
			return
		}
		t := strings.TrimSpace(s.Text())
		if len(t) > 5 {
			features = append(features, t)
		}
	})
	return features
}

// extractBadge assigns at most one badge; best-seller wins over sale.
func extractBadge(doc *goquery.Document) string {
	if doc.Find("#best-seller-rank").Length() > 0 {
		return "Best Seller"
	}
	if doc.Find("#saleFlag").Length() > 0 {
		return "On Sale"
	}
	return ""
}

// leadingToken discards everything after the first space, so
// "4.5 out of 5" becomes "4.5".
func leadingToken(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
