package domain

// Product is the canonical record extracted from an Amazon product page.
//
// It is NOT tied to any particular markup version: the scraper merges a
// cascade of selector fallbacks into this structure, so every field is
// guaranteed to be populated (possibly with a documented placeholder).
//
// A Product is immutable once built.
type Product struct {
	// ASIN is the 10-character alphanumeric catalog identifier.
	ASIN string `json:"asin"`

	// Title is never empty; falls back to "Product Title Not Found".
	Title string `json:"title"`

	// Price is a display string with the currency symbol retained
	// (never parsed to a number). Falls back to "Price unavailable".
	Price string `json:"price"`

	// Rating is the leading numeric token of the rating text ("4.5").
	Rating string `json:"rating"`

	// ReviewCount is free text and may contain duplicated substrings
	// from the source markup. Consumers must parse defensively.
	ReviewCount string `json:"reviewCount"`

	// Images is an ordered list of absolute URLs. Never empty: a fixed
	// placeholder is substituted when the page yields nothing.
	Images []string `json:"images"`

	// Badge is "Best Seller", "On Sale", or empty.
	Badge string `json:"badge,omitempty"`

	Description string `json:"description"`

	// Features holds at most 5 bullet points, each longer than 5 chars.
	Features []string `json:"features"`

	// Category is the last breadcrumb text, or "General".
	Category string `json:"category"`

	// URL is the canonical product URL the record was scraped from.
	URL string `json:"url"`
}

// PlaceholderImage is substituted when a page yields no usable images.
const PlaceholderImage = "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=600"

// DemoProduct returns the fixed record served when the source site
// blocks scraping (HTTP 403/503). The title carries "Demo Mode" so the
// record is clearly distinguishable from real data.
func DemoProduct(asin, url string) *Product {
	return &Product{
		ASIN:        asin,
		Title:       "Premium Product - Demo Mode (Amazon blocked direct scraping)",
		Price:       "$49.99",
		Rating:      "4.5",
		ReviewCount: "12,456 ratings",
		Images:      []string{"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=600&h=600&fit=crop"},
		Badge:       "Best Seller",
		Description: "This is a premium quality product loved by thousands of customers.",
		Features:    []string{"High quality materials", "Easy to use", "Great value", "Fast shipping"},
		Category:    "General",
		URL:         url,
	}
}
