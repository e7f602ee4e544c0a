package copygen

import (
	"fmt"
	"strings"

	"github.com/pinforge/pinforge/internal/domain"
)

const systemPrompt = "You are a Pinterest marketing expert. Always respond with valid JSON only, no markdown."

// BuildPrompt assembles the user message for copy generation. The
// model is asked for a bare JSON object matching the MarketingCopy
// shape.
func BuildPrompt(product *domain.Product) string {
	description := product.Description
	if len(description) > 300 {
		description = description[:300]
	}

	return fmt.Sprintf(`You are a Pinterest marketing expert and SEO specialist. Generate highly optimized Pinterest content for this Amazon product.

PRODUCT DATA:
- Title: %s
- Price: %s
- Rating: %s/5 stars
- Reviews: %s
- Category: %s
- Key Features: %s
- Description: %s

Generate Pinterest content optimized for maximum engagement, saves, and clicks. Return ONLY valid JSON (no markdown, no code blocks):

{
  "title": "Pinterest title under 100 chars - punchy, curiosity-driven, includes price or rating",
  "description": "SEO description 150-200 chars - conversational, benefit-focused, ends with CTA",
  "hashtags": ["array", "of", "15", "trending", "hashtags", "without", "the", "hash", "symbol"],
  "altText": "Image alt text for accessibility and SEO, 125 chars max",
  "pinScore": <number 60-100 predicting viral potential>,
  "seoKeywords": ["5", "primary", "seo", "keywords"],
  "callToAction": "Short punchy CTA under 30 chars",
  "bestTimeToPost": "Best day and time to post e.g. Saturday 8PM EST"
}`,
		product.Title,
		product.Price,
		product.Rating,
		product.ReviewCount,
		product.Category,
		strings.Join(product.Features, ", "),
		description,
	)
}
