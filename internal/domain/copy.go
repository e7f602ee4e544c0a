package domain

// MarketingCopy is the Pinterest-optimized content produced by the
// language model for a Product. Missing fields are filled with the
// defaults below before the copy reaches the renderer.
type MarketingCopy struct {
	Title          string   `json:"title"`       // target ≤100 chars, not enforced
	Description    string   `json:"description"` // SEO description
	Hashtags       []string `json:"hashtags"`    // no leading '#'
	AltText        string   `json:"altText"`
	PinScore       int      `json:"pinScore"` // always within [60,100]
	SEOKeywords    []string `json:"seoKeywords"`
	CallToAction   string   `json:"callToAction"`
	BestTimeToPost string   `json:"bestTimeToPost"`
}

// Defaults applied when the model omits a field.
const (
	DefaultPinScore       = 75
	DefaultCallToAction   = "Shop Now →"
	DefaultBestTimeToPost = "Saturday 8PM EST"
)

// ClampPinScore forces a score into the [60,100] band the UI expects.
// A zero (absent) score becomes DefaultPinScore.
func ClampPinScore(score int) int {
	if score == 0 {
		score = DefaultPinScore
	}
	if score < 60 {
		return 60
	}
	if score > 100 {
		return 100
	}
	return score
}
