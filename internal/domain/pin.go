package domain

import "time"

// PinDesign is the rendered pin. Ephemeral: built per request, never
// persisted.
type PinDesign struct {
	// SVGDataURL is a self-contained base64 data URL of the vector pin.
	SVGDataURL string `json:"svgDataUrl"`

	// HTMLPreview is a half-scale (300×450) preview fragment. Purely
	// informational; not required to pixel-match the SVG.
	HTMLPreview string `json:"htmlPreview"`

	Width  int       `json:"width"`  // always 600
	Height int       `json:"height"` // always 900
	Theme  ThemeName `json:"theme"`
}

// PinStatus tracks a scheduled pin through its lifecycle.
type PinStatus string

const (
	PinPending   PinStatus = "pending"
	PinPublished PinStatus = "published"
	PinFailed    PinStatus = "failed"
)

// ScheduledPin is a pin queued for (or already sent to) Pinterest.
type ScheduledPin struct {
	ID string `json:"id"`

	// PinID is the Pinterest-side id, set once published.
	PinID string `json:"pinId,omitempty"`

	BoardID      string    `json:"boardId"`
	BoardName    string    `json:"boardName"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	AffiliateURL string    `json:"affiliateUrl"`
	ScheduledAt  time.Time `json:"scheduledAt"`
	Status       PinStatus `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Board is a Pinterest board the user can pin to.
type Board struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
