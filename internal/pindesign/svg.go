package pindesign

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pinforge/pinforge/internal/domain"
)

// Canvas dimensions are fixed: Pinterest's preferred 2:3 ratio.
const (
	CanvasWidth  = 600
	CanvasHeight = 900
)

// svgInput carries everything the SVG builder needs, precomputed.
type svgInput struct {
	Theme         domain.Theme
	ImageURL      string
	TitleLines    []string
	CTA           string
	Hashtags      []string
	Rating        float64
	ReviewDisplay string
	Price         string
}

// buildSVG composes the 600×900 vector pin, layered back to front:
// background, product image, gradient overlay, top accent bar, price
// badge, rating badge, title block, accent rule, hashtag strip, CTA
// pill, attribution caption.
func buildSVG(in svgInput) string {
	const lineHeight = 42
	titleY := float64(CanvasHeight) * 0.58

	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		CanvasWidth, CanvasHeight, CanvasWidth, CanvasHeight)

	// Gradients and image clip.
	fmt.Fprintf(&b, `
  <defs>
    <linearGradient id="overlay" x1="0" y1="0" x2="0" y2="1">
      <stop offset="0%%" stop-color="%[1]s" stop-opacity="0"/>
      <stop offset="45%%" stop-color="%[1]s" stop-opacity="0.3"/>
      <stop offset="100%%" stop-color="%[1]s" stop-opacity="0.97"/>
    </linearGradient>
    <linearGradient id="topBar" x1="0" y1="0" x2="1" y2="0">
      <stop offset="0%%" stop-color="%[2]s"/>
      <stop offset="100%%" stop-color="%[3]s"/>
    </linearGradient>
    <clipPath id="imgClip">
      <rect width="%[4]d" height="%[5]d" rx="16"/>
    </clipPath>
  </defs>`,
		in.Theme.Background, in.Theme.Accent, in.Theme.Secondary, CanvasWidth, CanvasHeight)

	// Background fill.
	fmt.Fprintf(&b, `
  <rect width="%d" height="%d" fill="%s" rx="16"/>`, CanvasWidth, CanvasHeight, in.Theme.Background)

	// Product image, cropped to the top 65% of the canvas.
	fmt.Fprintf(&b, `
  <image href="%s" x="0" y="0" width="%d" height="%d"
    preserveAspectRatio="xMidYMid slice" clip-path="url(#imgClip)"/>`,
		EscapeXML(in.ImageURL), CanvasWidth, imageHeight(CanvasHeight))

	// Gradient overlay and top accent bar.
	fmt.Fprintf(&b, `
  <rect width="%d" height="%d" fill="url(#overlay)" rx="16"/>
  <rect x="0" y="0" width="%d" height="6" fill="url(#topBar)" rx="3"/>`,
		CanvasWidth, CanvasHeight, CanvasWidth)

	// Optional price badge, top-right.
	if in.Price != "" {
		fmt.Fprintf(&b, `
  <rect x="%d" y="18" width="104" height="40" rx="20" fill="%s"/>
  <text x="%d" y="44" font-family="Georgia, serif" font-size="18" font-weight="700"
    fill="white" text-anchor="middle">%s</text>`,
			CanvasWidth-124, in.Theme.Accent, CanvasWidth-72, EscapeXML(in.Price))
	}

	// Optional rating badge, top-left.
	if in.Rating > 0 {
		label := formatRating(in.Rating)
		if in.ReviewDisplay != "" {
			label += " · " + in.ReviewDisplay
		}
		fmt.Fprintf(&b, `
  <rect x="18" y="18" width="120" height="34" rx="17" fill="rgba(0,0,0,0.55)"/>
  <text x="30" y="41" font-family="Georgia, serif" font-size="14" fill="#FFD700">%s</text>
  <text x="78" y="41" font-family="Georgia, serif" font-size="13" fill="white">%s</text>`,
			StarGlyphs(in.Rating), EscapeXML(label))
	}

	// Title lines.
	for i, line := range in.TitleLines {
		fmt.Fprintf(&b, `
  <text x="30" y="%d" font-family="Georgia, serif"
    font-size="26" font-weight="700" fill="%s">%s</text>`,
			int(titleY)+i*lineHeight, in.Theme.Text, EscapeXML(line))
	}

	// Accent underline rule.
	fmt.Fprintf(&b, `
  <rect x="30" y="%d" width="50" height="3" fill="%s" rx="2"/>`,
		int(titleY)+len(in.TitleLines)*lineHeight+10, in.Theme.Accent)

	// Hashtag strip: first 3 tags, stacked.
	tags := in.Hashtags
	if len(tags) > 3 {
		tags = tags[:3]
	}
	for i, tag := range tags {
		fmt.Fprintf(&b, `
  <text x="30" y="%d" font-family="Georgia, serif" font-size="16" fill="%s" opacity="0.85">#%s</text>`,
			int(titleY)+len(in.TitleLines)*lineHeight+50+i*28, in.Theme.Secondary, EscapeXML(tag))
	}

	// Full-width CTA pill near the bottom.
	fmt.Fprintf(&b, `
  <rect x="30" y="%d" width="%d" height="50" rx="25" fill="%s"/>
  <text x="%d" y="%d" font-family="Georgia, serif" font-size="18" font-weight="700"
    fill="white" text-anchor="middle">%s</text>`,
		CanvasHeight-88, CanvasWidth-60, in.Theme.Accent,
		CanvasWidth/2, CanvasHeight-57, EscapeXML(in.CTA))

	// Attribution caption.
	fmt.Fprintf(&b, `
  <text x="%d" y="%d" font-family="Georgia, serif" font-size="11"
    fill="%s" text-anchor="middle" opacity="0.35">via Amazon</text>
</svg>`,
		CanvasWidth/2, CanvasHeight-18, in.Theme.Text)

	return b.String()
}

// imageHeight is the cropped image band: 65% of the canvas, rounded.
func imageHeight(h int) int {
	return int(float64(h)*0.65 + 0.5)
}

// formatRating renders 4.5 as "4.5" and 4.0 as "4".
func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
