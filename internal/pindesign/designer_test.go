package pindesign

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/pinforge/pinforge/internal/domain"
	"github.com/pinforge/pinforge/internal/logger"
)

func testDesigner() *Designer {
	return NewDesigner(logger.New("error", false))
}

func decodeSVG(t *testing.T, design *domain.PinDesign) string {
	t.Helper()
	const prefix = "data:image/svg+xml;base64,"
	if !strings.HasPrefix(design.SVGDataURL, prefix) {
		t.Fatalf("SVGDataURL missing data-url prefix: %q", design.SVGDataURL[:40])
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(design.SVGDataURL, prefix))
	if err != nil {
		t.Fatalf("SVG payload is not valid base64: %v", err)
	}
	return string(raw)
}

func designProduct() *domain.Product {
	return &domain.Product{
		ASIN:        "B08N5WRWNW",
		Title:       "Stainless Steel Kitchen Knife Set",
		Price:       "$49.99",
		Rating:      "4.5",
		ReviewCount: "12,456 ratings",
		Images:      []string{"https://img/knife.jpg"},
		Category:    "Kitchen Gadgets",
	}
}

func designContent() *domain.MarketingCopy {
	return &domain.MarketingCopy{
		Title:        "The Knife Set Every Home Chef Needs",
		Hashtags:     []string{"kitchen", "chef", "homecooking", "extra"},
		CallToAction: "Shop Now →",
		PinScore:     80,
	}
}

func TestRenderBasics(t *testing.T) {
	design, err := testDesigner().Render(designProduct(), designContent(), "")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if design.Width != 600 || design.Height != 900 {
		t.Errorf("canvas = %dx%d, want 600x900", design.Width, design.Height)
	}
	// Kitchen category resolves to warm without an explicit theme.
	if design.Theme != domain.ThemeWarm {
		t.Errorf("Theme = %q, want warm for kitchen category", design.Theme)
	}

	svg := decodeSVG(t, design)
	if !strings.Contains(svg, "The Knife Set Every Home Chef") {
		t.Error("SVG should contain the wrapped title")
	}
	if !strings.Contains(svg, "$49.99") {
		t.Error("SVG should contain the price badge")
	}
	if !strings.Contains(svg, "12.5k") {
		t.Error("SVG should contain the compacted review count")
	}
	if !strings.Contains(svg, "★★★★★") {
		t.Error("SVG should contain the star strip (4.5 rounds to 5)")
	}
	// Only the first 3 hashtags are rendered.
	if !strings.Contains(svg, "#homecooking") || strings.Contains(svg, "#extra") {
		t.Error("SVG should render exactly the first 3 hashtags")
	}
	if design.HTMLPreview == "" || !strings.Contains(design.HTMLPreview, "300px") {
		t.Error("HTML preview should be the half-scale fragment")
	}
}

func TestRenderImageBandIsRounded65Percent(t *testing.T) {
	if got := imageHeight(CanvasHeight); got != 585 {
		t.Fatalf("imageHeight(%d) = %d, want 585", CanvasHeight, got)
	}

	design, err := testDesigner().Render(designProduct(), designContent(), "")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(decodeSVG(t, design), `height="585"`) {
		t.Error("SVG image element should crop to a 585px band")
	}
}

func TestRenderExplicitThemeWins(t *testing.T) {
	design, err := testDesigner().Render(designProduct(), designContent(), "fresh")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if design.Theme != domain.ThemeFresh {
		t.Errorf("Theme = %q, want explicit fresh", design.Theme)
	}
}

func TestRenderInvalidThemeFallsBack(t *testing.T) {
	design, err := testDesigner().Render(designProduct(), designContent(), "neon")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if design.Theme != domain.ThemeWarm {
		t.Errorf("Theme = %q, want category fallback, not an error", design.Theme)
	}
}

func TestRenderEscapesReservedCharacters(t *testing.T) {
	content := designContent()
	content.Title = `<script>&"'`

	design, err := testDesigner().Render(designProduct(), content, "")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	svg := decodeSVG(t, design)
	if strings.Contains(svg, "<script>") {
		t.Error("raw markup leaked into the SVG")
	}
	if !strings.Contains(svg, "&lt;script&gt;&amp;&quot;&apos;") {
		t.Error("reserved characters should be entity-escaped")
	}
}

func TestRenderZeroRatingOmitsBadge(t *testing.T) {
	product := designProduct()
	product.Rating = "0"

	design, err := testDesigner().Render(product, designContent(), "")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(decodeSVG(t, design), "☆") {
		t.Error("rating badge should be omitted when rating is 0")
	}
}

func TestRenderMissingInputsFail(t *testing.T) {
	if _, err := testDesigner().Render(nil, designContent(), ""); err == nil ||
		!strings.Contains(err.Error(), "pin design failed") {
		t.Fatalf("Render(nil product) err = %v, want pin design failed", err)
	}
	if _, err := testDesigner().Render(designProduct(), nil, ""); err == nil ||
		!strings.Contains(err.Error(), "pin design failed") {
		t.Fatalf("Render(nil content) err = %v, want pin design failed", err)
	}
}

func TestRenderNoImagesUsesPlaceholder(t *testing.T) {
	product := designProduct()
	product.Images = nil

	design, err := testDesigner().Render(product, designContent(), "")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(decodeSVG(t, design), "unsplash.com") {
		t.Error("placeholder image should be used when the product has none")
	}
}
