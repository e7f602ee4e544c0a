package pindesign

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/pinforge/pinforge/internal/domain"
	"github.com/pinforge/pinforge/internal/logger"
)

// Designer renders a Product plus MarketingCopy into a PinDesign.
// Rendering is a pure function of its inputs; no network calls.
type Designer struct {
	logger logger.Logger
}

func NewDesigner(log logger.Logger) *Designer {
	return &Designer{logger: log}
}

// Render builds the vector pin and its HTML preview. Any internal
// failure is re-signalled as a single "pin design failed" error; a
// partial design is never returned.
func (d *Designer) Render(product *domain.Product, content *domain.MarketingCopy, themeName string) (design *domain.PinDesign, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("pin rendering panicked", logger.String("cause", fmt.Sprint(r)))
			err = fmt.Errorf("pin design failed: %v", r)
			design = nil
		}
	}()

	if product == nil || content == nil {
		return nil, fmt.Errorf("pin design failed: product and content are required")
	}

	name, theme := domain.ResolveTheme(themeName, product.Category)

	imageURL := domain.PlaceholderImage
	if len(product.Images) > 0 {
		imageURL = product.Images[0]
	}

	title := content.Title
	if title == "" {
		title = product.Title
	}
	if title == "" {
		title = "Check this out!"
	}

	cta := content.CallToAction
	if cta == "" {
		cta = domain.DefaultCallToAction
	}

	rating, _ := strconv.ParseFloat(product.Rating, 64)
	if rating < 0 {
		rating = 0
	}

	svg := buildSVG(svgInput{
		Theme:         theme,
		ImageURL:      imageURL,
		TitleLines:    WrapTitle(title, MaxLineChars),
		CTA:           cta,
		Hashtags:      content.Hashtags,
		Rating:        rating,
		ReviewDisplay: CompactReviewCount(product.ReviewCount),
		Price:         product.Price,
	})

	d.logger.Debug("pin rendered",
		logger.String("theme", string(name)),
		logger.Int("svg_bytes", len(svg)))

	return &domain.PinDesign{
		SVGDataURL:  "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg)),
		HTMLPreview: buildHTMLPreview(theme, imageURL, title, cta, product.Price, content.Hashtags),
		Width:       CanvasWidth,
		Height:      CanvasHeight,
		Theme:       name,
	}, nil
}
