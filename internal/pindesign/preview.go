package pindesign

import (
	"fmt"
	"strings"

	"github.com/pinforge/pinforge/internal/domain"
)

// buildHTMLPreview renders a 300×450 (half scale) HTML fragment
// mirroring the pin's visual hierarchy. Informational only; it is not
// required to pixel-match the SVG.
func buildHTMLPreview(theme domain.Theme, imageURL, title, cta string, price string, hashtags []string) string {
	if len(title) > 80 {
		title = title[:80]
	}
	n := len(hashtags)
	if n > 3 {
		n = 3
	}
	tags := make([]string, 0, n)
	for _, h := range hashtags[:n] {
		tags = append(tags, "#"+h)
	}

	return fmt.Sprintf(`<div style="width:300px;height:450px;border-radius:12px;overflow:hidden;position:relative;font-family:Georgia,serif;background:%s">
  <img src="%s" style="width:100%%;height:60%%;object-fit:cover;display:block"/>
  <div style="position:absolute;top:0;left:0;right:0;height:5px;background:linear-gradient(90deg,%s,%s)"></div>
  <div style="position:absolute;top:10px;right:10px;background:%s;color:white;padding:3px 10px;border-radius:14px;font-size:13px;font-weight:700">%s</div>
  <div style="padding:14px">
    <div style="color:%s;font-size:14px;font-weight:700;line-height:1.4;margin-bottom:6px">%s</div>
    <div style="color:%s;font-size:11px;margin-bottom:10px">%s</div>
    <div style="background:%s;color:white;text-align:center;padding:8px;border-radius:18px;font-size:13px;font-weight:700">%s</div>
  </div>
</div>`,
		theme.Background,
		EscapeXML(imageURL),
		theme.Accent, theme.Secondary,
		theme.Accent, EscapeXML(price),
		theme.Text, EscapeXML(title),
		theme.Secondary, EscapeXML(strings.Join(tags, " ")),
		theme.Accent, EscapeXML(cta),
	)
}
