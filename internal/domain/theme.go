package domain

import "strings"

// ThemeName is the closed set of pin color schemes. Arbitrary strings
// never reach the palette table: resolution always lands on one of the
// four known names.
type ThemeName string

const (
	ThemeBold    ThemeName = "bold"
	ThemeElegant ThemeName = "elegant"
	ThemeFresh   ThemeName = "fresh"
	ThemeWarm    ThemeName = "warm"
)

// Theme is a 4-color palette used by the pin renderer.
type Theme struct {
	Background string
	Accent     string
	Text       string
	Secondary  string
}

var themes = map[ThemeName]Theme{
	ThemeBold:    {Background: "#1a0a2e", Accent: "#e60023", Text: "#ffffff", Secondary: "#ff6b9d"},
	ThemeElegant: {Background: "#f8f4ef", Accent: "#2d1b4e", Text: "#1a1a1a", Secondary: "#8b5cf6"},
	ThemeFresh:   {Background: "#0f2027", Accent: "#00d2ff", Text: "#ffffff", Secondary: "#7ec8e3"},
	ThemeWarm:    {Background: "#2d1b00", Accent: "#ff9900", Text: "#fff8f0", Secondary: "#ffcc44"},
}

// ThemeNames lists the valid theme names in display order.
func ThemeNames() []ThemeName {
	return []ThemeName{ThemeBold, ThemeElegant, ThemeFresh, ThemeWarm}
}

// ResolveTheme picks the palette for a pin. A known explicit name wins;
// anything else (including the empty string) falls through to the
// category classifier. Exactly one theme is always returned.
func ResolveTheme(explicit, category string) (ThemeName, Theme) {
	if name := ThemeName(explicit); explicit != "" {
		if theme, ok := themes[name]; ok {
			return name, theme
		}
	}
	name := classifyCategory(category)
	return name, themes[name]
}

// classifyCategory maps a free-text product category onto a theme via
// case-insensitive substring matching. Unrecognized categories get the
// bold default.
func classifyCategory(category string) ThemeName {
	cat := strings.ToLower(category)
	switch {
	case containsAny(cat, "electronics", "tech", "computer"):
		return ThemeFresh
	case containsAny(cat, "fashion", "clothing", "apparel"):
		return ThemeElegant
	case containsAny(cat, "home", "kitchen", "garden"):
		return ThemeWarm
	default:
		return ThemeBold
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
