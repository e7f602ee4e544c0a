package pindesign

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxTitleLines and MaxLineChars bound the title block on the pin.
const (
	MaxTitleLines = 3
	MaxLineChars  = 32
)

// WrapTitle greedily word-wraps text into at most MaxTitleLines lines
// of at most maxChars characters. A single word longer than maxChars is
// hard-truncated; words that do not fit in three lines are dropped
// without an ellipsis (historical behavior, kept as-is).
func WrapTitle(text string, maxChars int) []string {
	words := strings.Split(text, " ")
	var lines []string
	current := ""

	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if len(candidate) <= maxChars {
			current = candidate
		} else {
			if current != "" {
				lines = append(lines, current)
			}
			if len(word) > maxChars {
				word = word[:maxChars]
			}
			current = word
		}
		if len(lines) >= MaxTitleLines {
			break
		}
	}
	if current != "" && len(lines) < MaxTitleLines {
		lines = append(lines, current)
	}
	if len(lines) > MaxTitleLines {
		lines = lines[:MaxTitleLines]
	}
	return lines
}

var leadingNumber = regexp.MustCompile(`[\d,]+`)

// CompactReviewCount extracts the leading numeric run from a free-text
// review string ("12,456 ratings", or duplicated markup like
// "(2,916)(2,916)") and formats it compactly: ≥1000 becomes "12.5k",
// smaller counts stay plain. Unparseable input yields "".
func CompactReviewCount(count string) string {
	m := leadingNumber.FindString(count)
	if m == "" {
		return ""
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return ""
	}
	if n >= 1000 {
		return strconv.FormatFloat(float64(n)/1000, 'f', 1, 64) + "k"
	}
	return strconv.Itoa(n)
}

// StarGlyphs renders a 5-glyph star strip for a rating: the rating is
// rounded to the nearest integer and clamped to [0,5].
func StarGlyphs(rating float64) string {
	n := int(rating + 0.5)
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML replaces the five reserved markup characters so
// user-supplied text cannot break the SVG document.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
