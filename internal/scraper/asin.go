package scraper

import (
	"errors"
	"regexp"
)

// ErrUnrecognizedURL is returned when no ASIN pattern matches the URL.
// Terminal: callers surface it to the client, never retry.
var ErrUnrecognizedURL = errors.New("could not extract ASIN from URL, please use a valid Amazon product URL")

// Patterns tried in order; first match wins.
var asinPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/dp/([A-Z0-9]{10})`),
	regexp.MustCompile(`/gp/product/([A-Z0-9]{10})`),
	regexp.MustCompile(`/product/([A-Z0-9]{10})`),
	regexp.MustCompile(`asin=([A-Z0-9]{10})`),
}

// ExtractASIN pulls the 10-character catalog identifier out of an
// arbitrary Amazon product URL.
func ExtractASIN(url string) (string, error) {
	for _, pattern := range asinPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1], nil
		}
	}
	return "", ErrUnrecognizedURL
}
