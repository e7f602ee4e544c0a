package pindesign

import (
	"strings"
	"testing"
)

func TestWrapTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "short title single line",
			text: "Cozy blanket",
			want: []string{"Cozy blanket"},
		},
		{
			name: "wraps on word boundaries",
			text: "Wireless noise cancelling headphones with long battery",
			want: []string{"Wireless noise cancelling", "headphones with long battery"},
		},
		{
			name: "single long word hard truncated",
			text: strings.Repeat("a", 40),
			want: []string{strings.Repeat("a", 32)},
		},
		{
			name: "empty string yields no lines",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapTitle(tt.text, MaxLineChars)
			if len(got) != len(tt.want) {
				t.Fatalf("WrapTitle(%q) = %q, want %q", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWrapTitleBounds(t *testing.T) {
	// A worst-case title can never exceed 3 lines of 32 chars.
	long := strings.Repeat("word ", 40) + strings.Repeat("x", 50)
	lines := WrapTitle(long, MaxLineChars)

	if len(lines) > MaxTitleLines {
		t.Fatalf("got %d lines, max is %d", len(lines), MaxTitleLines)
	}
	for i, line := range lines {
		if len(line) > MaxLineChars {
			t.Errorf("line %d is %d chars: %q", i, len(line), line)
		}
	}
}

func TestCompactReviewCount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12,456 ratings", "12.5k"},
		{"850", "850"},
		{"", ""},
		{"(2,916)(2,916)", "2.9k"},
		{"no digits here", ""},
		{"1000", "1.0k"},
		{"999", "999"},
	}
	for _, tt := range tests {
		if got := CompactReviewCount(tt.in); got != tt.want {
			t.Errorf("CompactReviewCount(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStarGlyphs(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{4.6, "★★★★★"},
		{4.4, "★★★★☆"},
		{0, "☆☆☆☆☆"},
		{5, "★★★★★"},
		{9, "★★★★★"},
	}
	for _, tt := range tests {
		if got := StarGlyphs(tt.rating); got != tt.want {
			t.Errorf("StarGlyphs(%v) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestEscapeXML(t *testing.T) {
	in := `<script>&"'`
	want := "&lt;script&gt;&amp;&quot;&apos;"
	if got := EscapeXML(in); got != want {
		t.Errorf("EscapeXML(%q) = %q, want %q", in, got, want)
	}
}
