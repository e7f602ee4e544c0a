package config

import (
	"testing"
	"time"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		set      bool
		def      string
		expected string
	}{
		{
			name:     "variable set",
			key:      "TEST_GETENV",
			value:    "custom",
			set:      true,
			def:      "fallback",
			expected: "custom",
		},
		{
			name:     "variable not set",
			key:      "TEST_GETENV_MISSING",
			def:      "fallback",
			expected: "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv(tt.key, tt.value)
			}
			if got := getenv(tt.key, tt.def); got != tt.expected {
				t.Errorf("getenv() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		def      int
		expected int
	}{
		{name: "valid integer", value: "42", set: true, def: 7, expected: 42},
		{name: "invalid integer falls back", value: "not_a_number", set: true, def: 7, expected: 7},
		{name: "not set falls back", def: 7, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_GETENV_INT", tt.value)
			}
			if got := getenvInt("TEST_GETENV_INT", tt.def); got != tt.expected {
				t.Errorf("getenvInt() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		def      bool
		expected bool
	}{
		{name: "true value", value: "true", set: true, def: false, expected: true},
		{name: "false value", value: "false", set: true, def: true, expected: false},
		{name: "invalid falls back", value: "maybe", set: true, def: true, expected: true},
		{name: "not set falls back", def: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_MUST_BOOL", tt.value)
			}
			if got := mustBool("TEST_MUST_BOOL", tt.def); got != tt.expected {
				t.Errorf("mustBool() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		def      time.Duration
		expected time.Duration
	}{
		{name: "valid duration", value: "30s", set: true, def: time.Minute, expected: 30 * time.Second},
		{name: "invalid falls back", value: "soon", set: true, def: time.Minute, expected: time.Minute},
		{name: "not set falls back", def: time.Minute, expected: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_MUST_DURATION", tt.value)
			}
			if got := mustDuration("TEST_MUST_DURATION", tt.def); got != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single", input: "example.com", expected: []string{"example.com"}},
		{name: "multiple with spaces", input: "a.com, b.com ,c.com", expected: []string{"a.com", "b.com", "c.com"}},
		{name: "quoted entries", input: `"a.com",'b.com'`, expected: []string{"a.com", "b.com"}},
		{name: "empty entries dropped", input: "a.com,,b.com", expected: []string{"a.com", "b.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitAndTrim(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("splitAndTrim() = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("splitAndTrim()[%d] = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want :8080", cfg.ListenPort)
	}
	if cfg.ScrapeTimeout != 15*time.Second {
		t.Errorf("ScrapeTimeout = %v, want 15s", cfg.ScrapeTimeout)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q", cfg.OpenAIModel)
	}
	if cfg.StoreBackend != "memory" {
		t.Errorf("StoreBackend = %q, want memory", cfg.StoreBackend)
	}
	if cfg.PublishInterval != time.Minute {
		t.Errorf("PublishInterval = %v, want 1m", cfg.PublishInterval)
	}
}

func TestLoadRejectsUnknownStoreBackend(t *testing.T) {
	t.Setenv("PINFORGE_STORE_BACKEND", "postgres")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Load() should panic on unknown store backend")
		}
	}()
	Load()
}
