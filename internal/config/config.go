package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Scraper
	ScrapeTimeout   time.Duration // outbound fetch timeout (default: 15s)
	ScrapeBurst     int           // rate-limit burst for /api/scrape per client IP
	ScrapePerMinute int           // rate-limit refill per client IP per minute

	// Language model (copy generation)
	OpenAIAPIKey  string // empty => /api/ai/generate returns an error
	OpenAIModel   string // ex: "gpt-4o-mini"
	OpenAIBaseURL string // optional override (ex: GitHub Models endpoint)

	// Pinterest
	PinterestBaseURL string        // ex: "https://api.pinterest.com/v5"
	PinterestToken   string        // server-side token for the due-pin publisher (optional)
	PublishInterval  time.Duration // interval for the due-pin publisher (default: 1m)
	BoardsFile       string        // optional boards.yaml overriding the demo board list
	PinterestTimeout time.Duration // outbound Pinterest call timeout (default: 10s)

	// Store: "memory" (default) or "redis"
	StoreBackend string

	// Redis (only read when StoreBackend == "redis")
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDT             time.Duration // dial timeout
	RedisRT             time.Duration // read timeout
	RedisWT             time.Duration // write timeout
	RedisPoolSize       int
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt
	RedisWarnThreshold  int           // warn after this many attempts

	AllowedHosts []string // optional, restrict access to specific Host headers
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("PINFORGE_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("PINFORGE_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("PINFORGE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("PINFORGE_PRETTY_LOG", true),

		// Scraper
		ScrapeTimeout:   mustDuration("PINFORGE_SCRAPE_TIMEOUT", 15*time.Second),
		ScrapeBurst:     getenvInt("PINFORGE_SCRAPE_BURST", 5),
		ScrapePerMinute: getenvInt("PINFORGE_SCRAPE_PER_MINUTE", 10),

		// Language model
		OpenAIAPIKey:  getenv("PINFORGE_OPENAI_API_KEY", ""),
		OpenAIModel:   getenv("PINFORGE_OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: getenv("PINFORGE_OPENAI_BASE_URL", ""),

		// Pinterest
		PinterestBaseURL: getenv("PINFORGE_PINTEREST_BASE_URL", "https://api.pinterest.com/v5"),
		PinterestToken:   getenv("PINFORGE_PINTEREST_TOKEN", ""),
		PublishInterval:  mustDuration("PINFORGE_PUBLISH_INTERVAL", time.Minute),
		BoardsFile:       getenv("PINFORGE_BOARDS_FILE", ""), // optional, empty = built-in demo boards
		PinterestTimeout: mustDuration("PINFORGE_PINTEREST_TIMEOUT", 10*time.Second),

		// Store
		StoreBackend: getenv("PINFORGE_STORE_BACKEND", "memory"),

		// Redis settings
		RedisAddr:           getenv("PINFORGE_REDIS_ADDR", "localhost:6379"),
		RedisUser:           getenv("PINFORGE_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("PINFORGE_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("PINFORGE_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("PINFORGE_ALLOWED_HOSTS", "")),
		TrustProxy:   mustBool("PINFORGE_TRUST_PROXY", false),
	}

	if cfg.StoreBackend != "memory" && cfg.StoreBackend != "redis" {
		panic(fmt.Sprintf("❌ FATAL: PINFORGE_STORE_BACKEND must be \"memory\" or \"redis\", got %q", cfg.StoreBackend))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfgCopy.OpenAIAPIKey != "" {
			cfgCopy.OpenAIAPIKey = "***REDACTED***"
		}
		if cfgCopy.PinterestToken != "" {
			cfgCopy.PinterestToken = "***REDACTED***"
		}
		if cfgCopy.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
