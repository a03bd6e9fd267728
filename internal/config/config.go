package config

import (
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
	LogFile   string // optional, write logs to this file instead of stderr

	// Content
	ContentDir   string        // content root on disk (serve publishes it, browse reads it)
	ContentURL   string        // optional, browse fetches over HTTP from this base URL instead
	FetchTimeout time.Duration // per-request timeout for HTTP content fetches (0 = none)
	ProfileFile  string        // optional site profile YAML (empty = built-in profile)
	HistoryFile  string        // browse line history (empty = no history)

	// Redis (theme preferences). Empty address => in-memory store.
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	// Access restrictions
	AllowedCIDRS []string // optional, restrict probe endpoints to specific networks
	AllowedHosts []string // optional, Host headers allowed to change the theme (supports *.example.com)
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	// Theme endpoint rate limit (per client IP)
	ThemeRateBurst  int // bucket size
	ThemeRatePerMin int // refill rate

	// Background jobs
	ThemeIdleTTL    time.Duration // unused theme preferences expire after this long
	ThemeSweepEvery time.Duration // in-memory theme sweep interval
	RefreshInterval time.Duration // browse content refresh interval (0 = never)
}

// UseRedis reports whether theme preferences are kept in Redis.
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("FOLIO_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("FOLIO_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("FOLIO_LOG_LEVEL", "info"),
		PrettyLog: mustBool("FOLIO_PRETTY_LOG", true),
		LogFile:   getenv("FOLIO_LOG_FILE", ""),

		// Content
		ContentDir:   getenv("FOLIO_CONTENT_DIR", "."),
		ContentURL:   getenv("FOLIO_CONTENT_URL", ""),
		FetchTimeout: mustDuration("FOLIO_FETCH_TIMEOUT", 0),
		ProfileFile:  getenv("FOLIO_PROFILE_FILE", ""),
		HistoryFile:  getenv("FOLIO_HISTORY_FILE", ""),

		// Redis settings
		RedisAddr:             getenv("FOLIO_REDIS_ADDR", ""),
		RedisUser:             getenv("FOLIO_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("FOLIO_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("FOLIO_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("FOLIO_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedCIDRS: parseAllowedIPs(getenv("FOLIO_ALLOWED_CIDRS", "")),
		AllowedHosts: splitAndTrim(getenv("FOLIO_ALLOWED_HOSTS", "")),
		TrustProxy:   mustBool("FOLIO_TRUST_PROXY", false),

		ThemeRateBurst:  getenvInt("FOLIO_THEME_RATE_BURST", 10),
		ThemeRatePerMin: getenvInt("FOLIO_THEME_RATE_PER_MIN", 30),

		ThemeIdleTTL:    mustDuration("FOLIO_THEME_IDLE_TTL", 30*24*time.Hour),
		ThemeSweepEvery: mustDuration("FOLIO_THEME_SWEEP_INTERVAL", time.Hour),
		RefreshInterval: mustDuration("FOLIO_REFRESH_INTERVAL", 0),
	}

	// Validate Redis password configuration
	if cfg.UseRedis() && cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: FOLIO_REDIS_PASSWORD is required when FOLIO_REDIS_PASSWORD_REQUIRED=true")
	}
	if cfg.ThemeSweepEvery <= 0 {
		panic("❌ FATAL: FOLIO_THEME_SWEEP_INTERVAL must be positive")
	}
	if cfg.ThemeRateBurst <= 0 || cfg.ThemeRatePerMin <= 0 {
		panic("❌ FATAL: FOLIO_THEME_RATE_BURST and FOLIO_THEME_RATE_PER_MIN must be positive")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
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

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
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
