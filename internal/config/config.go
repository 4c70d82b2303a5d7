package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	// AuthJWKSURL enables bearer-token auth on /api/* when set
	AuthJWKSURL string
	// Live sessions
	Debounce     time.Duration // Quiet period after the last edit
	SessionTTL   time.Duration // Idle sessions are dropped after this
	MaxSessions  int
	SSEKeepAlive time.Duration
	// Rendering
	HighlightStyle string // chroma style name
	// Logging
	LogDir      string // Empty disables the log file
	LogMaxFiles int
	// Debug flags
	Debug bool // Enables debug-level logs and SSE event IDs
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    env,
		CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:3000"),
		AuthJWKSURL:    getEnv("AUTH_JWKS_URL", ""),
		Debounce:       time.Duration(getEnvInt("DEBOUNCE_MS", DefaultDebounceMS)) * time.Millisecond,
		SessionTTL:     getEnvDuration("SESSION_TTL", 30*time.Minute),
		MaxSessions:    getEnvInt("MAX_SESSIONS", DefaultMaxSessions),
		SSEKeepAlive:   getEnvDuration("SSE_KEEPALIVE", 10*time.Second),
		HighlightStyle: getEnv("HIGHLIGHT_STYLE", "catppuccin-mocha"),
		LogDir:         getEnv("LOG_DIR", ""),
		LogMaxFiles:    getEnvInt("LOG_MAX_FILES", 10),
		// Debug flags - default to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// AuthEnabled reports whether API requests must carry a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.AuthJWKSURL != ""
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt falls back to defaultValue when the variable is unset or not a
// positive integer.
func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

// getEnvDuration accepts Go duration syntax ("90s", "30m").
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
