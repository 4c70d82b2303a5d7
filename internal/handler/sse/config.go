package sse

import "time"

// Config holds configuration for SSE connections
type Config struct {
	// KeepAliveInterval is how often to send keep-alive comments so proxies
	// do not close an idle stream. 10-15 seconds suits most proxies.
	KeepAliveInterval time.Duration

	// EventIDs adds an id: line (the snapshot sequence number) to every event
	EventIDs bool
}

// DefaultConfig returns the default SSE configuration
func DefaultConfig() *Config {
	return &Config{
		KeepAliveInterval: 10 * time.Second,
	}
}
