package api

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/nodescope/nodescope/pkg/defaults"
)

// Config holds the HTTP server configuration.
type Config struct {
	// Server identity
	Name    string
	Version string

	Address string
	Port    int

	// Rate limiting
	RateLimit      rate.Limit
	RateLimitBurst int

	// Timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns sensible defaults. The listener binds loopback
// only; the report describes one machine and is served to that machine.
func DefaultConfig() *Config {
	return &Config{
		Name:            "nodescoped",
		Version:         "dev",
		Address:         "127.0.0.1",
		Port:            9100,
		RateLimit:       100,
		RateLimitBurst:  200,
		ReadTimeout:     defaults.ServerReadTimeout,
		WriteTimeout:    defaults.ServerWriteTimeout,
		IdleTimeout:     defaults.ServerIdleTimeout,
		ShutdownTimeout: defaults.ServerShutdownTimeout,
	}
}
