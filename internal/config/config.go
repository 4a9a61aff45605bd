// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Session  SessionConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 127.0.0.1)
	Host string `env:"SERVER_HOST" default:"127.0.0.1"`

	// Port is the port to listen on (default: 8501)
	Port int `env:"SERVER_PORT" envAlt:"PORT" default:"8501"`

	// ReadTimeout is the maximum duration for reading the request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing the response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 15s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`

	// MaxFormSize caps the size of a submitted form in bytes (default: 1MB)
	MaxFormSize int64 `env:"SERVER_MAX_FORM_SIZE" default:"1048576"`
}

// RateLimitConfig holds per-IP rate limiting settings.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the limit per client IP (default: 120)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"120"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`

	// SecureCookies marks session and CSRF cookies Secure (default: false)
	SecureCookies bool `env:"SECURITY_SECURE_COOKIES" default:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// SessionConfig holds in-memory session settings.
type SessionConfig struct {
	// CookieName is the name of the session cookie (default: irm_session)
	CookieName string `env:"SESSION_COOKIE_NAME" default:"irm_session"`

	// IdleTimeout drops sessions (and their records) after inactivity (default: 12h)
	IdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" default:"12h"`

	// SweepInterval is how often idle sessions are checked (default: 10m)
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" default:"10m"`
}

// AppConfig holds form behaviour settings.
type AppConfig struct {
	// DefaultLanguage is the base label language: KO or EN (default: KO)
	DefaultLanguage string `env:"APP_DEFAULT_LANGUAGE" default:"KO"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + strconv.Itoa(c.Port)
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
