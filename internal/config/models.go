package config

import (
	"fmt"
	"net/url"
	"time"
)

// CurrentVersion is the only file format version understood by Load
const CurrentVersion = 1

// Defaults
const (
	DefaultServerURL            = "http://localhost:5000"
	DefaultTimeout              = 10 * time.Second
	DefaultNotificationLifetime = 3 * time.Second
	DefaultLogLevel             = "off"
)

// Generated password length bounds accepted by the scoring service
const (
	MinGenerateLength = 8
	MaxGenerateLength = 32
)

// Environment variables read by ApplyEnv
const (
	EnvServerURL = "PWCHECK_SERVER_URL"
	EnvLogLevel  = "PWCHECK_LOG_LEVEL"
)

// Config represents the entire preferences file.
type Config struct {
	Version              int                `yaml:"version"`
	ServerURL            string             `yaml:"server_url"`
	Timeout              time.Duration      `yaml:"timeout"`
	NotificationLifetime time.Duration      `yaml:"notification_lifetime"`
	GenerateLength       int                `yaml:"generate_length,omitempty"` // 0 lets the service decide
	LogLevel             string             `yaml:"log_level"`
	MaskInput            bool               `yaml:"mask_input"`
	Servers              map[string]*Server `yaml:"servers,omitempty"` // Keyed by mDNS instance name
}

// Server is a scoring service seen on the local network.
type Server struct {
	URL      string    `yaml:"url"`
	Version  string    `yaml:"version,omitempty"`
	LastSeen time.Time `yaml:"last_seen,omitempty"`
}

// Default returns a Config holding the built-in defaults.
func Default() *Config {
	return &Config{
		Version:              CurrentVersion,
		ServerURL:            DefaultServerURL,
		Timeout:              DefaultTimeout,
		NotificationLifetime: DefaultNotificationLifetime,
		LogLevel:             DefaultLogLevel,
		MaskInput:            true,
		Servers:              make(map[string]*Server),
	}
}

// RememberServer records a discovered service.
func (c *Config) RememberServer(instance, serviceURL, version string, seen time.Time) {
	if c.Servers == nil {
		c.Servers = make(map[string]*Server)
	}
	c.Servers[instance] = &Server{URL: serviceURL, Version: version, LastSeen: seen}
}

// ApplyEnv overrides file values with environment variables.
// getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvServerURL); v != "" {
		c.ServerURL = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("invalid server_url %q: %w", c.ServerURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid server_url %q: must be an http or https URL", c.ServerURL)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.NotificationLifetime <= 0 {
		return fmt.Errorf("notification_lifetime must be positive, got %s", c.NotificationLifetime)
	}

	if c.GenerateLength != 0 &&
		(c.GenerateLength < MinGenerateLength || c.GenerateLength > MaxGenerateLength) {
		return fmt.Errorf("generate_length must be 0 or between %d and %d, got %d",
			MinGenerateLength, MaxGenerateLength, c.GenerateLength)
	}

	switch c.LogLevel {
	case "off", "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q (want off, debug, info, warn or error)", c.LogLevel)
	}

	return nil
}

// fillDefaults replaces zero values left by an older or partial file.
func (c *Config) fillDefaults() {
	d := Default()
	if c.ServerURL == "" {
		c.ServerURL = d.ServerURL
	}
	if c.Timeout == 0 {
		c.Timeout = d.Timeout
	}
	if c.NotificationLifetime == 0 {
		c.NotificationLifetime = d.NotificationLifetime
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Servers == nil {
		c.Servers = make(map[string]*Server)
	}
}
