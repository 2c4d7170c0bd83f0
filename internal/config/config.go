// Package config resolves folio's runtime settings from the environment,
// an optional .env file, and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"folio/internal/content"
)

// Environment variables read by Load.
const (
	EmailEnv = "FOLIO_EMAIL"
	AddrEnv  = "FOLIO_ADDR"
	PortEnv  = "PORT"
	LogEnv   = "FOLIO_LOG"
)

// DefaultAddr is the listen address for `folio serve`.
const DefaultAddr = ":8080"

// Config holds resolved settings.
type Config struct {
	ContentPath string // empty = embedded content
	Email       string // empty = use the content file's address
	Addr        string
	LogFile     string // empty = discard logs
}

// LoadDotenv loads KEY=VALUE pairs from files (default ".env") into the
// process environment without overriding variables already set.
// Missing files are ignored.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads the environment. Call LoadDotenv first to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{
		ContentPath: os.Getenv(content.PathEnv),
		Email:       strings.TrimSpace(os.Getenv(EmailEnv)),
		Addr:        os.Getenv(AddrEnv),
		LogFile:     os.Getenv(LogEnv),
	}
	if cfg.Addr == "" {
		if port := os.Getenv(PortEnv); port != "" {
			cfg.Addr = ":" + port
		} else {
			cfg.Addr = DefaultAddr
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field formats.
func (c *Config) Validate() error {
	if c.Email != "" && !strings.Contains(c.Email, "@") {
		return fmt.Errorf("%s: %q is not an email address", EmailEnv, c.Email)
	}
	if !strings.Contains(c.Addr, ":") {
		return fmt.Errorf("listen address %q: missing port", c.Addr)
	}
	return nil
}

// Portfolio loads the configured content and applies the email override.
func (c *Config) Portfolio() (*content.Portfolio, error) {
	p, err := content.Load(c.ContentPath)
	if err != nil {
		return nil, err
	}
	if c.Email != "" {
		p.Email = c.Email
	}
	return p, nil
}
