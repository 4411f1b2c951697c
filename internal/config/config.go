// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
	"secret_key_for_forms",
}

// SMTP TLS policies accepted in EVENTDESK_SMTP_TLS.
const (
	SMTPTLSMandatory     = "mandatory"
	SMTPTLSOpportunistic = "opportunistic"
	SMTPTLSNone          = "none"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"EVENTDESK_DB_PATH" envDefault:"./data/eventdesk.db"`
	SessionSecret string `env:"EVENTDESK_SESSION_SECRET,required"`
	ServerHost    string `env:"EVENTDESK_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"EVENTDESK_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"EVENTDESK_ENV" envDefault:"development"`
	LogLevel      string `env:"EVENTDESK_LOG_LEVEL" envDefault:"info"`

	SessionLifetime    time.Duration `env:"EVENTDESK_SESSION_LIFETIME" envDefault:"24h"`
	SessionIdleTimeout time.Duration `env:"EVENTDESK_SESSION_IDLE_TIMEOUT" envDefault:"2h"`

	// Single administrator. AdminPassword may be plain text or an argon2id hash
	// produced by `eventdesk -hash-password`.
	AdminUsername string `env:"EVENTDESK_ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"EVENTDESK_ADMIN_PASSWORD,required"`

	// Outbound mail relay. An empty host logs confirmations instead of sending them.
	SMTPHost     string `env:"EVENTDESK_SMTP_HOST"`
	SMTPPort     int    `env:"EVENTDESK_SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"EVENTDESK_SMTP_USERNAME"`
	SMTPPassword string `env:"EVENTDESK_SMTP_PASSWORD"`
	SMTPTLS      string `env:"EVENTDESK_SMTP_TLS" envDefault:"mandatory"`
	MailFrom     string `env:"EVENTDESK_MAIL_FROM" envDefault:"bookings@localhost"`

	PhoneRegion      string  `env:"EVENTDESK_PHONE_REGION" envDefault:"US"`
	BookingRateLimit float64 `env:"EVENTDESK_BOOKING_RATE_LIMIT" envDefault:"0.2"` // submissions per second per IP
	BookingRateBurst int     `env:"EVENTDESK_BOOKING_RATE_BURST" envDefault:"5"`

	MetricsEnabled     bool `env:"EVENTDESK_METRICS_ENABLED" envDefault:"true"`
	EventRetentionDays int  `env:"EVENTDESK_EVENT_RETENTION_DAYS" envDefault:"90"`

	DoSeed bool `env:"EVENTDESK_DO_SEED" envDefault:"false"` // insert demo bookings into an empty database
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// SMTPEnabled returns true if an outbound mail relay is configured.
func (c Config) SMTPEnabled() bool {
	return c.SMTPHost != ""
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("EVENTDESK_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("EVENTDESK_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("EVENTDESK_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	if strings.TrimSpace(cfg.AdminUsername) == "" {
		return nil, fmt.Errorf("EVENTDESK_ADMIN_USERNAME must not be empty")
	}

	switch cfg.SMTPTLS {
	case SMTPTLSMandatory, SMTPTLSOpportunistic, SMTPTLSNone:
	default:
		return nil, fmt.Errorf("EVENTDESK_SMTP_TLS must be one of %q, %q or %q, got %q",
			SMTPTLSMandatory, SMTPTLSOpportunistic, SMTPTLSNone, cfg.SMTPTLS)
	}

	if cfg.BookingRateLimit <= 0 || cfg.BookingRateBurst <= 0 {
		return nil, fmt.Errorf("EVENTDESK_BOOKING_RATE_LIMIT and EVENTDESK_BOOKING_RATE_BURST must be positive")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
