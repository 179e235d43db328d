package config

import (
	"fmt"
	"strings"
)

// maxCoverNoteLength mirrors the applications_cover_note_length check constraint.
const maxCoverNoteLength = 300

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if n := c.Applications.CoverNoteMaxLength; n <= 0 || n > maxCoverNoteLength {
		return fmt.Errorf("applications.cover_note_max_length must be in 1..%d (got %d)", maxCoverNoteLength, n)
	}

	if err := c.Dispatch.validate(); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}

	if err := c.Email.validate(); err != nil {
		return fmt.Errorf("email: %w", err)
	}

	return nil
}

func (d *DispatchConfig) validate() error {
	if d.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", d.Workers)
	}
	if d.SearchTimeout <= 0 {
		return fmt.Errorf("search_timeout must be > 0 (got %v)", d.SearchTimeout)
	}
	if d.RunTimeout < d.SearchTimeout {
		return fmt.Errorf("run_timeout (%v) must be >= search_timeout (%v)", d.RunTimeout, d.SearchTimeout)
	}
	if d.HeartbeatInterval <= 0 {
		return fmt.Errorf("heartbeat_interval must be > 0 (got %v)", d.HeartbeatInterval)
	}
	if d.TriggerTokenHash != "" && !strings.HasPrefix(d.TriggerTokenHash, "$2") {
		return fmt.Errorf("trigger_token_hash must be a bcrypt hash")
	}
	return nil
}

func (e *EmailConfig) validate() error {
	if !e.DryRun && e.SMTPHost == "" {
		return fmt.Errorf("smtp_host is required unless dry_run is enabled")
	}
	if !strings.Contains(e.From, "@") {
		return fmt.Errorf("from must be an email address (got %q)", e.From)
	}
	if e.RatePerSecond <= 0 {
		return fmt.Errorf("rate_per_second must be > 0 (got %v)", e.RatePerSecond)
	}
	if e.InitialBackoff <= 0 || e.MaxBackoff < e.InitialBackoff {
		return fmt.Errorf("backoff must satisfy 0 < initial_backoff <= max_backoff (got %v, %v)", e.InitialBackoff, e.MaxBackoff)
	}
	if e.SendTimeout <= 0 {
		return fmt.Errorf("send_timeout must be > 0 (got %v)", e.SendTimeout)
	}
	return nil
}
