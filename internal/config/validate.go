package config

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if _, err := c.Secrets.Key(); err != nil {
		return fmt.Errorf("secrets: %w", err)
	}

	if c.Quota.FreeLimit <= 0 {
		return fmt.Errorf("quota.free_limit must be > 0 (got %d)", c.Quota.FreeLimit)
	}
	if c.Quota.ProLimit < c.Quota.FreeLimit {
		return fmt.Errorf("quota.pro_limit must be >= free_limit (got %d < %d)", c.Quota.ProLimit, c.Quota.FreeLimit)
	}

	if err := c.Intake.validate(); err != nil {
		return fmt.Errorf("intake: %w", err)
	}
	if err := c.Dispatch.validate(); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}

	if c.Verification.TokenTTL <= 0 {
		return fmt.Errorf("verification.token_ttl must be > 0 (got %v)", c.Verification.TokenTTL)
	}
	if strings.TrimSpace(c.Verification.BaseURL) == "" {
		return fmt.Errorf("verification.base_url is required")
	}
	if c.Verification.RateLimitPerMin <= 0 {
		return fmt.Errorf("verification.rate_limit_per_min must be > 0 (got %d)", c.Verification.RateLimitPerMin)
	}

	if c.Retention.SubmissionDays <= 0 || c.Retention.DeletedDays <= 0 {
		return fmt.Errorf("retention days must be > 0 (got %d/%d)", c.Retention.SubmissionDays, c.Retention.DeletedDays)
	}

	return nil
}

// Key decodes the credentials sealing key.
func (s SecretsConfig) Key() ([32]byte, error) {
	var key [32]byte

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s.CredentialsKey))
	if err != nil {
		return key, fmt.Errorf("credentials_key must be base64: %w", err)
	}
	if len(raw) != len(key) {
		return key, fmt.Errorf("credentials_key must decode to %d bytes (got %d)", len(key), len(raw))
	}

	copy(key[:], raw)
	return key, nil
}

func (i *IntakeConfig) validate() error {
	if i.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", i.MaxBodyBytes)
	}
	if i.MaxFields <= 0 {
		return fmt.Errorf("max_fields must be > 0 (got %d)", i.MaxFields)
	}
	if i.RateLimitPerMin <= 0 {
		return fmt.Errorf("rate_limit_per_min must be > 0 (got %d)", i.RateLimitPerMin)
	}
	return nil
}

func (d *DispatchConfig) validate() error {
	if d.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", d.Timeout)
	}
	if d.MaxParallel <= 0 {
		return fmt.Errorf("max_parallel must be > 0 (got %d)", d.MaxParallel)
	}
	if d.DedupeTTL <= 0 {
		return fmt.Errorf("dedupe_ttl must be > 0 (got %v)", d.DedupeTTL)
	}
	if d.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be > 0 (got %d)", d.MaxAttempts)
	}
	if d.RedeliverBatch <= 0 {
		return fmt.Errorf("redeliver_batch must be > 0 (got %d)", d.RedeliverBatch)
	}
	if d.RedeliverGrace < 0 || d.RedeliverGrace >= d.RedeliverWindow {
		return fmt.Errorf("redeliver_grace must be within [0, redeliver_window) (got %v, window %v)", d.RedeliverGrace, d.RedeliverWindow)
	}
	return nil
}
