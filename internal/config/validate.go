package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}
	if strings.TrimSpace(c.Auth.CookieName) == "" {
		return fmt.Errorf("auth.cookie_name is required")
	}
	if c.Auth.LoginRateLimit <= 0 {
		return fmt.Errorf("auth.login_rate_limit must be > 0 (got %d)", c.Auth.LoginRateLimit)
	}
	if c.Auth.PasswordCost < bcrypt.MinCost || c.Auth.PasswordCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordCost)
	}

	if err := c.Review.validate(); err != nil {
		return fmt.Errorf("review: %w", err)
	}

	if c.Redis.Enabled() && c.Redis.StatsTTL <= 0 {
		return fmt.Errorf("redis.stats_ttl must be > 0 when redis is enabled (got %v)", c.Redis.StatsTTL)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (r *ReviewConfig) validate() error {
	if r.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", r.DefaultPageSize)
	}
	if r.MaxPageSize < r.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", r.MaxPageSize, r.DefaultPageSize)
	}
	if strings.TrimSpace(r.ExportPrefix) == "" {
		return fmt.Errorf("export_prefix is required")
	}
	return nil
}
