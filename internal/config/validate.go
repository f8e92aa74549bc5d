package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.Feed.validate(); err != nil {
		return fmt.Errorf("feed: %w", err)
	}

	if c.Media.MaxUploadBytes <= 0 {
		return fmt.Errorf("media: max_upload_bytes must be > 0 (got %d)", c.Media.MaxUploadBytes)
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if len(a.SessionSecret) < 32 {
		return fmt.Errorf("session_secret must be at least 32 characters (got %d)", len(a.SessionSecret))
	}
	if a.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be > 0 (got %v)", a.SessionTTL)
	}
	if a.PasswordHashCost < bcrypt.MinCost || a.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("password_hash_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, a.PasswordHashCost)
	}
	if strings.TrimSpace(a.CookieName) == "" {
		return fmt.Errorf("cookie_name must not be empty")
	}
	if !strings.HasPrefix(a.LoginPath, "/") {
		return fmt.Errorf("login_path must be an absolute path (got %q)", a.LoginPath)
	}
	if a.LoginRatePerMinute <= 0 {
		return fmt.Errorf("login_rate_per_minute must be > 0 (got %d)", a.LoginRatePerMinute)
	}
	return nil
}

func (f *FeedConfig) validate() error {
	if f.PageSize <= 0 {
		return fmt.Errorf("page_size must be > 0 (got %d)", f.PageSize)
	}
	if f.IndexCacheTTL < 0 {
		return fmt.Errorf("index_cache_ttl must be >= 0 (got %v)", f.IndexCacheTTL)
	}
	if f.IndexCacheSize <= 0 {
		return fmt.Errorf("index_cache_size must be > 0 (got %d)", f.IndexCacheSize)
	}
	return nil
}
