package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0")
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.CRM.validate(); err != nil {
		return fmt.Errorf("crm: %w", err)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", s.BaseURL)
	}
	if s.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if s.SignedURLTTL <= 0 {
		return fmt.Errorf("signed_url_ttl must be > 0")
	}
	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0")
	}
	return nil
}

func (c *CRMConfig) validate() error {
	if c.DefaultListLimit <= 0 {
		return fmt.Errorf("default_list_limit must be > 0 (got %d)", c.DefaultListLimit)
	}
	if c.MaxListLimit < c.DefaultListLimit {
		return fmt.Errorf("max_list_limit (%d) must be >= default_list_limit (%d)", c.MaxListLimit, c.DefaultListLimit)
	}
	if c.RecentActivityDays <= 0 {
		return fmt.Errorf("recent_activity_days must be > 0 (got %d)", c.RecentActivityDays)
	}
	return nil
}
