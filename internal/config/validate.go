package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth.refresh_token_ttl must be positive (got %v)", c.Auth.RefreshTokenTTL)
	}
	if c.Auth.PasswordMinLen < 4 {
		return fmt.Errorf("auth.password_min_len must be at least 4 (got %d)", c.Auth.PasswordMinLen)
	}

	if err := c.Logs.validate(); err != nil {
		return fmt.Errorf("logs: %w", err)
	}

	return nil
}

func (l *LogsConfig) validate() error {
	if l.ExportBatchSize <= 0 {
		return fmt.Errorf("export_batch_size must be > 0 (got %d)", l.ExportBatchSize)
	}
	if l.ListDefaultLimit <= 0 {
		return fmt.Errorf("list_default_limit must be > 0 (got %d)", l.ListDefaultLimit)
	}
	if l.ListMaxLimit < l.ListDefaultLimit {
		return fmt.Errorf("list_max_limit must be >= list_default_limit (got %d < %d)", l.ListMaxLimit, l.ListDefaultLimit)
	}
	return nil
}
