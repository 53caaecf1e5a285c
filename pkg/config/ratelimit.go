package config

import (
	"log/slog"
	"time"
)

// RateLimitConfig holds the request-throttling settings read from the
// environment.
type RateLimitConfig struct {
	// Limit is the per-client request budget for one window.
	Limit int
	// Window is the fixed window length.
	Window time.Duration
	// TrustProxy enables honoring forwarding headers only from the
	// proxies listed in TrustedProxies.
	TrustProxy bool
	// TrustedProxies is a comma-separated list of IPs or CIDR ranges.
	TrustedProxies string
}

// LoadRateLimitConfig reads rate limiting configuration from environment
// variables, falling back to safe defaults on invalid values.
//
// Environment variables:
//   - RATE_LIMIT_REQUESTS: requests allowed per window (default: 60)
//   - RATE_LIMIT_WINDOW: window length (default: 1m)
//   - RATE_LIMIT_TRUST_PROXY: validate forwarding headers (default: false)
//   - RATE_LIMIT_TRUSTED_PROXIES: trusted proxy IPs/CIDRs, comma-separated
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Limit:          GetEnvInt("RATE_LIMIT_REQUESTS", 60),
		Window:         GetEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		TrustProxy:     GetEnvBool("RATE_LIMIT_TRUST_PROXY", false),
		TrustedProxies: GetEnvString("RATE_LIMIT_TRUSTED_PROXIES", ""),
	}

	if cfg.Limit <= 0 {
		slog.Warn("rate limit must be positive, using default",
			slog.Int("value", cfg.Limit),
			slog.Int("default", 60))
		cfg.Limit = 60
	}
	if err := ValidatePositiveDuration(cfg.Window); err != nil {
		slog.Warn("rate limit window invalid, using default",
			slog.String("error", err.Error()),
			slog.Duration("default", time.Minute))
		cfg.Window = time.Minute
	}

	return cfg
}
