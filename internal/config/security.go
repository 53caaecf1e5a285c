// Package config loads application security configuration from YAML.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SecurityConfig represents the security section of the config file.
type SecurityConfig struct {
	Security struct {
		JWT struct {
			SecretEnv   string `yaml:"secret_env"`
			ExpiryHours int    `yaml:"expiry_hours"`
		} `yaml:"jwt"`
		PublicEndpoints []string `yaml:"public_endpoints"`
		CSP             struct {
			ScriptCDNs []string `yaml:"script_cdns"`
			StyleCDNs  []string `yaml:"style_cdns"`
			FontCDNs   []string `yaml:"font_cdns"`
		} `yaml:"csp"`
		WeakPasswords []string `yaml:"weak_passwords"`
	} `yaml:"security"`
}

// LoadSecurityConfig loads security configuration from a YAML file.
// The path comes from a trusted source (CLI argument or hardcoded
// default), never from request input.
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SecurityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// validateSecurityConfig fails closed: a config that would weaken the
// boundary prevents startup.
func validateSecurityConfig(config *SecurityConfig) error {
	if config.Security.JWT.SecretEnv == "" {
		return fmt.Errorf("jwt secret_env is required")
	}
	if config.Security.JWT.ExpiryHours <= 0 {
		return fmt.Errorf("jwt expiry_hours must be positive")
	}

	for _, ep := range config.Security.PublicEndpoints {
		if !strings.HasPrefix(ep, "/") {
			return fmt.Errorf("public endpoint %q must start with /", ep)
		}
	}

	for _, origins := range [][]string{
		config.Security.CSP.ScriptCDNs,
		config.Security.CSP.StyleCDNs,
		config.Security.CSP.FontCDNs,
	} {
		for _, origin := range origins {
			if !strings.HasPrefix(origin, "https://") {
				return fmt.Errorf("CSP origin %q must use https", origin)
			}
		}
	}

	return nil
}

// GetPublicEndpoints returns the list of endpoints that skip authentication.
func (c *SecurityConfig) GetPublicEndpoints() []string {
	return c.Security.PublicEndpoints
}

// GetJWTSecretEnv returns the environment variable name holding the JWT secret.
func (c *SecurityConfig) GetJWTSecretEnv() string {
	return c.Security.JWT.SecretEnv
}

// GetJWTExpiryHours returns the JWT expiry time in hours.
func (c *SecurityConfig) GetJWTExpiryHours() int {
	return c.Security.JWT.ExpiryHours
}

// GetWeakPasswords returns the deny list of known weak passwords.
func (c *SecurityConfig) GetWeakPasswords() []string {
	return c.Security.WeakPasswords
}

// DefaultSecurityConfig returns the configuration used when no YAML file
// is present: auth and operational endpoints public, no extra CSP
// origins, and the usual weak-password suspects denied.
func DefaultSecurityConfig() *SecurityConfig {
	var c SecurityConfig
	c.Security.JWT.SecretEnv = "JWT_SECRET"
	c.Security.JWT.ExpiryHours = 1
	c.Security.PublicEndpoints = []string{"/healthz", "/readyz", "/metrics", "/auth/"}
	c.Security.WeakPasswords = []string{"password", "12345678", "qwerty123", "letmein1", "password1"}
	return &c
}
