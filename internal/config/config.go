package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPAddr         = ":8080"
	defaultAPIBaseURL       = "http://localhost:8081"
	defaultDatabaseURL      = "staybook.db"
	defaultAPITimeout       = "0s"
	defaultCookieSecure     = "false"
	defaultSessionTTL       = "24h"
	defaultSandboxAddr      = ":8081"
	defaultSandboxDatabase  = "sandbox.db"
	defaultBookingRetention = "720h"
)

// WebConfig drives the storefront binary.
type WebConfig struct {
	AppEnv       string
	HTTPAddr     string
	APIBaseURL   string
	DatabaseURL  string
	APITimeout   time.Duration
	CookieSecure bool
	SessionTTL   time.Duration
}

// SandboxConfig drives the development backend and its maintenance jobs.
type SandboxConfig struct {
	AppEnv             string
	HTTPAddr           string
	DatabaseURL        string
	CORSAllowedOrigins []string
	BookingRetention   time.Duration
}

func LoadWebConfig() (*WebConfig, error) {
	cfg := &WebConfig{AppEnv: appEnv()}
	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(getEnv("API_BASE_URL", defaultAPIBaseURL)), "/")
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.CookieSecure = parseBoolEnv("COOKIE_SECURE", defaultCookieSecure)

	var err error
	cfg.APITimeout, err = parseDurationEnv("API_TIMEOUT", defaultAPITimeout)
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL, err = parseDurationEnv("BOOKING_SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	if err := validateWebConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("web config: env=%s addr=%s api=%s timeout=%s session_ttl=%s", cfg.AppEnv, cfg.HTTPAddr, cfg.APIBaseURL, cfg.APITimeout, cfg.SessionTTL)

	return cfg, nil
}

func LoadSandboxConfig() (*SandboxConfig, error) {
	cfg := &SandboxConfig{AppEnv: appEnv()}
	cfg.HTTPAddr = strings.TrimSpace(getEnv("SANDBOX_ADDR", defaultSandboxAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("SANDBOX_DATABASE_URL", defaultSandboxDatabase))
	cfg.CORSAllowedOrigins = parseListEnv("CORS_ALLOWED_ORIGINS")

	var err error
	cfg.BookingRetention, err = parseDurationEnv("BOOKING_RETENTION", defaultBookingRetention)
	if err != nil {
		return nil, err
	}

	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("SANDBOX_ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("SANDBOX_DATABASE_URL must not be empty")
	}
	if cfg.BookingRetention <= 0 {
		return nil, fmt.Errorf("BOOKING_RETENTION must be > 0")
	}
	if isProdLike(cfg.AppEnv) {
		return nil, fmt.Errorf("sandbox backend must not run with APP_ENV=%s", cfg.AppEnv)
	}

	return cfg, nil
}

func validateWebConfig(cfg *WebConfig) error {
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.APITimeout < 0 {
		return fmt.Errorf("API_TIMEOUT must be >= 0")
	}
	if cfg.SessionTTL < time.Minute {
		return fmt.Errorf("BOOKING_SESSION_TTL must be at least 1m")
	}

	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute http(s) URL, got %q", cfg.APIBaseURL)
	}

	if isProdLike(cfg.AppEnv) && !cfg.CookieSecure {
		return fmt.Errorf("in prod/release COOKIE_SECURE must be true")
	}

	return nil
}

func appEnv() string {
	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = strings.TrimSpace(os.Getenv("ENV"))
	}
	if env == "" {
		env = "dev"
	}
	return strings.ToLower(env)
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

// parseListEnv splits a comma separated variable, e.g. CORS_ALLOWED_ORIGINS=https://a.com,https://b.com
func parseListEnv(name string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(name), ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
