package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	DatabaseURL   string
	EnableDBCheck bool
	JWTSecret     string
	JWTIssuer     string

	// ERP backend
	ERPBaseURL string
	ERPTimeout time.Duration

	// RedisAddress enables the cross-instance submission lock when set.
	RedisAddress string

	NumberLocale string
	Timezone     string
	Location     *time.Location

	ReferenceCacheTTL time.Duration
	PrintArchiveSize  int
	PrintArchiveTTL   time.Duration

	// SubmitRateLimit uses the limiter's formatted rate, e.g. "30-M".
	SubmitRateLimit    string
	CORSAllowedOrigins []string

	PostHogAPIKey   string
	CredentialsFile string
	CredentialsKey  string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_ISSUER", "voucher-desk")
	viper.SetDefault("ERP_BASE_URL", "http://localhost:5000/api")
	viper.SetDefault("ERP_TIMEOUT", "15s")
	viper.SetDefault("REDIS_ADDRESS", "")
	viper.SetDefault("NUMBER_LOCALE", "en-US")
	viper.SetDefault("TIMEZONE", "Local")
	viper.SetDefault("REFERENCE_CACHE_TTL", "5m")
	viper.SetDefault("PRINT_ARCHIVE_SIZE", 256)
	viper.SetDefault("PRINT_ARCHIVE_TTL", "24h")
	viper.SetDefault("SUBMIT_RATE_LIMIT", "30-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("CREDENTIALS_FILE", "")
	viper.SetDefault("CREDENTIALS_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		EnableDBCheck:    viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		JWTIssuer:        viper.GetString("JWT_ISSUER"),
		ERPBaseURL:       strings.TrimRight(viper.GetString("ERP_BASE_URL"), "/"),
		RedisAddress:     viper.GetString("REDIS_ADDRESS"),
		NumberLocale:     viper.GetString("NUMBER_LOCALE"),
		Timezone:         viper.GetString("TIMEZONE"),
		PrintArchiveSize: viper.GetInt("PRINT_ARCHIVE_SIZE"),
		SubmitRateLimit:  viper.GetString("SUBMIT_RATE_LIMIT"),
		PostHogAPIKey:    viper.GetString("POSTHOG_API_KEY"),
		CredentialsFile:  viper.GetString("CREDENTIALS_FILE"),
		CredentialsKey:   viper.GetString("CREDENTIALS_KEY"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.ERPBaseURL == "" {
		return nil, fmt.Errorf("ERP_BASE_URL must not be empty")
	}
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "development-only-secret-change-me"
		slog.Warn("JWT_SECRET not set, using an insecure development secret")
	}
	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL not set, drafts are kept in memory")
	}

	cfg.ERPTimeout = durationOr("ERP_TIMEOUT", 15*time.Second)
	cfg.ReferenceCacheTTL = durationOr("REFERENCE_CACHE_TTL", 5*time.Minute)
	cfg.PrintArchiveTTL = durationOr("PRINT_ARCHIVE_TTL", 24*time.Hour)
	if cfg.PrintArchiveSize <= 0 {
		cfg.PrintArchiveSize = 256
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// durationOr reads a duration key, falling back to def when it is missing or malformed.
func durationOr(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			slog.Warn("Invalid duration, using default",
				slog.String("key", key),
				slog.String("value", raw),
				slog.Duration("default", def))
		}
		return def
	}
	return d
}
