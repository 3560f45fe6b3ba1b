package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. It is constructed once at startup
// and injected; business logic never reads the process environment directly.
type Config struct {
	Port          string
	IsProduction  bool
	MongoURI      string
	MongoDatabase string

	JWTIssuer string

	// Access token config (per-request authorization)
	AccessTokenSecret         string
	AccessTokenExpiryDuration time.Duration

	// Refresh token config (session continuation, persisted per user)
	RefreshTokenSecret         string
	RefreshTokenExpiryDuration time.Duration
	RefreshTokenCookieName     string
	RefreshTokenCookiePath     string

	// Reset token config (password recovery, stateless)
	ResetTokenSecret         string
	ResetTokenExpiryDuration time.Duration

	// Outbound mail (password reset delivery)
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	// Image storage
	CloudinaryURL string

	FrontendBaseURL string
}

// LoadConfig loads configuration from environment variables and a .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MONGODB_URI", "")
	viper.SetDefault("MONGODB_DATABASE", "median")
	viper.SetDefault("JWT_ISSUER", "median-backend")
	viper.SetDefault("ACCESS_TOKEN_SECRET", "insecure-access-secret-change-me")
	viper.SetDefault("ACCESS_TOKEN_EXPIRY_DURATION", "5m")
	viper.SetDefault("REFRESH_TOKEN_SECRET", "insecure-refresh-secret-change-me")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "refreshToken")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_PATH", "/api/auth")
	viper.SetDefault("RESET_PASSWORD_TOKEN_SECRET", "insecure-reset-secret-change-me")
	viper.SetDefault("RESET_PASSWORD_TOKEN_EXPIRY_DURATION", "1h")
	viper.SetDefault("SMTP_HOST", "sandbox.smtp.mailtrap.io")
	viper.SetDefault("SMTP_PORT", 2525)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "no-reply@median.com")
	viper.SetDefault("CLOUDINARY_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:8000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.MongoURI = viper.GetString("MONGODB_URI")
	if cfg.MongoURI == "" {
		log.Println("Warning: MONGODB_URI environment variable not set.")
	}
	cfg.MongoDatabase = viper.GetString("MONGODB_DATABASE")

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AccessTokenSecret = viper.GetString("ACCESS_TOKEN_SECRET")
	cfg.AccessTokenExpiryDuration = parseDurationOr("ACCESS_TOKEN_EXPIRY_DURATION", 5*time.Minute)

	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	cfg.RefreshTokenExpiryDuration = parseDurationOr("REFRESH_TOKEN_EXPIRY_DURATION", 7*24*time.Hour)
	cfg.RefreshTokenCookieName = viper.GetString("REFRESH_TOKEN_COOKIE_NAME")
	cfg.RefreshTokenCookiePath = viper.GetString("REFRESH_TOKEN_COOKIE_PATH")

	cfg.ResetTokenSecret = viper.GetString("RESET_PASSWORD_TOKEN_SECRET")
	cfg.ResetTokenExpiryDuration = parseDurationOr("RESET_PASSWORD_TOKEN_EXPIRY_DURATION", time.Hour)

	if !cfg.IsProduction {
		warnDefaultSecret("ACCESS_TOKEN_SECRET", cfg.AccessTokenSecret)
		warnDefaultSecret("REFRESH_TOKEN_SECRET", cfg.RefreshTokenSecret)
		warnDefaultSecret("RESET_PASSWORD_TOKEN_SECRET", cfg.ResetTokenSecret)
	}

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	cfg.SMTPUser = viper.GetString("SMTP_USER")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.MailFrom = viper.GetString("MAIL_FROM")

	cfg.CloudinaryURL = viper.GetString("CLOUDINARY_URL")
	if cfg.CloudinaryURL == "" {
		log.Println("Warning: CLOUDINARY_URL not set. Image uploads will not function.")
	}

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}

// parseDurationOr reads a viper key as a time.Duration, falling back to the
// given default with a warning when the value does not parse.
func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func warnDefaultSecret(key, value string) {
	if len(value) < 32 || strings.HasPrefix(value, "insecure") {
		log.Printf("Warning: %s is short or unset. Do not use this key in production.\n", key)
	}
}
