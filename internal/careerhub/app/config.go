package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/notify"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/service"
)

type Config struct {
	Env                  string        // Environment (dev, test, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired OTP purge interval (default: 15m)
	OTPRetention         time.Duration // How long expired OTPs are kept before purging (default: 24h)

	DatabaseURL string // postgres:// URL or SQLite file path (default: careerhub.db)
	PepperFile  string // Path to file containing pepper for password hashing (default: ./pepper)

	JWTSecret  string        // HS256 secret, at least 32 bytes. Required in production.
	TokenTTL   time.Duration // Session token lifetime (default: 30 days)
	TOTPIssuer string        // Issuer shown in authenticator apps (default: CareerHub)

	Twilio notify.TwilioConfig // Optional: WhatsApp delivery for one-time codes
	Admin  service.AdminSeed   // Optional: seeded on startup when email and password are set
}

func LoadConfig() Config {
	return Config{
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 15*time.Minute),
		OTPRetention:         getEnvDurationOrDefault("OTP_RETENTION", 24*time.Hour),

		DatabaseURL: getEnvOrDefault("DATABASE_URL", "careerhub.db"),
		PepperFile:  getEnvOrDefault("PASSWORD_PEPPER_FILE", "pepper"),

		JWTSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   getEnvDurationOrDefault("TOKEN_TTL", 30*24*time.Hour),
		TOTPIssuer: getEnvOrDefault("TOTP_ISSUER", "CareerHub"),

		Twilio: notify.TwilioConfig{
			AccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
			WhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		},
		Admin: service.AdminSeed{
			Email:    os.Getenv("ADMIN_EMAIL"),
			Password: os.Getenv("ADMIN_PASSWORD"),
			FullName: os.Getenv("ADMIN_NAME"),
		},
	}
}

// Production reports whether the service runs with production safeguards:
// a configured JWT secret and no one-time codes in responses or logs.
func (c Config) Production() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	}
	return false
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
