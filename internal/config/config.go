package config

import (
	"os"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port      string
	Env       string
	LogLevel  string
	LogFormat string

	// Email provider selection: "sendgrid" (default) or "ses". When the
	// selected provider has no credential configured the dispatcher falls
	// back to a stub sender that logs leads instead of emailing them.
	EmailProvider string

	// SendGrid email configuration. No default API key is shipped: an empty
	// key selects the no-send fallback.
	SendGridAPIKey string

	FromEmail  string
	FromName   string
	OwnerEmail string
	ReplyTo    string

	// Timezone used to render the submission timestamp in outbound emails.
	BusinessTimezone string

	AWSRegion string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		EmailProvider:  strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "sendgrid"))),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		FromEmail:  getEnv("FROM_EMAIL", "onboarding@resend.dev"),
		FromName:   getEnv("FROM_NAME", "NoBug Pest Control"),
		OwnerEmail: getEnv("OWNER_EMAIL", "nobughello@gmail.com"),
		ReplyTo:    getEnv("REPLY_TO_EMAIL", "nobughello@gmail.com"),

		BusinessTimezone: getEnv("BUSINESS_TZ", "Asia/Jerusalem"),

		AWSRegion: getEnv("AWS_REGION", "us-east-1"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
