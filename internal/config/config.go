package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port      string
	Env       string
	StaticDir string

	// Contentful
	ContentfulSpaceID     string
	ContentfulAccessToken string
	ContentfulBaseURL     string
	ContentfulEnvironment string
	ContentfulTimeout     time.Duration
	ContentCacheEnabled   bool

	// Database (optional, inquiries are only logged without it)
	DatabaseURL string

	// Redis (optional, upstream cache)
	RedisURL string

	// CORS
	AllowedOrigins []string

	// Reverse proxies allowed to set X-Forwarded-For (IPs or CIDRs)
	TrustedProxies []string

	// Inquiries
	InquiryRatePerMinute int

	// Email (optional, SendGrid notice to the studio on each inquiry)
	SendGridAPIKey     string
	EmailFrom          string
	EmailFromName      string
	InquiryNotifyEmail string

	// Storage (R2)
	R2AccountID       string
	R2AccessKeyID     string
	R2AccessKeySecret string
	R2BucketName      string
	R2PublicURL       string

	// Logging
	LogLevel string
}

func Load() *Config {
	// Load .env file in development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		// Server
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("ENV", "development"),
		StaticDir: getEnv("STATIC_DIR", "public"),

		// Contentful
		ContentfulSpaceID:     getEnvFallback("CONTENTFUL_SPACE_ID", "NEXT_PUBLIC_SPACE_ID"),
		ContentfulAccessToken: getEnvFallback("CONTENTFUL_ACCESS_TOKEN", "NEXT_PUBLIC_CONTENT_DELIVERY_TOKEN"),
		ContentfulBaseURL:     getEnv("CONTENTFUL_BASE_URL", "https://cdn.contentful.com"),
		ContentfulEnvironment: getEnv("CONTENTFUL_ENVIRONMENT", "master"),
		ContentfulTimeout:     time.Duration(parseInt(getEnv("CONTENTFUL_TIMEOUT_SECONDS", "10"), 10)) * time.Second,
		ContentCacheEnabled:   parseBool(getEnv("CONTENT_CACHE_ENABLED", "false"), false),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", ""),

		// Redis
		RedisURL: getEnv("REDIS_URL", ""),

		// CORS
		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		// Proxies
		TrustedProxies: parseStringSlice(getEnv("TRUSTED_PROXIES", "")),

		// Inquiries
		InquiryRatePerMinute: parseInt(getEnv("INQUIRY_RATE_PER_MINUTE", "5"), 5),

		// Email
		SendGridAPIKey:     getEnv("SENDGRID_API_KEY", ""),
		EmailFrom:          getEnv("EMAIL_FROM", "no-reply@familysoo.com"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "Family Soo Studio"),
		InquiryNotifyEmail: getEnv("INQUIRY_NOTIFY_EMAIL", "familysoo1592@naver.com"),

		// Storage
		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2AccessKeySecret: getEnv("R2_ACCESS_KEY_SECRET", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", "familysoo-assets"),
		R2PublicURL:       getEnv("R2_PUBLIC_URL", ""),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}
}

// ContentfulConfigured reports whether both Contentful secrets are present.
func (c *Config) ContentfulConfigured() bool {
	return c.ContentfulSpaceID != "" && c.ContentfulAccessToken != ""
}

// EmailConfigured reports whether inquiry notices can be sent.
func (c *Config) EmailConfigured() bool {
	return c.SendGridAPIKey != "" && c.InquiryNotifyEmail != ""
}

// R2Configured reports whether R2 credentials are present.
func (c *Config) R2Configured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2AccessKeySecret != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvFallback reads key, then the legacy key, then "".
func getEnvFallback(key, legacyKey string) string {
	if value := getEnv(key, ""); value != "" {
		return value
	}
	return getEnv(legacyKey, "")
}

func parseBool(s string, defaultValue bool) bool {
	value, err := strconv.ParseBool(s)
	if err != nil {
		return defaultValue
	}
	return value
}

func parseInt(s string, defaultValue int) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return value
}

func parseStringSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	// Simple split by comma
	var result []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if start < i {
				result = append(result, s[start:i])
			}
			start = i + 1
		}
	}
	return result
}
