package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Redis (optional, mirrors design sessions across instances)
	RedisURL string

	// CORS
	AllowedOrigins []string

	// Cloudinary image delivery
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Origin assets (local fallback photos)
	AssetsDir         string
	AssetsBucket      string
	AssetsAccountID   string
	AssetsAccessKey   string
	AssetsSecretKey   string
	AssetsPublicURL   string
	MaxAssetDimension int

	// Purchase
	DefaultEtsyURL string

	// Sessions
	SessionTTLMinutes int

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
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Redis
		RedisURL: getEnv("REDIS_URL", ""),

		// CORS
		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		// Cloudinary
		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),

		// Origin assets
		AssetsDir:         getEnv("ASSETS_DIR", "./public/photos"),
		AssetsBucket:      getEnv("ASSETS_BUCKET", ""),
		AssetsAccountID:   getEnv("ASSETS_ACCOUNT_ID", ""),
		AssetsAccessKey:   getEnv("ASSETS_ACCESS_KEY_ID", ""),
		AssetsSecretKey:   getEnv("ASSETS_ACCESS_KEY_SECRET", ""),
		AssetsPublicURL:   getEnv("ASSETS_PUBLIC_URL", ""),
		MaxAssetDimension: parseInt(getEnv("MAX_ASSET_DIMENSION", "2000"), 2000),

		// Purchase
		DefaultEtsyURL: getEnv("DEFAULT_ETSY_URL", "https://www.etsy.com/shop/LumenGalleryPrints"),

		// Sessions
		SessionTTLMinutes: parseInt(getEnv("SESSION_TTL_MINUTES", "120"), 120),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}
}

// MissingKeys reports which image-delivery keys are unset. The service keeps
// running without them; every Cloudinary resolution falls back to a
// placeholder URL instead.
func (c *Config) MissingKeys() []string {
	var missing []string
	if c.CloudinaryCloudName == "" {
		missing = append(missing, "CLOUDINARY_CLOUD_NAME")
	}
	if c.CloudinaryAPIKey == "" {
		missing = append(missing, "CLOUDINARY_API_KEY")
	}
	if c.CloudinaryAPISecret == "" {
		missing = append(missing, "CLOUDINARY_API_SECRET")
	}
	return missing
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
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

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
