package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the process needs; nothing reads the
// environment after Load returns.
type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	AllowedOrigins string
	Env            string // development | production

	R2 R2Config
}

// R2Config is the object storage used for resource-board file uploads.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	CDNBaseURL      string
}

// Enabled reports whether uploads can be served; when false the resource
// board still works with plain links.
func (r R2Config) Enabled() bool {
	return r.AccountID != "" && r.AccessKeyID != "" && r.AccessKeySecret != "" && r.Bucket != ""
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults/environment variables")
	}

	cfg := Config{
		Port:           getenv("PORT", "4000"),
		DatabaseURL:    getenv("DATABASE_URL", ""),
		JWTSecret:      getenv("JWT_SECRET", ""),
		AllowedOrigins: getenv("ALLOWED_ORIGINS", "http://localhost:3000"),
		Env:            getenv("APP_ENV", "development"),
		R2: R2Config{
			AccountID:       getenv("CLOUDFLARE_ACCOUNT_ID", ""),
			AccessKeyID:     getenv("R2_ACCESS_KEY_ID", ""),
			AccessKeySecret: getenv("R2_ACCESS_KEY_SECRET", ""),
			Bucket:          getenv("R2_BUCKET_NAME", ""),
			CDNBaseURL:      getenv("CDN_BASE_URL", ""),
		},
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			log.Fatal("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET is not set, using development default")
		cfg.JWTSecret = "dev-secret"
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
