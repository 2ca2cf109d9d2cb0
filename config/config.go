package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// This function will Load the ENVIRONMENT VARIABLES from .env if GO_ENV variable is not set.
// A missing .env file is fine, the process environment is used as-is.
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	return nil
}

type EnvironmentVariable struct {
	GO_ENV string
	PORT   int

	// Database
	DB_DRIVER    string // postgres or sqlite
	DB_USER_NAME string
	DB_PASSWORD  string
	DB_NAME      string
	DB_HOST      string
	DB_PORT      string
	DB_SSL_MODE  string
	SQLITE_PATH  string

	// Admin console
	JWT_SECRET     string
	JWT_ISSUER     string
	ADMIN_USERNAME string
	ADMIN_EMAIL    string
	ADMIN_PASSWORD string

	// HTTP
	ALLOWED_ORIGINS string

	// Redis Configuration
	REDIS_URL string

	// Scheduled jobs
	CRON_ENABLED           bool
	RECYCLE_RETENTION_DAYS int

	// Object storage (S3 compatible, e.g. DigitalOcean Spaces)
	DO_SPACES_ACCESS_KEY   string
	DO_SPACES_SECRET_KEY   string
	DO_SPACES_BUCKET       string
	DO_SPACES_REGION       string
	DO_SPACES_ENDPOINT     string
	DO_SPACES_CDN_ENDPOINT string
}

// IsProduction reports whether GO_ENV is production.
func (e *EnvironmentVariable) IsProduction() bool {
	return e.GO_ENV == "production"
}

func Get() (*EnvironmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	retention, err := strconv.Atoi(os.Getenv("RECYCLE_RETENTION_DAYS"))
	if err != nil || retention < 0 {
		retention = 30
	}

	envVariables := &EnvironmentVariable{
		GO_ENV: os.Getenv("GO_ENV"),
		PORT:   port,
		// Database
		DB_DRIVER:    getEnvOrDefault("DB_DRIVER", "sqlite"),
		DB_USER_NAME: os.Getenv("DB_USER_NAME"),
		DB_PASSWORD:  os.Getenv("DB_PASSWORD"),
		DB_NAME:      os.Getenv("DB_NAME"),
		DB_HOST:      getEnvOrDefault("DB_HOST", "localhost"),
		DB_PORT:      getEnvOrDefault("DB_PORT", "5432"),
		DB_SSL_MODE:  getEnvOrDefault("DB_SSL_MODE", "disable"),
		SQLITE_PATH:  getEnvOrDefault("SQLITE_PATH", "pixel_portfolio.db"),
		// Admin
		JWT_SECRET:     os.Getenv("JWT_SECRET"),
		JWT_ISSUER:     getEnvOrDefault("JWT_ISSUER", "pixel-portfolio"),
		ADMIN_USERNAME: getEnvOrDefault("ADMIN_USERNAME", "admin"),
		ADMIN_EMAIL:    getEnvOrDefault("ADMIN_EMAIL", "admin@pixelportfolio.com"),
		ADMIN_PASSWORD: os.Getenv("ADMIN_PASSWORD"),
		// HTTP
		ALLOWED_ORIGINS: getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:8080"),
		// Redis
		REDIS_URL: os.Getenv("REDIS_URL"),
		// Cron, enabled unless explicitly switched off
		CRON_ENABLED:           os.Getenv("CRON_ENABLED") != "false",
		RECYCLE_RETENTION_DAYS: retention,
		// Spaces
		DO_SPACES_ACCESS_KEY:   os.Getenv("DO_SPACES_ACCESS_KEY"),
		DO_SPACES_SECRET_KEY:   os.Getenv("DO_SPACES_SECRET_KEY"),
		DO_SPACES_BUCKET:       os.Getenv("DO_SPACES_BUCKET"),
		DO_SPACES_REGION:       os.Getenv("DO_SPACES_REGION"),
		DO_SPACES_ENDPOINT:     os.Getenv("DO_SPACES_ENDPOINT"),
		DO_SPACES_CDN_ENDPOINT: os.Getenv("DO_SPACES_CDN_ENDPOINT"),
	}

	return envVariables, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
