package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	SessionSecret string

	OrdersDir   string
	UploadsDir  string
	CatalogPath string

	AdminUser     string
	AdminPass     string
	AdminPassHash string
}

func Load() Config {
	// Optional .env for local development; real environments set vars
	// directly.
	_ = godotenv.Load()

	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		HTTPPort: getEnvInt("HTTP_PORT", 8080),

		SessionSecret: getEnv("SESSION_SECRET", "dev-secret-key-change-me"),

		OrdersDir:   getEnv("ORDERS_DIR", "data/orders"),
		UploadsDir:  getEnv("UPLOADS_DIR", "static/uploads"),
		CatalogPath: getEnv("CATALOG_PATH", ""),

		AdminUser:     getEnv("ADMIN_USER", "admin"),
		AdminPass:     getEnv("ADMIN_PASSWORD", "admin123"),
		AdminPassHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
