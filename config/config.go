package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const DefaultTokenExpiryDays = 7

type Config struct {
	Env             string
	Port            string
	DBURL           string
	JWTSecret       string
	AdminKey        string
	TokenExpiryDays int
}

func Load() *Config {
	// Optional .env for local development; real deployments set env vars.
	_ = godotenv.Load()

	return &Config{
		Env:             getEnv("ENV", "development"),
		Port:            getEnv("PORT", "3001"),
		DBURL:           mustGetEnv("DB_URL"),
		JWTSecret:       mustGetEnv("JWT_SECRET"),
		AdminKey:        mustGetEnv("ADMIN_KEY"),
		TokenExpiryDays: getEnvAsInt("TOKEN_EXPIRY_DAYS", DefaultTokenExpiryDays),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
