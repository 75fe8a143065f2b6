package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	// Storage backend selection. "file" keeps the snapshot on local disk,
	// "redis" and "postgres" point at the matching kvstore backend.
	StorageDriver    string
	StorageDir       string
	StorageNamespace string
	DBUrl            string
	RedisURL         string
	RedisPassword    string

	// Query defaults
	DefaultPageSize int

	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	// .env is a local convenience; deployments set real env vars.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),

		StorageDriver:    getEnv("STORAGE_DRIVER", "file"),
		StorageDir:       getEnv("STORAGE_DIR", "./data"),
		StorageNamespace: getEnv("STORAGE_NAMESPACE", ""),
		DBUrl:            getEnv("DATABASE_URL", ""),
		RedisURL:         getEnv("REDIS_URL", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),

		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 10),

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),
	}

	switch cfg.StorageDriver {
	case "file", "memory":
	case "postgres":
		if cfg.DBUrl == "" {
			log.Println("WARNING: STORAGE_DRIVER=postgres but DATABASE_URL is missing.")
		}
	case "redis":
		if cfg.RedisURL == "" {
			log.Println("WARNING: STORAGE_DRIVER=redis but REDIS_URL is missing.")
		}
	default:
		log.Printf("WARNING: unknown STORAGE_DRIVER %q, falling back to file.", cfg.StorageDriver)
		cfg.StorageDriver = "file"
	}

	return cfg, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
