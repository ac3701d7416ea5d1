package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	PostgresDSN   string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	JWTSecret     string
	SwaggerHost   string
	StorageDir    string // root directory of the gallery object store
	MediaBaseURL  string // public base URL under which stored objects are served
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		PostgresDSN:  getEnv("POSTGRES_DSN", "host=localhost user=postgres password=postgres dbname=herzlink port=5432 sslmode=disable"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		JWTSecret:    getEnv("JWT_SECRET", "change-me"),
		SwaggerHost:  os.Getenv("SWAGGER_HOST"),
		StorageDir:   getEnv("STORAGE_DIR", "data/profile-gallery"),
		MediaBaseURL: getEnv("MEDIA_BASE_URL", "http://localhost:8080/media"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
