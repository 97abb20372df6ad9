package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	GatewayURL string
	ServerPort string
	CookieName string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// TokenTTL bounds how long a persisted token is kept; the gateway's
	// tokens expire after 72h anyway.
	TokenTTL time.Duration
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	cfg := &Config{
		GatewayURL:    getEnv("GATEWAY_URL", "http://localhost:5000"),
		ServerPort:    getEnv("SERVER_PORT", "3000"),
		CookieName:    getEnv("COOKIE_NAME", "eduport_session"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,
		TokenTTL:      72 * time.Hour,
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RedisDB = n
		}
	}
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			cfg.TokenTTL = time.Duration(h) * time.Hour
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
