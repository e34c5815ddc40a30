package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	UpstreamBaseURL string
	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	JWTSecret       string
	GuestCartTTL    time.Duration
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	guestCartTTL, err := time.ParseDuration(getEnv("GUEST_CART_TTL", "720h"))
	if err != nil {
		guestCartTTL = 720 * time.Hour
	}

	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("APP_PORT", getEnv("PORT", "8082")),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:8080/api"),
		RedisURL:        getEnv("REDIS_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		GuestCartTTL:    guestCartTTL,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Upstream API: %s", AppConfig.UpstreamBaseURL)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
