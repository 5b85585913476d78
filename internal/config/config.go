package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	OpenAIAPIKey  string
	OpenAIModel   string
	RedisAddr     string
	RedisPassword string
	CORSOrigins   []string
}

var defaultCORSOrigins = []string{
	"https://frontend-portfolio-aomn.onrender.com",
	"https://deerk-portfolio.onrender.com",
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:4173",
}

// Load reads process configuration from the environment. A .env file is
// honored when present, but real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8002"),
		OpenAIAPIKey:  apiKey,
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini-2024-07-18"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CORSOrigins:   defaultCORSOrigins,
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = nil
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
