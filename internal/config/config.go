package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alt25-ops/ESL-Pictionary/internal/shared/logger"
)

type Config struct {
	Port           string
	GeminiAPIKey   string
	AllowedOrigins []string
	Debug          bool
}

// Load reads configuration from the environment. A .env file is honored when
// present so the API key does not have to live in the shell profile.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}

	cfg := Config{
		Port:           "5000",
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
	}

	if port, exists := os.LookupEnv("PORT"); exists {
		cfg.Port = port
	}

	if origins, exists := os.LookupEnv("ALLOWED_ORIGINS"); exists {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.Debug = os.Getenv("DEBUG") == "true"

	return cfg
}
