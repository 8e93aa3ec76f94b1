package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GoogleAPIKey          string
	GeminiModel           string
	GeminiTemperature     float32
	GeminiMaxOutputTokens int
	GeminiTimeout         time.Duration

	// Catalog (empty means the built-in product list)
	CatalogPath string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                  getEnvOrDefault("PORT", "3001"),
		Env:                   getEnvOrDefault("ENV", "development"),
		GoogleAPIKey:          mustGetEnv("GOOGLE_API_KEY"),
		GeminiModel:           getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash-latest"),
		GeminiTemperature:     getEnvAsFloatOrDefault("GEMINI_TEMPERATURE", 0.7),
		GeminiMaxOutputTokens: getEnvAsIntInRangeOrDefault("GEMINI_MAX_OUTPUT_TOKENS", 500, 1, math.MaxInt32),
		GeminiTimeout:         getEnvAsDurationOrDefault("GEMINI_TIMEOUT", 30*time.Second),
		CatalogPath:           getEnvOrDefault("CATALOG_PATH", ""),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

// getEnvAsIntInRangeOrDefault falls back to the default when the value is
// outside [lo, hi].
func getEnvAsIntInRangeOrDefault(key string, defaultVal, lo, hi int) int {
	n := getEnvAsIntOrDefault(key, defaultVal)
	if n < lo || n > hi {
		return defaultVal
	}
	return n
}

func getEnvAsFloatOrDefault(key string, defaultVal float32) float32 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 32)
	if err != nil {
		return defaultVal
	}
	return float32(f)
}

// getEnvAsDurationOrDefault accepts Go duration strings ("45s", "2m").
// Zero or negative values fall back to the default.
func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
