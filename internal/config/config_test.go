package config

import (
	"math"
	"os"
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestMustGetEnv_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for missing required env var")
		}
	}()

	os.Unsetenv("NONEXISTENT_REQUIRED_VAR")
	mustGetEnv("NONEXISTENT_REQUIRED_VAR")
}

func TestMustGetEnv_ReturnsValue(t *testing.T) {
	os.Setenv("TEST_REQUIRED", "value123")
	defer os.Unsetenv("TEST_REQUIRED")

	result := mustGetEnv("TEST_REQUIRED")
	if result != "value123" {
		t.Errorf("Expected 'value123', got %q", result)
	}
}

func TestGetEnvAsFloatOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal float32
		expected   float32
	}{
		{"parses float", "TEST_FLOAT_1", "0.25", 0.7, 0.25},
		{"uses default for empty", "TEST_FLOAT_2", "", 0.7, 0.7},
		{"uses default for non-numeric", "TEST_FLOAT_3", "warm", 0.7, 0.7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsFloatOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsDurationOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal time.Duration
		expected   time.Duration
	}{
		{"parses duration", "TEST_DUR_1", "45s", 30 * time.Second, 45 * time.Second},
		{"uses default for empty", "TEST_DUR_2", "", 30 * time.Second, 30 * time.Second},
		{"uses default for garbage", "TEST_DUR_3", "soon", 30 * time.Second, 30 * time.Second},
		{"uses default for negative", "TEST_DUR_4", "-5s", 30 * time.Second, 30 * time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsDurationOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Setenv("GOOGLE_API_KEY", "test-key")
	defer os.Unsetenv("GOOGLE_API_KEY")
	for _, key := range []string{"PORT", "GEMINI_TEMPERATURE", "GEMINI_MAX_OUTPUT_TOKENS"} {
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.GoogleAPIKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got %q", cfg.GoogleAPIKey)
	}
	if cfg.Port != "3001" {
		t.Errorf("Expected default port '3001', got %q", cfg.Port)
	}
	if cfg.GeminiMaxOutputTokens != 500 {
		t.Errorf("Expected 500 max output tokens, got %d", cfg.GeminiMaxOutputTokens)
	}
	if cfg.GeminiTemperature != 0.7 {
		t.Errorf("Expected temperature 0.7, got %v", cfg.GeminiTemperature)
	}
}

func TestGetEnvAsIntInRangeOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		envValue string
		expected int
	}{
		{"within range", "TEST_RANGE_1", "1024", 1024},
		{"above int32", "TEST_RANGE_2", "3000000000", 500},
		{"zero", "TEST_RANGE_3", "0", 500},
		{"negative", "TEST_RANGE_4", "-20", 500},
		{"empty", "TEST_RANGE_5", "", 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntInRangeOrDefault(tc.key, 500, 1, math.MaxInt32)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}
