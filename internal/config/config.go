package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// placeholderKeys are values shipped in sample env files that must not be sent upstream
var placeholderKeys = map[string]bool{
	"YOUR_GEMINI_API_KEY":           true,
	"YOUR_FALLBACK_PLACEHOLDER_KEY": true,
	"YOUR_OPENAI_API_KEY":           true,
}

type Config struct {
	Provider string

	GeminiAPIKey string
	GeminiModel  string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	Host               string
	Port               string
	StaticDir          string
	MaxRequestBodySize int64
	CORSAllowOrigins   []string
	ShutdownTimeout    time.Duration

	LogLevel  string
	LogFormat string
}

func (c *Config) ServerAddress() string {
	return net.JoinHostPort(strings.TrimSpace(c.Host), strings.TrimSpace(c.Port))
}

// APIKey returns the credential for the selected provider
func (c *Config) APIKey() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// APIKeyVar names the environment variable holding the selected provider's credential
func (c *Config) APIKeyVar() string {
	if c.Provider == ProviderOpenAI {
		return "OPENAI_API_KEY"
	}
	return "GEMINI_API_KEY"
}

// Model returns the model name for the selected provider
func (c *Config) Model() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIModel
	}
	return c.GeminiModel
}

// HasCredential reports whether the selected provider has a usable, non-placeholder key
func (c *Config) HasCredential() bool {
	key := strings.TrimSpace(c.APIKey())
	return key != "" && !placeholderKeys[key]
}

func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Provider:           strings.ToLower(getEnvOrDefault("MODEL_PROVIDER", ProviderGemini)),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash-latest"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        getEnvOrDefault("OPENAI_MODEL", "gpt-4o"),
		OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),
		Host:               getEnvOrDefault("HOST", "0.0.0.0"),
		Port:               getEnvOrDefault("PORT", "5000"),
		StaticDir:          getEnvOrDefault("STATIC_DIR", "static"),
		MaxRequestBodySize: parseIntOrDefault("MAX_REQUEST_BODY_SIZE", 20*1024*1024),
		CORSAllowOrigins:   splitList(getEnvOrDefault("CORS_ALLOW_ORIGINS", "*")),
		ShutdownTimeout:    parseDurationOrDefault("SHUTDOWN_TIMEOUT", 5*time.Second),
		LogLevel:           strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
		LogFormat:          strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values a flag override may have changed after loading
func (c *Config) Validate() error {
	if c.Provider != ProviderGemini && c.Provider != ProviderOpenAI {
		return fmt.Errorf("invalid MODEL_PROVIDER: %q (want %q or %q)", c.Provider, ProviderGemini, ProviderOpenAI)
	}
	p, err := strconv.Atoi(strings.TrimSpace(c.Port))
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("invalid PORT: %q", c.Port)
	}
	if c.MaxRequestBodySize <= 0 {
		return fmt.Errorf("MAX_REQUEST_BODY_SIZE must be > 0 (got %d)", c.MaxRequestBodySize)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0 (got %s)", c.ShutdownTimeout)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
