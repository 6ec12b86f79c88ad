package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	AlphaVantage AlphaVantageConfig `yaml:"alpha_vantage"`
	Session      SessionConfig      `yaml:"session"`
	CORS         CORSConfig         `yaml:"cors"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `yaml:"port"`
	Host string `yaml:"host"`
	Addr string `yaml:"-"` // Combined host:port for convenience
}

// AlphaVantageConfig holds market data provider configuration
type AlphaVantageConfig struct {
	BaseURL       string        `yaml:"base_url"`
	APIKey        string        `yaml:"api_key"`
	Timeout       time.Duration `yaml:"timeout"`
	MaxConcurrent int64         `yaml:"max_concurrent"`
}

// SessionConfig holds the key used to sign and encrypt flash message cookies
type SessionConfig struct {
	SecretKey string `yaml:"secret_key"`
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load reads configuration from an optional YAML file, the .env file and environment variables.
// Precedence, lowest first: built-in defaults, CONFIG_FILE, environment (including .env).
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: "33507",
			Host: "localhost",
		},
		AlphaVantage: AlphaVantageConfig{
			BaseURL:       "https://www.alphavantage.co",
			Timeout:       30 * time.Second,
			MaxConcurrent: 4,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, config); err != nil {
			return nil, err
		}
	}

	config.Server.Port = getEnv("SERVER_PORT", config.Server.Port)
	config.Server.Host = getEnv("SERVER_HOST", config.Server.Host)
	config.AlphaVantage.BaseURL = getEnv("ALPHA_VANTAGE_BASE_URL", config.AlphaVantage.BaseURL)
	config.AlphaVantage.APIKey = getEnv("ALPHA_VANTAGE_API_KEY", config.AlphaVantage.APIKey)
	config.Session.SecretKey = getEnv("SECRET_KEY", config.Session.SecretKey)

	if v := os.Getenv("ALPHA_VANTAGE_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ALPHA_VANTAGE_TIMEOUT: %w", err)
		}
		config.AlphaVantage.Timeout = timeout
	}
	if v := os.Getenv("ALPHA_VANTAGE_MAX_CONCURRENT"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ALPHA_VANTAGE_MAX_CONCURRENT: %w", err)
		}
		config.AlphaVantage.MaxConcurrent = n
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		config.CORS.AllowedOrigins = splitList(v)
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.AlphaVantage.APIKey == "" {
		return fmt.Errorf("ALPHA_VANTAGE_API_KEY is required")
	}
	if err := validateBaseURL(c.AlphaVantage.BaseURL); err != nil {
		return err
	}
	if c.AlphaVantage.Timeout <= 0 {
		return fmt.Errorf("alpha vantage timeout must be positive")
	}
	if c.AlphaVantage.MaxConcurrent <= 0 {
		return fmt.Errorf("alpha vantage max concurrent must be positive")
	}
	return nil
}

// validateBaseURL checks that the provider URL is an absolute http(s) URL.
// The parse error is not wrapped, since its message would repeat the raw value.
func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("ALPHA_VANTAGE_BASE_URL is not a valid URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("ALPHA_VANTAGE_BASE_URL must be an absolute http(s) URL, got %q", raw)
	}
	return nil
}

// loadFile overlays the YAML file at path onto config. A missing file is not an error.
func loadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
