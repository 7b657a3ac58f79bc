package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the library's configuration structure
type Config struct {
	Server    ServerConfig    `json:"server"`
	App       AppConfig       `json:"app"`
	Recaptcha RecaptchaConfig `json:"recaptcha"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host  string `json:"host"`
	Port  int    `json:"port"`
	Debug bool   `json:"debug"`
}

// AppConfig holds application-related configuration
type AppConfig struct {
	Name      string `json:"name"`
	WebDomain string `json:"webDomain"`
}

// RecaptchaConfig holds reCAPTCHA-related configuration.
// It is loaded once at startup and read-only thereafter; non-production
// behavior is selected here, not toggled at runtime.
type RecaptchaConfig struct {
	// SiteKey is the public key embedded in the rendered widget.
	SiteKey string `json:"siteKey"`
	// SecretKey authenticates verification requests to the remote endpoint.
	// Never exposed to clients.
	SecretKey string `json:"secretKey"`
	// Disabled skips verification entirely (widget still renders).
	Disabled bool `json:"disabled"`
	// TestMode replaces the real verifier with a fixed-result one.
	TestMode bool `json:"testMode"`
	// TestModeResult is the fixed outcome used when TestMode is set.
	TestModeResult bool `json:"testModeResult"`
	// Language selects the widget display language.
	Language string `json:"language"`
}

// LoadFromEnv loads configuration with the following precedence:
// 1. Explicit Environment Variables (e.g., set in the shell or by CI)
// 2. Values from the .env file (if it exists)
// 3. Hardcoded defaults
func LoadFromEnv() (*Config, error) {
	// godotenv.Load() reads the .env file into the environment *only for
	// values that are not already set*, which gives the precedence above.
	if err := godotenv.Load(); err != nil {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	config := &Config{
		Server: ServerConfig{
			Host:  getEnvOrDefault("HOST", "localhost"),
			Port:  getEnvAsInt("SERVER_PORT", 8080),
			Debug: getEnvAsBool("DEBUG", false),
		},
		App: AppConfig{
			Name:      getEnvOrDefault("APP_NAME", "fiber-recaptcha"),
			WebDomain: getEnvOrDefault("WEB_DOMAIN", "http://localhost:3000"),
		},
		Recaptcha: RecaptchaConfig{
			SiteKey:        getEnvOrDefault("RECAPTCHA_SITE_KEY", ""),
			SecretKey:      getEnvOrDefault("RECAPTCHA_KEY", ""),
			Disabled:       getEnvAsBool("RECAPTCHA_DISABLED", false),
			TestMode:       getEnvAsBool("RECAPTCHA_TEST_MODE", false),
			TestModeResult: getEnvAsBool("RECAPTCHA_TEST_MODE_RESULT", false),
			Language:       getEnvOrDefault("RECAPTCHA_LANGUAGE", ""),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields
func (c *Config) Validate() error {
	var errors []string

	// A real verifier needs the secret; test mode and disabled setups do not.
	if !c.Recaptcha.Disabled && !c.Recaptcha.TestMode {
		if strings.TrimSpace(c.Recaptcha.SecretKey) == "" {
			errors = append(errors, "RECAPTCHA_KEY is required")
		}
		if strings.TrimSpace(c.Recaptcha.SiteKey) == "" {
			errors = append(errors, "RECAPTCHA_SITE_KEY is required")
		}
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errors = append(errors, "SERVER_PORT must be between 1 and 65535")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
