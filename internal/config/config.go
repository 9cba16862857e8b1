package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"deskmcp/internal/credentials"
	"deskmcp/internal/logging"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "deskmcp" // application name used for config directory

// Environment variables recognized on top of the config file.
const (
	EnvBaseURL  = "DESKMCP_BASE_URL"
	EnvAPIToken = "DESKMCP_API_TOKEN"
	EnvTimeout  = "DESKMCP_TIMEOUT"
)

// DefaultTimeout bounds every backend round-trip unless overridden.
const DefaultTimeout = 30 * time.Second

// Config holds the resolved runtime configuration for deskmcp.
type Config struct {
	// BaseURL is the root of the service-desk backend, e.g.
	// "https://desk.example.com". No trailing slash after resolution.
	BaseURL string
	// APIToken is the static bearer token sent on every backend call.
	APIToken string
	// Timeout bounds a single backend round-trip.
	Timeout time.Duration
}

// fileConfig is the on-disk YAML shape. Timeout is spelled as a Go
// duration string ("30s", "1m") and parsed during resolution.
type fileConfig struct {
	BaseURL  string `yaml:"base_url"`
	APIToken string `yaml:"api_token"`
	Timeout  string `yaml:"timeout"`
}

// ConfigPath returns the standard config file path for the current platform
func ConfigPath() (string, error) {
	configDir := filepath.Join(xdg.ConfigHome, APP_NAME)
	configPath := filepath.Join(configDir, "config.yaml")

	logging.Debug("Determined config path", "path", configPath)
	return configPath, nil
}

// FindConfigFile returns the path to an existing config file, and whether it exists.
func FindConfigFile() (string, bool) {
	primary, err := ConfigPath()
	if err != nil {
		logging.Error("Failed to get config path", "error", err)
		return "", false
	}

	if _, err := os.Stat(primary); err == nil {
		logging.Debug("Config found at primary path", "path", primary)
		return primary, true
	}

	// Return primary path for new config
	return primary, false
}

// Load resolves configuration from the standard location, the process
// environment and the OS credential store, in that order of precedence
// (environment wins over file, credential store only fills a missing
// token). A missing config file is not an error; the environment alone
// can carry a full configuration.
func Load() (*Config, error) {
	configPath, exists := FindConfigFile()
	if !exists {
		logging.Debug("No config file found, resolving from environment", "searched", configPath)
		return resolve(fileConfig{})
	}

	return LoadFrom(configPath)
}

// LoadFrom resolves configuration starting from a specific config file.
func LoadFrom(path string) (*Config, error) {
	logging.Info("Reading config file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return resolve(fc)
}

// resolve layers environment overrides and the credential-store token
// fallback over the file values, then validates the result.
func resolve(fc fileConfig) (*Config, error) {
	// A .env file in the working directory feeds the same variables.
	if err := godotenv.Load(); err == nil {
		logging.Debug("Loaded environment from .env file")
	}

	cfg := &Config{
		BaseURL:  fc.BaseURL,
		APIToken: fc.APIToken,
		Timeout:  DefaultTimeout,
	}

	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q in config file: %w", fc.Timeout, err)
		}
		cfg.Timeout = d
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvAPIToken); v != "" {
		cfg.APIToken = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvTimeout, v, err)
		}
		cfg.Timeout = d
	}

	if cfg.APIToken == "" {
		if token, err := credentials.NewCredentialManager().GetToken(); err == nil {
			logging.Debug("Using API token from credential store")
			cfg.APIToken = token
		} else {
			logging.Debug("No API token in credential store", "error", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration can actually reach a backend.
// It also normalizes the base URL by stripping any trailing slash.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("backend base URL is required: set base_url in the config file or %s", EnvBaseURL)
	}

	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid backend base URL %q: %w", c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("backend base URL %q must be an absolute http or https URL", c.BaseURL)
	}

	if strings.TrimSpace(c.APIToken) == "" {
		return fmt.Errorf("API token is required: set api_token, %s, or store one with `deskmcp token set`", EnvAPIToken)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.Timeout)
	}

	return nil
}

// DefaultConfig returns a Config with sensible defaults for a starter file.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8080",
		Timeout: DefaultTimeout,
	}
}

// Save writes the config to the standard location
func (c *Config) Save() error {
	configPath, _ := FindConfigFile()
	return c.SaveTo(configPath)
}

// SaveTo writes the config to a specific path
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file with restrictive permissions (600) since it may hold a token
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	fc := fileConfig{
		BaseURL:  c.BaseURL,
		APIToken: c.APIToken,
		Timeout:  c.Timeout.String(),
	}

	enc := yaml.NewEncoder(f)
	defer enc.Close()

	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
