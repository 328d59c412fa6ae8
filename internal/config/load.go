package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration from the given file path (optional),
// a local .env file (optional) and the environment. Pass an empty path
// to auto-detect saveit.yaml in the working directory.
func Load(path string) (*Config, error) {
	// A missing .env is fine; an unreadable one is not worth failing over.
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:         DefaultAPIURL,
		RequestTimeout: 30 * time.Second,
	}

	explicit := path != ""
	if path == "" {
		path = DefaultConfigFile
	}

	if err := loadFile(cfg, path, explicit); err != nil {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

// loadFile merges a YAML config file into cfg. A missing file is only an
// error when the user named it explicitly.
func loadFile(cfg *Config, path string, explicit bool) error {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	return nil
}

// applyEnv overrides file values with environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SAVEIT_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("SAVEIT_API_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("SAVEIT_DEFAULT_COUNTRY"); v != "" {
		cfg.DefaultCountry = v
	}
}
