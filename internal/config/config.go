// Package config loads and validates the CLI configuration.
//
// Configuration comes from three layers, lowest precedence first: a
// saveit.yaml file in the working directory, a local .env file, and the
// process environment (SAVEIT_API_URL, SAVEIT_API_TOKEN). Environment
// values always win so CI and scripts can override a checked-in file.
package config

import (
	"errors"
	"net/url"
	"time"
)

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = "saveit.yaml"

// DefaultAPIURL is used when no API URL is configured.
const DefaultAPIURL = "https://api.save-it.ai"

// Config holds the CLI configuration.
type Config struct {
	// APIURL is the base URL of the platform REST API.
	APIURL string `yaml:"api_url"`

	// Token is the bearer token for API authentication.
	Token string `yaml:"token"`

	// DefaultCountry pre-selects the country in the provisioning wizard.
	DefaultCountry string `yaml:"default_country"`

	// RequestTimeout bounds individual API requests.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// Validation errors.
var (
	ErrTokenRequired = errors.New("API token is required (set SAVEIT_API_TOKEN or token in saveit.yaml)")
	ErrInvalidAPIURL = errors.New("api_url is not a valid URL")
)

// Validate checks that the configuration is usable for commands that
// reach the network.
func (c *Config) Validate() error {
	if c.Token == "" {
		return ErrTokenRequired
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidAPIURL
	}
	return nil
}
