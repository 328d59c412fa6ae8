// Package handlers implements the execution logic behind the CLI commands.
//
// Handlers load configuration, build the API client and delegate to the
// wizard and provisioning packages. Construction goes through factory
// function variables so tests can substitute mocks.
package handlers

import (
	"log"
	"net/http"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/Gal07143/Save-It.AI-sub004/internal/api"
	"github.com/Gal07143/Save-It.AI-sub004/internal/config"
)

// Factory function variables - can be replaced in tests.
var (
	// loadConfig loads and validates the CLI configuration.
	loadConfig = func(path string) (*config.Config, error) {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// newResourceManager builds the platform API client.
	newResourceManager = func(cfg *config.Config) api.ResourceManager {
		opts := []api.Option{api.WithLogger(newLogger())}
		if cfg.RequestTimeout > 0 {
			opts = append(opts, api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}))
		}
		return api.NewRealClient(cfg.APIURL, cfg.Token, opts...)
	}
)

// newLogger returns the request logger. Debug logging is off unless
// SAVEIT_DEBUG is set.
func newLogger() logr.Logger {
	if os.Getenv("SAVEIT_DEBUG") == "" {
		return logr.Discard()
	}
	return funcr.New(func(prefix, args string) {
		log.Printf("%s %s", prefix, args)
	}, funcr.Options{Verbosity: 1})
}
