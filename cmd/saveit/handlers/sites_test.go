package handlers

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gal07143/Save-It.AI-sub004/internal/api"
	"github.com/Gal07143/Save-It.AI-sub004/internal/config"
)

// swapFactories installs test doubles and restores the originals.
func swapFactories(t *testing.T, client api.ResourceManager) {
	t.Helper()
	origLoad := loadConfig
	origNew := newResourceManager
	t.Cleanup(func() {
		loadConfig = origLoad
		newResourceManager = origNew
	})

	loadConfig = func(string) (*config.Config, error) {
		return &config.Config{APIURL: "https://api.test", Token: "tok"}, nil
	}
	newResourceManager = func(*config.Config) api.ResourceManager {
		return client
	}
}

func TestSites(t *testing.T) {
	mock := &api.MockClient{
		ListSitesFunc: func(context.Context) ([]api.Site, error) {
			return []api.Site{
				{ID: 1, Name: "HQ", Country: "DE", Timezone: "Europe/Berlin", City: "Berlin"},
			}, nil
		},
	}
	swapFactories(t, mock)

	require.NoError(t, Sites(context.Background(), ""))
}

func TestRenderSites(t *testing.T) {
	var buf bytes.Buffer
	renderSites(&buf, []api.Site{
		{ID: 1, Name: "HQ", Country: "DE", Timezone: "Europe/Berlin", City: "Berlin"},
		{ID: 2, Name: "Plant 4"},
	})

	out := buf.String()
	assert.Contains(t, out, "HQ")
	assert.Contains(t, out, "Europe/Berlin")
	assert.Contains(t, out, "Plant 4")
}

func TestRenderSitesEmpty(t *testing.T) {
	var buf bytes.Buffer
	renderSites(&buf, nil)
	assert.Contains(t, buf.String(), "No sites found.")
}
