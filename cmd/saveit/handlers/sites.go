package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Gal07143/Save-It.AI-sub004/internal/api"
)

// Sites handles the sites command: it lists the account's sites.
func Sites(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	client := newResourceManager(cfg)

	sites, err := client.ListSites(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sites: %w", err)
	}

	renderSites(os.Stdout, sites)
	return nil
}

func renderSites(w io.Writer, sites []api.Site) {
	if len(sites) == 0 {
		fmt.Fprintln(w, "No sites found.")
		return
	}

	fmt.Fprintf(w, "%-6s %-24s %-8s %-20s %s\n", "ID", "NAME", "COUNTRY", "TIMEZONE", "CITY")
	for _, s := range sites {
		fmt.Fprintf(w, "%-6d %-24s %-8s %-20s %s\n", s.ID, s.Name, s.Country, s.Timezone, s.City)
	}
}
