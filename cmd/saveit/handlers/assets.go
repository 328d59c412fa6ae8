package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Gal07143/Save-It.AI-sub004/internal/api"
)

// Assets handles the assets command: it lists one site's electrical assets.
func Assets(ctx context.Context, configPath string, siteID int64) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	client := newResourceManager(cfg)

	assets, err := client.ListAssets(ctx, siteID)
	if err != nil {
		return fmt.Errorf("failed to list assets for site %d: %w", siteID, err)
	}

	renderAssets(os.Stdout, assets)
	return nil
}

func renderAssets(w io.Writer, assets []api.Asset) {
	if len(assets) == 0 {
		fmt.Fprintln(w, "No assets found.")
		return
	}

	fmt.Fprintf(w, "%-6s %-24s %-12s %-12s %s\n", "ID", "NAME", "TYPE", "CAPACITY", "METERING")
	for _, a := range assets {
		capacity := "-"
		if a.RatedCapacityKW != nil {
			capacity = fmt.Sprintf("%.1f kW", *a.RatedCapacityKW)
		}
		metering := "no"
		if a.RequiresMetering {
			metering = "yes"
		}
		fmt.Fprintf(w, "%-6d %-24s %-12s %-12s %s\n", a.ID, a.Name, a.Type, capacity, metering)
	}
}
