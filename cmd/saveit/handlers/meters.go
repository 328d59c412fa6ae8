package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Gal07143/Save-It.AI-sub004/internal/api"
)

// Meters handles the meters command: it lists one site's meters.
func Meters(ctx context.Context, configPath string, siteID int64) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	client := newResourceManager(cfg)

	meters, err := client.ListMeters(ctx, siteID)
	if err != nil {
		return fmt.Errorf("failed to list meters for site %d: %w", siteID, err)
	}

	renderMeters(os.Stdout, meters)
	return nil
}

func renderMeters(w io.Writer, meters []api.Meter) {
	if len(meters) == 0 {
		fmt.Fprintln(w, "No meters found.")
		return
	}

	fmt.Fprintf(w, "%-6s %-20s %-24s %-8s %s\n", "ID", "METER ID", "NAME", "ACTIVE", "ASSET")
	for _, m := range meters {
		active := "no"
		if m.IsActive {
			active = "yes"
		}
		asset := "-"
		if m.AssetID != nil {
			asset = fmt.Sprintf("%d", *m.AssetID)
		}
		fmt.Fprintf(w, "%-6d %-20s %-24s %-8s %s\n", m.ID, m.MeterID, m.Name, active, asset)
	}
}
