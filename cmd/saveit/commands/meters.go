package commands

import (
	"github.com/spf13/cobra"

	"github.com/Gal07143/Save-It.AI-sub004/cmd/saveit/handlers"
)

// Meters returns the command listing a site's meters.
func Meters() *cobra.Command {
	var (
		configPath string
		siteID     int64
	)

	cmd := &cobra.Command{
		Use:   "meters",
		Short: "List a site's meters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Meters(cmd.Context(), configPath, siteID)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: saveit.yaml)")
	cmd.Flags().Int64Var(&siteID, "site", 0, "Site id to list meters for")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}
