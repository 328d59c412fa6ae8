package commands

import (
	"github.com/spf13/cobra"

	"github.com/Gal07143/Save-It.AI-sub004/cmd/saveit/handlers"
)

// Assets returns the command listing a site's assets.
func Assets() *cobra.Command {
	var (
		configPath string
		siteID     int64
	)

	cmd := &cobra.Command{
		Use:   "assets",
		Short: "List a site's electrical assets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Assets(cmd.Context(), configPath, siteID)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: saveit.yaml)")
	cmd.Flags().Int64Var(&siteID, "site", 0, "Site id to list assets for")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}
