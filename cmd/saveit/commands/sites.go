package commands

import (
	"github.com/spf13/cobra"

	"github.com/Gal07143/Save-It.AI-sub004/cmd/saveit/handlers"
)

// Sites returns the command listing the account's sites.
func Sites() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "sites",
		Short: "List sites",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Sites(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: saveit.yaml)")

	return cmd
}
