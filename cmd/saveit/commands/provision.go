package commands

import (
	"github.com/spf13/cobra"

	"github.com/Gal07143/Save-It.AI-sub004/cmd/saveit/handlers"
)

// Provision returns the command running the interactive site wizard.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect saveit.yaml)
//	--manual:     Start without a site-type template and offer a first bill step
//
// Environment variables:
//
//	SAVEIT_API_TOKEN: Platform API token (required)
//	SAVEIT_API_URL:   Platform API base URL
func Provision() *cobra.Command {
	var (
		configPath string
		manual     bool
	)

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create a site with its assets and meters",
		Long: `Create a new site interactively.

The wizard walks through site type, site details, assets and meters, then
creates everything in one ordered sequence. With --manual no template is
used and an optional first utility bill can be entered.

If a step fails mid-sequence, records created before the failure are kept;
the wizard returns to the review step with the server's message.

Examples:
  # Provision starting from a site-type template
  saveit provision

  # Provision without a template, including a first bill
  saveit provision --manual`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Provision(cmd.Context(), configPath, manual)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: saveit.yaml)")
	cmd.Flags().BoolVar(&manual, "manual", false, "Skip the site-type template and enter everything manually")

	return cmd
}
