// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the saveit CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saveit",
		Short: "Provision sites on the Save-It.AI energy platform",
	}

	cmd.AddCommand(Provision())
	cmd.AddCommand(Sites())
	cmd.AddCommand(Assets())
	cmd.AddCommand(Meters())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
