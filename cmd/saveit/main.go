// Package main is the entry point for the saveit CLI.
//
// saveit provisions sites on the Save-It.AI energy management platform:
// an interactive wizard creates a site together with its electrical
// assets, meters and optionally a first utility bill, and listing
// commands inspect what exists.
//
// Commands: provision, sites, assets, meters, version, completion.
//
// For detailed usage information, run:
//
//	saveit --help
package main

import (
	"fmt"
	"os"

	"github.com/Gal07143/Save-It.AI-sub004/cmd/saveit/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
