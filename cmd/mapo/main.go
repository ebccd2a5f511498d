package main

import (
	"os"

	"github.com/MAPO-UPTC/mapo-cli/cli"
	"github.com/MAPO-UPTC/mapo-cli/cmd"
)

// Stamped in by the release pipeline.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"mapo",
		"Terminal client for the MAPO point-of-sale backend",
	)

	// Add subcommands
	rootCmd.AddCommand(cli.NewVersionCommand(cli.VersionInfo{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
	}))
	rootCmd.AddCommand(cmd.NewLoginCmd())
	rootCmd.AddCommand(cmd.NewLogoutCmd())
	rootCmd.AddCommand(cmd.NewSellCmd())
	rootCmd.AddCommand(cmd.NewProductsCmd())
	rootCmd.AddCommand(cmd.NewSalesCmd())
	rootCmd.AddCommand(cmd.NewReturnsCmd())
	rootCmd.AddCommand(cmd.NewInventoryCmd())
	rootCmd.AddCommand(cmd.NewSuppliersCmd())
	rootCmd.AddCommand(cmd.NewCustomersCmd())

	if err := rootCmd.Execute(); err != nil {
		verbose := false
		for _, arg := range os.Args[1:] {
			if arg == "--verbose" || arg == "-v" {
				verbose = true
			}
		}
		_ = cli.NewErrorHandler(verbose).Handle(err)
		os.Exit(1)
	}
}
