package cmd

import (
	"github.com/MAPO-UPTC/mapo-cli/cli"
	"github.com/MAPO-UPTC/mapo-cli/tui"
	"github.com/MAPO-UPTC/mapo-cli/tui/sell"
	"github.com/spf13/cobra"
)

// NewSellCmd creates the `sell` command
func NewSellCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"sell",
		"Open the interactive point-of-sale screen",
	)
	cmd.Long = `Opens the full-screen point-of-sale view: browse the catalog, stage
items into the cart, and check out. Stock shown on screen is the locally
cached counter; the sale is still validated server-side.`

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		s, _, err := newStore(cmd)
		if err != nil {
			return err
		}

		tui.InitializeTUI()
		return sell.Run(s)
	}

	return cmd
}
