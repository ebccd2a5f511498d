package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VersionInfo holds build metadata stamped in by the release pipeline
type VersionInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// NewVersionCommand creates a standard version command
func NewVersionCommand(info VersionInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the mapo version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mapo %s\n", info.Version)
			fmt.Printf("  Commit: %s\n", info.Commit)
			fmt.Printf("  Built:  %s\n", info.BuildDate)
		},
	}
}
