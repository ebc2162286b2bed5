package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/toolbox/internal/cmdregistry"
)

var (
	buildVersion = "dev"
	buildCommit  = "none"
)

// SetVersionInfo sets the build-time version information.
func SetVersionInfo(version, commit string) {
	buildVersion = version
	buildCommit = commit
}

var _ = cmdregistry.Register("", "version")(&cobra.Command{
	Use:   "version",
	Short: "Print the version of toolbox",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		_, err := fmt.Fprintf(c.OutOrStdout(), "toolbox %s (commit: %s)\n", buildVersion, buildCommit)

		return err
	},
})
