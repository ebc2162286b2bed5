package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/toolbox/internal/cmdregistry"
	"github.com/donaldgifford/toolbox/internal/config"
)

var configShowFormat string

var _ = cmdregistry.Register("config", "path")(&cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Long: `Print the config file toolbox reads: the --config flag, then $TOOLBOX_CONFIG,
then config.yaml in the user config directory.`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(c.OutOrStdout(), activeConfigPath)

		return err
	},
})

var configShowCmd = cmdregistry.Register("config", "show")(&cobra.Command{
	Use:   "show",
	Short: "Print the effective config",
	Long: `Print the loaded config. The output format defaults to the format of the
config file.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
})

func init() {
	configShowCmd.Flags().StringVarP(&configShowFormat, "output", "o", "", "output format (yaml, toml)")
}

func runConfigShow(c *cobra.Command, _ []string) error {
	if _, err := os.Stat(activeConfigPath); os.IsNotExist(err) {
		newWriter(c).Warningf("no config file at %s, showing defaults", activeConfigPath)
	}

	format := configShowFormat
	if format == "" {
		format = config.FormatFromPath(activeConfigPath)
	}

	out, err := config.Marshal(activeConfig, format)
	if err != nil {
		return err
	}

	_, err = c.OutOrStdout().Write(out)

	return err
}
