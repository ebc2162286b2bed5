package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/toolbox/internal/cmdregistry"
	"github.com/donaldgifford/toolbox/internal/commandlist"
)

var (
	commandsGroup        string
	commandsOutputFormat string
)

var commandsCmd = cmdregistry.Register("", "commands")(&cobra.Command{
	Use:   "commands",
	Short: "List registered commands by group",
	Long: `List every command registered with toolbox, grouped in registration order.
Disabled commands are listed too, since the listing reads the registry itself.`,
	Args: cobra.NoArgs,
	RunE: runCommands,
})

func init() {
	commandsCmd.Flags().StringVarP(&commandsGroup, "group", "g", "", "only list commands in this group")
	commandsCmd.Flags().StringVarP(&commandsOutputFormat, "output", "o", "table", "output format (table, json, yaml)")
}

func runCommands(c *cobra.Command, _ []string) error {
	opts := &commandlist.Opts{
		Registry:     cmdregistry.Default(),
		Group:        commandsGroup,
		OutputFormat: commandsOutputFormat,
		Writer:       c.OutOrStdout(),
	}

	return commandlist.Run(opts)
}
