package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/toolbox/internal/cmdregistry"
	"github.com/donaldgifford/toolbox/internal/greet"
)

var (
	greetName  string
	greetLang  string
	greetShout bool
)

var greetCmd = cmdregistry.Register("hello-world", "greet")(&cobra.Command{
	Use:   "greet [name]",
	Short: "Print a greeting",
	Long: `Print a greeting for the given name, or for the world when no name is given.
The name may be passed as an argument or with --name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGreet,
})

var _ = cmdregistry.Register("hello-world", "languages")(&cobra.Command{
	Use:   "languages",
	Short: "List the languages greet supports",
	Args:  cobra.NoArgs,
	RunE:  runLanguages,
})

func init() {
	greetCmd.Flags().StringVarP(&greetName, "name", "n", "", "name to greet")
	greetCmd.Flags().StringVarP(&greetLang, "lang", "l", "en", "greeting language")
	greetCmd.Flags().BoolVar(&greetShout, "shout", false, "print the greeting in upper case")
}

func runGreet(c *cobra.Command, args []string) error {
	name := greetName
	// Positional arg overrides flags.
	if len(args) > 0 {
		name = args[0]
	}

	msg, err := greet.Message(greet.Opts{Name: name, Lang: greetLang, Shout: greetShout})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.OutOrStdout(), msg)

	return err
}

func runLanguages(c *cobra.Command, _ []string) error {
	langs := greet.Languages()

	rows := make([][]string, 0, len(langs))
	for _, lang := range langs {
		rows = append(rows, []string{lang, greet.Salutation(lang)})
	}

	return newWriter(c).Table([]string{"code", "salutation"}, rows)
}
