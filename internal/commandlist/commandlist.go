// Package commandlist implements the toolbox commands command, which prints
// the contents of a command registry.
package commandlist

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/toolbox/internal/cmdregistry"
	"github.com/donaldgifford/toolbox/internal/ui"
)

// Opts configures the list operation.
type Opts struct {
	// Registry is the registry to list.
	Registry *cmdregistry.Registry
	// Group limits output to a single group. Matching is case-sensitive.
	Group string
	// OutputFormat is "table", "json" or "yaml".
	OutputFormat string
	// Writer is the output destination.
	Writer io.Writer
}

// CommandInfo represents a registered command in list output.
type CommandInfo struct {
	Group  string `json:"group" yaml:"group"`
	Name   string `json:"name" yaml:"name"`
	Use    string `json:"use" yaml:"use"`
	Short  string `json:"short,omitempty" yaml:"short,omitempty"`
	Hidden bool   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}

// Run lists registered commands grouped in registration order.
func Run(opts *Opts) error {
	if opts.Registry == nil {
		return fmt.Errorf("listing commands: no registry")
	}

	infos := Collect(opts.Registry, opts.Group)

	switch opts.OutputFormat {
	case "json":
		return renderJSON(opts.Writer, infos)
	case "yaml":
		return renderYAML(opts.Writer, infos)
	case "table", "":
		return renderTable(opts.Writer, infos)
	default:
		return fmt.Errorf("unsupported output format %q, must be one of: table, json, yaml", opts.OutputFormat)
	}
}

// Collect flattens reg into CommandInfo values, groups in first-registration
// order and entries in registration order. A non-empty group filters the result.
func Collect(reg *cmdregistry.Registry, group string) []CommandInfo {
	groups := reg.Groups()
	infos := make([]CommandInfo, 0, reg.Len())

	for _, g := range reg.GroupNames() {
		if group != "" && g != group {
			continue
		}

		for _, e := range groups[g] {
			infos = append(infos, CommandInfo{
				Group:  g,
				Name:   e.Name,
				Use:    e.Command.Use,
				Short:  e.Command.Short,
				Hidden: e.Command.Hidden,
			})
		}
	}

	return infos
}

func renderTable(w io.Writer, infos []CommandInfo) error {
	rows := make([][]string, 0, len(infos))

	for i := range infos {
		c := &infos[i]

		group := c.Group
		if group == "" {
			group = "-"
		}

		rows = append(rows, []string{group, c.Name, c.Short})
	}

	return ui.WriteTable(w, []string{"group", "name", "description"}, rows)
}

func renderJSON(w io.Writer, infos []CommandInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(infos)
}

func renderYAML(w io.Writer, infos []CommandInfo) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(infos); err != nil {
		return err
	}

	return enc.Close()
}
