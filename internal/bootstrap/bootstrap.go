// Package bootstrap attaches the commands collected in a cmdregistry.Registry
// to a live cobra command tree.
package bootstrap

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/toolbox/internal/cmdregistry"
	"github.com/donaldgifford/toolbox/internal/config"
)

// Opts configures how registered commands are attached.
type Opts struct {
	// Config supplies group metadata and disabled commands. May be nil.
	Config *config.GlobalConfig
	// Logger receives attach diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Result summarizes an Attach call.
type Result struct {
	// Groups is the number of group parent commands attached or reused.
	Groups int
	// Commands is the number of registered commands attached.
	Commands int
	// Skipped counts disabled and already-parented commands.
	Skipped int
}

// Attach adds every command in reg to root. Groups are visited in the order
// they were first registered and entries in registration order. Commands in
// the "" group are attached directly to root.
func Attach(root *cobra.Command, reg *cmdregistry.Registry, opts *Opts) (*Result, error) {
	if root == nil {
		return nil, fmt.Errorf("attaching commands: root command is nil")
	}

	if reg == nil {
		return nil, fmt.Errorf("attaching commands: registry is nil")
	}

	if opts == nil {
		opts = &Opts{}
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = &config.GlobalConfig{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	result := &Result{}
	groups := reg.Groups()

	for _, group := range reg.GroupNames() {
		entries := enabledEntries(group, groups[group], cfg, logger, result)
		if len(entries) == 0 {
			logger.Debug("no enabled commands in group", "group", group)

			continue
		}

		parent := root
		if group != "" {
			parent = groupParent(root, group, cfg.Group(group))
			result.Groups++
		}

		attachEntries(parent, group, entries, logger, result)
	}

	logger.Debug("attached registered commands",
		"groups", result.Groups, "commands", result.Commands, "skipped", result.Skipped)

	return result, nil
}

func enabledEntries(
	group string,
	entries []cmdregistry.Entry,
	cfg *config.GlobalConfig,
	logger *slog.Logger,
	result *Result,
) []cmdregistry.Entry {
	enabled := make([]cmdregistry.Entry, 0, len(entries))

	for _, e := range entries {
		if cfg.IsDisabled(group, e.Name) {
			logger.Debug("command disabled by config", "command", config.CommandKey(group, e.Name))
			result.Skipped++

			continue
		}

		enabled = append(enabled, e)
	}

	return enabled
}

func attachEntries(parent *cobra.Command, group string, entries []cmdregistry.Entry, logger *slog.Logger, result *Result) {
	seen := make(map[string]bool, len(entries))

	for _, e := range entries {
		cmd := e.Command

		if cmd.HasParent() {
			logger.Warn("command already attached, skipping",
				"command", config.CommandKey(group, e.Name), "parent", cmd.Parent().CommandPath())
			result.Skipped++

			continue
		}

		if e.Name != "" {
			cmd.Use = renameUse(cmd.Use, e.Name)
		}

		name := cmd.Name()
		if seen[name] {
			// cobra resolves the name to one of the duplicates only.
			logger.Warn("duplicate command name in group, only one will be reachable",
				"group", group, "name", name)
		}

		seen[name] = true

		parent.AddCommand(cmd)
		result.Commands++
	}
}

// groupParent returns root's child named group, creating it when root has none.
func groupParent(root *cobra.Command, group string, gc config.GroupConfig) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == group {
			applyGroupConfig(c, gc)

			return c
		}
	}

	parent := &cobra.Command{
		Use:   group,
		Short: group + " commands",
	}
	applyGroupConfig(parent, gc)
	root.AddCommand(parent)

	return parent
}

func applyGroupConfig(c *cobra.Command, gc config.GroupConfig) {
	if gc.Short != "" {
		c.Short = gc.Short
	}

	if gc.Long != "" {
		c.Long = gc.Long
	}

	if gc.Hidden {
		c.Hidden = true
	}

	c.Aliases = append(c.Aliases, gc.Aliases...)
}

// renameUse replaces the command name, the first word of a cobra Use line,
// keeping any argument synopsis that follows it.
func renameUse(use, name string) string {
	use = strings.TrimSpace(use)

	if i := strings.IndexAny(use, " \t"); i >= 0 {
		return name + use[i:]
	}

	return name
}
