// Package config loads the toolbox user configuration.
package config

import (
	"os"
	"path/filepath"
	"slices"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "TOOLBOX_CONFIG"

// GlobalConfig represents the user's toolbox configuration file.
type GlobalConfig struct {
	LogLevel  string                 `yaml:"log_level,omitempty" toml:"log_level,omitempty"`
	LogFormat string                 `yaml:"log_format,omitempty" toml:"log_format,omitempty"`
	Groups    map[string]GroupConfig `yaml:"groups,omitempty" toml:"groups,omitempty"`
	// Disabled lists commands that are not attached, as "group name" keys.
	// Commands registered at the top level are keyed by name alone.
	Disabled []string    `yaml:"disabled,omitempty" toml:"disabled,omitempty"`
	Fetch    FetchConfig `yaml:"fetch,omitempty" toml:"fetch,omitempty"`
}

// GroupConfig customizes the parent command created for a command group.
type GroupConfig struct {
	Short   string   `yaml:"short,omitempty" toml:"short,omitempty"`
	Long    string   `yaml:"long,omitempty" toml:"long,omitempty"`
	Hidden  bool     `yaml:"hidden,omitempty" toml:"hidden,omitempty"`
	Aliases []string `yaml:"aliases,omitempty" toml:"aliases,omitempty"`
}

// FetchConfig holds defaults for the remote fetch command.
type FetchConfig struct {
	DestDir string `yaml:"dest_dir,omitempty" toml:"dest_dir,omitempty"`
}

// DefaultConfigDir returns the default configuration directory, respecting XDG_CONFIG_HOME.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "toolbox")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "toolbox")
	}

	return filepath.Join(home, ".config", "toolbox")
}

// ResolvePath picks the config file to load: the explicit flag value, then
// $TOOLBOX_CONFIG, then config.yaml in DefaultConfigDir.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}

	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// CommandKey builds the key used in Disabled for a registered command.
func CommandKey(group, name string) string {
	if group == "" {
		return name
	}

	return group + " " + name
}

// IsDisabled reports whether the command registered as group/name is disabled.
func (c *GlobalConfig) IsDisabled(group, name string) bool {
	return slices.Contains(c.Disabled, CommandKey(group, name))
}

// Group returns the settings for group, or a zero GroupConfig.
func (c *GlobalConfig) Group(name string) GroupConfig {
	return c.Groups[name]
}
