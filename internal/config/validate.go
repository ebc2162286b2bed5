package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"":      true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"":     true,
	"text": true,
	"json": true,
}

// Validate checks a GlobalConfig for invalid values.
func Validate(cfg *GlobalConfig) error {
	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", cfg.LogLevel)
	}

	if !validLogFormats[strings.ToLower(cfg.LogFormat)] {
		return fmt.Errorf("invalid log_format %q, must be one of: text, json", cfg.LogFormat)
	}

	for i, key := range cfg.Disabled {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("disabled[%d]: command key is required", i)
		}
	}

	for name, g := range cfg.Groups {
		for i, alias := range g.Aliases {
			if strings.TrimSpace(alias) == "" {
				return fmt.Errorf("groups.%s.aliases[%d]: alias is empty", name, i)
			}
		}
	}

	return nil
}
