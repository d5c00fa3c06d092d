package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptBaseFile sets the path of the primary consolidated table.
func OptBaseFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Base File", s) {
			c.Consolidate.BaseFile = s
		}
	}
}

// OptOutputFile sets the output path for the consolidated table.
func OptOutputFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output File", s) {
			c.Consolidate.OutputFile = s
		}
	}
}

// OptSciNameAuthority sets which scientific name wins on a merge.
// Valid values: "incoming", "existing".
func OptSciNameAuthority(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Consolidate.SciNameAuthority", s) {
			c.Consolidate.SciNameAuthority = s
		}
	}
}

// OptWithCache toggles the normalized-key cache between runs.
func OptWithCache(b bool) Option {
	return func(c *Config) {
		c.Consolidate.WithCache = b
	}
}

// OptSourceIDs sets the list of auxiliary source IDs to fold in.
// Empty slice means all sources from sources.yaml.
// Runtime-only field - not in ToOptions().
func OptSourceIDs(ii []int) Option {
	return func(c *Config) {
		if len(ii) > 0 {
			c.Consolidate.SourceIDs = ii
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stdin", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
