// Package config provides configuration management for hpdb.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Consolidate: base_file, output_file, sci_name_authority, with_cache
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Consolidate.SourceIDs (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use HPDB_ prefix with underscores for nesting:
//
//	HPDB_CONSOLIDATE_BASE_FILE=/data/master.csv
//	HPDB_LOG_LEVEL=info
package config

// Config represents the complete hpdb configuration.
type Config struct {
	// Consolidate contains settings for the consolidation run.
	Consolidate ConsolidateConfig `mapstructure:"consolidate" yaml:"consolidate"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// ConsolidateConfig contains settings for the consolidate command.
type ConsolidateConfig struct {
	// BaseFile is the path of the primary consolidated table that
	// auxiliary sources are merged into.
	BaseFile string `mapstructure:"base_file" yaml:"base_file"`

	// OutputFile is where the consolidated table is written. When
	// empty, the base file location is used; the previous artifact is
	// always preserved with a .bak copy before being replaced.
	OutputFile string `mapstructure:"output_file" yaml:"output_file"`

	// SciNameAuthority decides which scientific name wins on a merge:
	// "incoming" (later sources are more authoritative) or "existing"
	// (the base table wins, conflicts land in remarks).
	SciNameAuthority string `mapstructure:"sci_name_authority" yaml:"sci_name_authority"`

	// WithCache enables the gob cache of normalized keys between runs.
	WithCache bool `mapstructure:"with_cache" yaml:"with_cache"`

	// SourceIDs is the list of auxiliary source IDs to fold in.
	// Empty slice means all sources from sources.yaml, in file order.
	// Runtime-only - set by CLI flags.
	SourceIDs []int `mapstructure:"source_ids" yaml:"source_ids"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Consolidate: ConsolidateConfig{
			SciNameAuthority: "incoming",
			WithCache:        true,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
