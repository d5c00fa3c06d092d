package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/hpdb/hpdb/internal/iofs"
	"github.com/hpdb/hpdb/internal/iologger"
	"github.com/hpdb/hpdb/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	cfg     *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hpdb",
		Short: "hpdb maintains the host-plant master table of Japanese moths",
		Long: `hpdb consolidates heterogeneous per-source CSV tables of moth
species and their host plants into a single master table.

The tool provides four commands:
  - consolidate: merge configured source tables into the master table
  - dedupe: normalize and deduplicate host-plant lists in place
  - sitemap: emit sitemap XML for the browsing front-end
  - export: convert the master table to SQLite and a name mapping

Configuration lives in ~/.config/hpdb/config.yaml, the source list in
~/.config/hpdb/sources.yaml. Settings can be overridden with HPDB_*
environment variables (consolidate.base_file → HPDB_CONSOLIDATE_BASE_FILE).`,
		Version:           Version,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "hpdb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for hpdb")

	rootCmd.AddCommand(getConsolidateCmd())
	rootCmd.AddCommand(getDedupeCmd())
	rootCmd.AddCommand(getSitemapCmd())
	rootCmd.AddCommand(getExportCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults.
	// Will be reconfigured later with user's config settings.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iofs.EnsureSourcesFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
	)

	return nil
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are
	// allowed. These match the fields included in config.ToOptions().
	v.SetEnvPrefix("HPDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Consolidation configuration
	v.BindEnv("consolidate.base_file", "CONSOLIDATE_BASE_FILE")
	v.BindEnv("consolidate.output_file", "CONSOLIDATE_OUTPUT_FILE")
	v.BindEnv("consolidate.sci_name_authority", "CONSOLIDATE_SCI_NAME_AUTHORITY")
	v.BindEnv("consolidate.with_cache", "CONSOLIDATE_WITH_CACHE")

	// Log configuration
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	v.AutomaticEnv()
}
