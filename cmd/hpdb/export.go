package main

import (
	"context"

	"github.com/gnames/gn"
	"github.com/hpdb/hpdb/internal/ioexport"
	"github.com/spf13/cobra"
)

var (
	exportMaster  string
	exportDB      string
	exportMapping string
)

func getExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Convert the master table for downstream use",
		Long: `Export the master table to downstream formats.

With --db, write an SQLite database with species and host_plants
tables. With --mapping, write a two-column CSV mapping Japanese names
to scientific names. At least one of the two must be given.

Examples:
  hpdb export --db hostplants.db
  hpdb export --mapping names.csv
  hpdb export -m data/master.csv --db hostplants.db --mapping names.csv`,
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportMaster, "master", "m", "",
		"path of the master table (default from config.yaml)")
	cmd.Flags().StringVar(&exportDB, "db", "",
		"path of the SQLite database to write")
	cmd.Flags().StringVar(&exportMapping, "mapping", "",
		"path of the name-mapping CSV to write")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportDB == "" && exportMapping == "" {
		return cmd.Help()
	}

	master := exportMaster
	if master == "" {
		master = cfg.Consolidate.BaseFile
	}

	ctx := context.Background()
	e := ioexport.New()

	if exportDB != "" {
		if err := e.ToSQLite(ctx, master, exportDB); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}
	if exportMapping != "" {
		if err := e.ToMapping(ctx, master, exportMapping); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}
	return nil
}
