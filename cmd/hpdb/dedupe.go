package main

import (
	"context"

	"github.com/gnames/gn"
	"github.com/hpdb/hpdb/internal/ioconsolidate"
	"github.com/hpdb/hpdb/pkg/config"
	"github.com/spf13/cobra"
)

var (
	dedupeBaseFile   string
	dedupeOutputFile string
)

func getDedupeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dedupe",
		Short: "Normalize and deduplicate host-plant lists in place",
		Long: `Run only the host-plant list cleanup over the base table, without
folding in any sources.

Each host-plant cell is split on list separators, plant names are
stripped of family annotations, duplicates are removed preserving
first occurrence, and the list is rejoined with "; ". Records are
never added or removed.

Examples:
  hpdb dedupe
  hpdb dedupe --base data/master.csv --output data/master-clean.csv`,
		RunE: runDedupe,
	}

	cmd.Flags().StringVarP(&dedupeBaseFile, "base", "b", "",
		"path of the base table (default from config.yaml)")
	cmd.Flags().StringVarP(&dedupeOutputFile, "output", "o", "",
		"path of the output table (default: overwrite the base table)")

	return cmd
}

func runDedupe(cmd *cobra.Command, args []string) error {
	var opts []config.Option
	if dedupeBaseFile != "" {
		opts = append(opts, config.OptBaseFile(dedupeBaseFile))
	}
	if dedupeOutputFile != "" {
		opts = append(opts, config.OptOutputFile(dedupeOutputFile))
	}
	cfg.Update(opts)

	c := ioconsolidate.New(cfg)
	if _, err := c.Dedupe(context.Background()); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
