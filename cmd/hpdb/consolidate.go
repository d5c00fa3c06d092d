package main

import (
	"context"

	"github.com/gnames/gn"
	"github.com/hpdb/hpdb/internal/ioconsolidate"
	"github.com/hpdb/hpdb/pkg/config"
	"github.com/spf13/cobra"
)

var (
	baseFile   string
	outputFile string
	authority  string
	noCache    bool
	sourceIDs  []int
)

func getConsolidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Merge source tables into the master table",
		Long: `Merge the configured auxiliary source tables into the base table
and write the consolidated result.

Rows are matched to base records by normalized scientific name, with
the Japanese name as fallback. Matched rows update the base record
field by field, unmatched rows with a usable identity become new
records. Host-plant lists are normalized and deduplicated on the way
out.

The base table is required; a missing or unreadable auxiliary source
is logged and skipped. The previous output artifact is preserved as a
.bak copy before being replaced.

Examples:
  hpdb consolidate
  hpdb consolidate --base data/master.csv --sources 1,3
  hpdb consolidate --authority existing --no-cache`,
		RunE: runConsolidate,
	}

	cmd.Flags().StringVarP(&baseFile, "base", "b", "",
		"path of the base table (default from config.yaml)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "",
		"path of the output table (default: overwrite the base table)")
	cmd.Flags().StringVarP(&authority, "authority", "a", "",
		"which scientific name wins on conflict: incoming or existing")
	cmd.Flags().BoolVar(&noCache, "no-cache", false,
		"disable the normalized-key cache")
	cmd.Flags().IntSliceVarP(&sourceIDs, "sources", "s", nil,
		"comma-separated source IDs to fold in (default: all)")

	return cmd
}

func runConsolidate(cmd *cobra.Command, args []string) error {
	applyConsolidateFlags()

	c := ioconsolidate.New(cfg)
	if _, err := c.Consolidate(context.Background()); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}

func applyConsolidateFlags() {
	var opts []config.Option
	if baseFile != "" {
		opts = append(opts, config.OptBaseFile(baseFile))
	}
	if outputFile != "" {
		opts = append(opts, config.OptOutputFile(outputFile))
	}
	if authority != "" {
		opts = append(opts, config.OptSciNameAuthority(authority))
	}
	if noCache {
		opts = append(opts, config.OptWithCache(false))
	}
	if len(sourceIDs) > 0 {
		opts = append(opts, config.OptSourceIDs(sourceIDs))
	}
	cfg.Update(opts)
}
